package ports

import "context"

// Toolchain discovers compiler flags and checks tool availability.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Flags returns the compiler and linker arguments for the given packages.
	// Results are cached for the lifetime of the Toolchain.
	Flags(ctx context.Context, packages []string) ([]string, error)

	// CheckPackage reports whether a package is known to the flag discovery tool.
	CheckPackage(ctx context.Context, pkg string) error

	// LookPath resolves a program on PATH.
	LookPath(program string) (string, error)
}
