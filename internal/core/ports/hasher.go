package ports

import "go.trai.ch/pmk/internal/core/domain"

// Hasher computes build fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint hashes the command line and the contents of the given source files.
	// Source paths are resolved relative to root.
	Fingerprint(cmd domain.Command, sources []string, root string) (string, error)
}
