package domain

import "path/filepath"

const (
	// StateDirName is the name of the directory holding pmk's persisted state.
	StateDirName = ".pmk"

	// StateFileName is the name of the selection and build record file.
	StateFileName = "state.json"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "pmk.yaml"

	// DefaultOutputDir is the directory compiled binaries are written to.
	DefaultOutputDir = "bin"

	// DefaultCompiler is the compiler used by targets that do not name one.
	DefaultCompiler = "gcc"

	// PkgConfigProgram is the toolchain flag discovery program.
	PkgConfigProgram = "pkg-config"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStatePath returns the default path of the state file.
// It joins .pmk and state.json.
func DefaultStatePath() string {
	return filepath.Join(StateDirName, StateFileName)
}
