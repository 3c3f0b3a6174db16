package ports

// Filesystem abstracts the directory operations performed before a build.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Filesystem interface {
	// EnsureDir creates the directory and its parents if missing.
	EnsureDir(path string) error
}
