package fs

import (
	"os"

	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Filesystem = (*Filesystem)(nil)

// Filesystem implements ports.Filesystem on the local disk.
type Filesystem struct{}

// NewFilesystem creates a new Filesystem.
func NewFilesystem() *Filesystem {
	return &Filesystem{}
}

// EnsureDir creates the directory and any missing parents.
// An existing directory is left untouched.
func (f *Filesystem) EnsureDir(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrOutputDirFailed, err.Error()), "path", path)
	}
	return nil
}
