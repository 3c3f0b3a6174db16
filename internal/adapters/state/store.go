// Package state implements the persistent selection store and build records.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/zerr"
)

// file is the on-disk layout of the state file.
type file struct {
	Selections map[string]string             `json:"selections,omitempty"`
	Builds     map[string]domain.BuildRecord `json:"builds,omitempty"`
}

// Store implements ports.SelectionStore and ports.BuildRecordStore
// on top of a single JSON file. Every call reads the file and every
// write replaces it, so values are visible to the next invocation
// as soon as the call returns.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at the given path.
// The file and its directory are created on the first write.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, zerr.Wrap(domain.ErrStoreReadFailed, "state file path is empty")
	}
	return &Store{path: path}, nil
}

// Path returns the location of the state file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key, or def when the key was never set.
func (s *Store) Get(key, def string) (string, error) {
	f, err := s.load()
	if err != nil {
		return "", err
	}
	if v, ok := f.Selections[key]; ok {
		return v, nil
	}
	return def, nil
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	f, err := s.load()
	if err != nil {
		return err
	}
	if f.Selections == nil {
		f.Selections = make(map[string]string, 1)
	}
	f.Selections[key] = value
	return s.save(f)
}

// Record returns the last build record of a target, or nil if there is none.
func (s *Store) Record(target string) (*domain.BuildRecord, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	rec, ok := f.Builds[target]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// PutRecord stores the build record, replacing the previous one of its target.
func (s *Store) PutRecord(record domain.BuildRecord) error {
	f, err := s.load()
	if err != nil {
		return err
	}
	if f.Builds == nil {
		f.Builds = make(map[string]domain.BuildRecord, 1)
	}
	f.Builds[record.Target] = record
	return s.save(f)
}

// Records returns every stored build record sorted by target name.
func (s *Store) Records() ([]domain.BuildRecord, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	records := make([]domain.BuildRecord, 0, len(f.Builds))
	for _, rec := range f.Builds {
		records = append(records, rec)
	}
	slices.SortFunc(records, func(a, b domain.BuildRecord) int {
		return strings.Compare(a.Target, b.Target)
	})
	return records, nil
}

func (s *Store) load() (file, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file{}, nil
		}
		return file{}, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}

	var f file
	if len(data) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return file{}, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", s.path)
	}
	return f, nil
}

func (s *Store) save(f file) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	//nolint:gosec // Path is the configured state file location
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	return nil
}
