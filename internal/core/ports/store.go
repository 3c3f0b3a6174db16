package ports

import "go.trai.ch/pmk/internal/core/domain"

// SelectionStore persists named selections across invocations.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SelectionStore interface {
	// Get returns the stored value for key, or def if none was stored.
	Get(key, def string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// BuildRecordStore persists the outcome of the last build of each target.
type BuildRecordStore interface {
	// Record returns the last build record of a target.
	// Returns nil, nil if the target was never built.
	Record(target string) (*domain.BuildRecord, error)

	// PutRecord stores a build record, replacing the previous one for its target.
	PutRecord(record domain.BuildRecord) error

	// Records returns all stored records sorted by target name.
	Records() ([]domain.BuildRecord, error)
}
