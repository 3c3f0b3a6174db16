package dispatcher

import (
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/zerr"
)

// Selector remembers the last choice made for one selection key.
type Selector struct {
	store ports.SelectionStore
	key   string
	def   string
}

// NewSelector creates a Selector for key, falling back to def when nothing is stored.
func NewSelector(store ports.SelectionStore, key, def string) *Selector {
	return &Selector{store: store, key: key, def: def}
}

// Resolve picks the explicit value if given, else the stored value, else the default.
// The chosen value is validated and only then written back to the store.
func (s *Selector) Resolve(explicit string, validate func(string) error) (string, error) {
	value := explicit
	if value == "" {
		var err error
		value, err = s.Current()
		if err != nil {
			return "", err
		}
	}

	if validate != nil {
		if err := validate(value); err != nil {
			return "", err
		}
	}

	if err := s.store.Set(s.key, value); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to remember selection"), "key", s.key)
	}
	return value, nil
}

// Current returns the stored value or the default, without validating or persisting it.
func (s *Selector) Current() (string, error) {
	value, err := s.store.Get(s.key, s.def)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read selection"), "key", s.key)
	}
	return value, nil
}
