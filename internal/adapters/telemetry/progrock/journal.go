package progrock

import (
	"sync"
	"time"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Journal)(nil)

// Entry is the recorded state of one vertex.
type Entry struct {
	ID        string
	Name      string
	Started   time.Time
	Completed time.Time
	Err       string
	Done      bool
}

// Duration returns how long the vertex ran, or zero if it has not completed.
func (e Entry) Duration() time.Duration {
	if !e.Done || e.Started.IsZero() {
		return 0
	}
	return e.Completed.Sub(e.Started)
}

// Failed reports whether the vertex completed with an error.
func (e Entry) Failed() bool {
	return e.Done && e.Err != ""
}

// Journal is a progrock.Writer that folds status updates into one entry per vertex.
type Journal struct {
	mu      sync.Mutex
	order   []string
	entries map[string]*Entry
	onClose func([]Entry)
}

// NewJournal creates a Journal. onClose, if set, receives the entries when the journal is closed.
func NewJournal(onClose func([]Entry)) *Journal {
	return &Journal{
		entries: make(map[string]*Entry),
		onClose: onClose,
	}
}

// WriteStatus applies a status update.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, v := range update.Vertexes {
		e, ok := j.entries[v.Id]
		if !ok {
			e = &Entry{ID: v.Id}
			j.entries[v.Id] = e
			j.order = append(j.order, v.Id)
		}

		e.Name = v.Name
		if v.Started != nil {
			e.Started = v.Started.AsTime()
		}
		if v.Completed != nil {
			e.Completed = v.Completed.AsTime()
			e.Done = true
		}
		if v.Error != nil {
			e.Err = *v.Error
		}
	}
	return nil
}

// Entries returns the vertices in the order they were first seen.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]Entry, 0, len(j.order))
	for _, id := range j.order {
		out = append(out, *j.entries[id])
	}
	return out
}

// Close hands the entries to the close callback.
func (j *Journal) Close() error {
	if j.onClose != nil {
		j.onClose(j.Entries())
	}
	return nil
}
