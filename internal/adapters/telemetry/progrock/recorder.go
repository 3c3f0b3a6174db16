// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/pmk/internal/ui/style"
)

// Recorder implements the ports.Telemetry interface using the progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder whose journal reports every successful vertex to the logger on Close.
func New(logger ports.Logger) ports.Telemetry {
	return NewRecorder(NewJournal(func(entries []Entry) {
		for _, e := range entries {
			if e.Done && !e.Failed() {
				logger.Info(Summary(e))
			}
		}
	}))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}

// Summary renders a completed entry as a single line.
func Summary(e Entry) string {
	return fmt.Sprintf("%s %s finished in %s", style.Check, e.Name, e.Duration().Round(time.Millisecond))
}
