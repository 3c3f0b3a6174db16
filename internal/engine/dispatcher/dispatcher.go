// Package dispatcher resolves the mode and target of an invocation and hands the target to the builder.
package dispatcher

import (
	"context"
	"io"

	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/pmk/internal/engine/builder"
)

// Request names what to build. Empty fields fall back to the remembered selection.
type Request struct {
	Target string
	Mode   string
	DryRun bool
	Stdout io.Writer
	Stderr io.Writer
}

// Dispatcher applies the remember-last-choice policy to the mode and the target.
type Dispatcher struct {
	selections ports.SelectionStore
	filesystem ports.Filesystem
	builder    *builder.Builder
}

// New creates a new Dispatcher.
func New(selections ports.SelectionStore, filesystem ports.Filesystem, b *builder.Builder) *Dispatcher {
	return &Dispatcher{
		selections: selections,
		filesystem: filesystem,
		builder:    b,
	}
}

// Dispatch resolves and persists the mode, ensures the output directory,
// resolves and persists the target and builds it.
// Nothing is persisted for a selection that fails validation.
func (d *Dispatcher) Dispatch(ctx context.Context, project *domain.Project, req Request) (*builder.Result, error) {
	mode, err := d.ResolveMode(req.Mode)
	if err != nil {
		return nil, err
	}

	if !req.DryRun {
		if err := d.filesystem.EnsureDir(project.OutputDir); err != nil {
			return nil, err
		}
	}

	target, err := d.ResolveTarget(project, req.Target)
	if err != nil {
		return nil, err
	}

	return d.builder.Build(ctx, project, target, mode, builder.Options{
		DryRun: req.DryRun,
		Root:   ".",
		Stdout: req.Stdout,
		Stderr: req.Stderr,
	})
}

// ResolveMode picks and persists the compilation mode.
func (d *Dispatcher) ResolveMode(explicit string) (domain.Mode, error) {
	label, err := d.ModeSelector().Resolve(explicit, func(s string) error {
		_, err := domain.ParseMode(s)
		return err
	})
	if err != nil {
		return "", err
	}
	return domain.Mode(label), nil
}

// ResolveTarget picks the target from the catalogue and persists its name.
func (d *Dispatcher) ResolveTarget(project *domain.Project, explicit string) (domain.Target, error) {
	var target domain.Target
	_, err := d.TargetSelector(project).Resolve(explicit, func(name string) error {
		var err error
		target, err = project.Targets.Lookup(name)
		return err
	})
	if err != nil {
		return domain.Target{}, err
	}
	return target, nil
}

// ModeSelector returns the selector remembering the last mode.
func (d *Dispatcher) ModeSelector() *Selector {
	return NewSelector(d.selections, domain.ModeKey, string(domain.DefaultMode))
}

// TargetSelector returns the selector remembering the last target.
func (d *Dispatcher) TargetSelector(project *domain.Project) *Selector {
	return NewSelector(d.selections, domain.LastTargetKey, project.DefaultTarget)
}
