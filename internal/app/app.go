// Package app implements the application layer for pmk.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/pmk/internal/engine/builder"
	"go.trai.ch/pmk/internal/engine/dispatcher"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	dispatcher   *dispatcher.Dispatcher
	builder      *builder.Builder
	toolchain    ports.Toolchain
	records      ports.BuildRecordStore
	telemetry    ports.Telemetry
	logger       ports.Logger
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	d *dispatcher.Dispatcher,
	b *builder.Builder,
	toolchain ports.Toolchain,
	records ports.BuildRecordStore,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		dispatcher:   d,
		builder:      b,
		toolchain:    toolchain,
		records:      records,
		telemetry:    telemetry,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects the compiler output.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Target is the target to build. Empty means the last built target.
	Target string
	// Mode is the compilation mode. Empty means the last used mode.
	Mode   string
	DryRun bool
}

// Run resolves the mode and target and builds the target.
func (a *App) Run(ctx context.Context, opts RunOptions) (err error) {
	project, err := a.load()
	if err != nil {
		return err
	}

	defer func() {
		if cerr := a.telemetry.Close(); cerr != nil {
			err = errors.Join(err, zerr.Wrap(cerr, "failed to close telemetry"))
		}
	}()

	_, err = a.dispatcher.Dispatch(ctx, project, dispatcher.Request{
		Target: opts.Target,
		Mode:   opts.Mode,
		DryRun: opts.DryRun,
		Stdout: a.stdout,
		Stderr: a.stderr,
	})
	return err
}

// TargetInfo describes a catalogue entry for listing.
type TargetInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Output      string   `json:"output"`
	Packages    []string `json:"packages,omitempty"`
	Current     bool     `json:"current,omitempty"`
}

// Listing is the catalogue together with the remembered selections.
type Listing struct {
	Mode    string       `json:"mode"`
	Target  string       `json:"target"`
	Targets []TargetInfo `json:"targets"`
}

// Targets lists the catalogue, marking the remembered target.
func (a *App) Targets(_ context.Context) (*Listing, error) {
	project, err := a.load()
	if err != nil {
		return nil, err
	}

	mode, err := a.dispatcher.ModeSelector().Current()
	if err != nil {
		return nil, err
	}
	current, err := a.dispatcher.TargetSelector(project).Current()
	if err != nil {
		return nil, err
	}

	listing := &Listing{Mode: mode, Target: current}
	for _, t := range project.Targets.Targets() {
		listing.Targets = append(listing.Targets, TargetInfo{
			Name:        t.Name,
			Description: t.Description,
			Output:      t.OutputPath(project.OutputDir),
			Packages:    t.Packages,
			Current:     t.Name == current,
		})
	}
	return listing, nil
}

// TargetNames returns the catalogue names of the project in dir. Load errors yield no names.
func (a *App) TargetNames(dir string) []string {
	project, err := a.configLoader.Load(dir)
	if err != nil {
		return nil
	}
	return project.Targets.Names()
}

// Modes returns the known mode labels.
func (a *App) Modes() []string {
	return domain.DefaultProfiles().Modes()
}

// Status returns the last build record of every target.
func (a *App) Status(_ context.Context) ([]domain.BuildRecord, error) {
	records, err := a.records.Records()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read build records")
	}
	return records, nil
}

// Command formats the command a build would run without running it or persisting anything.
func (a *App) Command(ctx context.Context, opts RunOptions) (domain.Command, error) {
	project, err := a.load()
	if err != nil {
		return domain.Command{}, err
	}

	modeLabel := opts.Mode
	if modeLabel == "" {
		modeLabel, err = a.dispatcher.ModeSelector().Current()
		if err != nil {
			return domain.Command{}, err
		}
	}
	mode, err := domain.ParseMode(modeLabel)
	if err != nil {
		return domain.Command{}, err
	}

	name := opts.Target
	if name == "" {
		name, err = a.dispatcher.TargetSelector(project).Current()
		if err != nil {
			return domain.Command{}, err
		}
	}
	target, err := project.Targets.Lookup(name)
	if err != nil {
		return domain.Command{}, err
	}

	return a.builder.Command(ctx, project, target, mode)
}

func (a *App) load() (*domain.Project, error) {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}
