// Package builder formats and runs the compiler command of a single target.
package builder

import (
	"context"
	"io"
	"time"

	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options control a single build.
type Options struct {
	// DryRun prints the command without running it.
	DryRun bool
	// Root is the directory source paths are relative to.
	Root string
	// Stdout and Stderr receive the compiler output.
	Stdout io.Writer
	Stderr io.Writer
}

// Result describes a finished build.
type Result struct {
	Target  domain.Target
	Mode    domain.Mode
	Command domain.Command
	Record  domain.BuildRecord
}

// Builder formats compiler commands and runs them.
type Builder struct {
	executor  ports.Executor
	toolchain ports.Toolchain
	hasher    ports.Hasher
	records   ports.BuildRecordStore
	telemetry ports.Telemetry
	logger    ports.Logger
	now       func() time.Time
}

// New creates a new Builder.
func New(
	executor ports.Executor,
	toolchain ports.Toolchain,
	hasher ports.Hasher,
	records ports.BuildRecordStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Builder {
	return &Builder{
		executor:  executor,
		toolchain: toolchain,
		hasher:    hasher,
		records:   records,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for build record timestamps.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Command formats the compiler invocation of target in the given mode.
// Toolchain flags are discovered only for targets that name packages.
func (b *Builder) Command(
	ctx context.Context,
	project *domain.Project,
	target domain.Target,
	mode domain.Mode,
) (domain.Command, error) {
	modeFlags, err := project.Profiles.Flags(string(mode))
	if err != nil {
		return domain.Command{}, err
	}

	var toolchainFlags []string
	if len(target.Packages) > 0 {
		toolchainFlags, err = b.toolchain.Flags(ctx, target.Packages)
		if err != nil {
			return domain.Command{}, zerr.With(zerr.Wrap(err, "failed to format command"), "target", target.Name)
		}
	}

	return target.Command(project.OutputDir, modeFlags, toolchainFlags), nil
}

// Build runs the compiler for target and records the outcome.
// A failed compiler run is recorded before the error is returned.
func (b *Builder) Build(
	ctx context.Context,
	project *domain.Project,
	target domain.Target,
	mode domain.Mode,
	opts Options,
) (*Result, error) {
	cmd, err := b.Command(ctx, project, target, mode)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Target:  target,
		Mode:    mode,
		Command: cmd,
		Record: domain.BuildRecord{
			Target:      target.Name,
			Mode:        string(mode),
			Fingerprint: b.fingerprint(cmd, target, opts.Root),
			DryRun:      opts.DryRun,
		},
	}

	vctx, vertex := b.telemetry.Record(ctx, target.Name)
	if result.Record.Fingerprint != "" {
		vertex.Log(domain.LogLevelDebug, "fingerprint "+result.Record.Fingerprint)
	}

	_, runErr := b.executor.Run(vctx, cmd, ports.RunOptions{
		Echo:   true,
		DryRun: opts.DryRun,
		Stdout: tee(opts.Stdout, vertex.Stdout()),
		Stderr: tee(opts.Stderr, vertex.Stderr()),
	})
	vertex.Complete(runErr)

	result.Record.ExitCode = exitCode(runErr)
	result.Record.Timestamp = b.now()

	if err := b.records.PutRecord(result.Record); err != nil {
		if runErr == nil {
			return result, err
		}
		b.logger.Warn("could not record build: " + err.Error())
	}

	if runErr != nil {
		return result, zerr.With(zerr.Wrap(runErr, "build failed"), "target", target.Name)
	}
	return result, nil
}

// fingerprint returns an empty string when sources cannot be read; the compiler reports those.
func (b *Builder) fingerprint(cmd domain.Command, target domain.Target, root string) string {
	fp, err := b.hasher.Fingerprint(cmd, target.Sources, root)
	if err != nil {
		b.logger.Warn("could not fingerprint " + target.Name + ": " + err.Error())
		return ""
	}
	return fp
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := domain.ExitCode(err); ok {
		return code
	}
	return -1
}

func tee(writers ...io.Writer) io.Writer {
	active := make([]io.Writer, 0, len(writers))
	for _, w := range writers {
		if w != nil {
			active = append(active, w)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	default:
		return io.MultiWriter(active...)
	}
}
