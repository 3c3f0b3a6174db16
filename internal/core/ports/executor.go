// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/pmk/internal/core/domain"
)

// RunOptions controls how a command is executed.
type RunOptions struct {
	// Capture collects stdout and returns it instead of streaming it.
	Capture bool
	// Echo prints the command line before running it.
	Echo bool
	// DryRun echoes the command line without starting the program.
	DryRun bool
	// Stdout and Stderr receive the streamed output instead of the logger.
	// A nil writer falls back to logging each line.
	Stdout io.Writer
	Stderr io.Writer
}

// Executor defines the interface for running external programs.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command and waits for it to finish.
	//
	// When opts.Capture is set the trimmed stdout is returned. A non-zero
	// exit is reported as an error wrapping domain.ErrToolchainInvocation.
	Run(ctx context.Context, cmd domain.Command, opts RunOptions) (string, error)
}
