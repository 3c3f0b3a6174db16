// Package main is the entry point for the pmk build dispatcher.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pmk/cmd/pmk/commands"
	"go.trai.ch/pmk/internal/app"
	"go.trai.ch/pmk/internal/core/domain"
	_ "go.trai.ch/pmk/internal/wiring"
)

// Exit codes not taken from the compiler. exitUsage is EX_USAGE from sysexits.h.
const (
	exitFailure = 1
	exitUsage   = 64
)

// outputSetter is implemented by loggers whose destination can be changed.
type outputSetter interface {
	SetOutput(w io.Writer)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer, opts ...graft.Option) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx, opts...)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return exitFailure
	}

	if l, ok := components.Logger.(outputSetter); ok {
		l.SetOutput(stderr)
	}
	components.App.WithOutput(stdout, stderr)

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps an error to the process exit code.
// A failed compiler run exits with the compiler's own code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownTarget), errors.Is(err, domain.ErrUnknownMode):
		return exitUsage
	case errors.Is(err, domain.ErrToolchainInvocation):
		if code, ok := domain.ExitCode(err); ok && code > 0 {
			return code
		}
	}
	return exitFailure
}
