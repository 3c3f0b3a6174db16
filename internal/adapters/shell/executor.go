// Package shell provides the command executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

// Executor implements ports.Executor using os/exec.
// Commands are started directly from their argument list, never through a shell.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes the command and waits for it to complete.
func (e *Executor) Run(ctx context.Context, cmd domain.Command, opts ports.RunOptions) (string, error) {
	if cmd.Program == "" {
		return "", domain.ErrEmptyCommand
	}

	if opts.Echo || opts.DryRun {
		e.logger.Info(Format(cmd))
	}
	if opts.DryRun {
		return "", nil
	}

	c := exec.CommandContext(ctx, cmd.Program, cmd.Args...) //nolint:gosec // argv comes from the target catalogue
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}

	stdoutLog := &logWriter{logger: e.logger, level: "info"}
	stderrLog := &logWriter{logger: e.logger, level: "warn"}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	var captured bytes.Buffer
	switch {
	case opts.Capture:
		c.Stdout = &captured
	case opts.Stdout != nil:
		c.Stdout = opts.Stdout
	default:
		c.Stdout = stdoutLog
	}
	if opts.Stderr != nil {
		c.Stderr = opts.Stderr
	} else {
		c.Stderr = stderrLog
	}

	if err := c.Run(); err != nil {
		return "", e.wrapError(ctx, cmd, err)
	}

	if opts.Capture {
		return strings.TrimSpace(captured.String()), nil
	}
	return "", nil
}

func (e *Executor) wrapError(ctx context.Context, cmd domain.Command, err error) error {
	if ctx.Err() != nil {
		return zerr.With(zerr.Wrap(ctx.Err(), "command interrupted"), "command", cmd.Program)
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return zerr.With(zerr.Wrap(domain.ErrToolMissing, execErr.Err.Error()), "command", cmd.Program)
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.Wrap(domain.ErrToolchainInvocation, err.Error())
	wrapped = zerr.With(wrapped, "command", cmd.Program)
	return zerr.With(wrapped, domain.ExitCodeKey, exitCode)
}

// Format renders the command as a copy-pasteable POSIX shell line.
func Format(cmd domain.Command) string {
	argv := cmd.Argv()
	words := make([]string, 0, len(argv))
	for _, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			q = arg
		}
		words = append(words, q)
	}
	return strings.Join(words, " ")
}

type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

var _ io.WriteCloser = (*logWriter)(nil)

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}
