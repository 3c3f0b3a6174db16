// Package pkgconfig discovers compiler and linker flags with pkg-config.
package pkgconfig

import (
	"context"
	"os/exec"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

// Toolchain implements ports.Toolchain by running pkg-config through an executor.
type Toolchain struct {
	executor ports.Executor
	program  string
	lookPath func(string) (string, error)

	mu    sync.Mutex
	cache map[string][]string
}

// Option configures a Toolchain.
type Option func(*Toolchain)

// WithProgram overrides the flag discovery program.
func WithProgram(program string) Option {
	return func(t *Toolchain) {
		t.program = program
	}
}

// WithLookPath overrides how programs are resolved on PATH.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(t *Toolchain) {
		t.lookPath = fn
	}
}

// NewToolchain creates a Toolchain that queries pkg-config through the executor.
func NewToolchain(executor ports.Executor, opts ...Option) *Toolchain {
	t := &Toolchain{
		executor: executor,
		program:  domain.PkgConfigProgram,
		lookPath: exec.LookPath,
		cache:    make(map[string][]string),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Flags returns the compiler and linker arguments of the given packages.
// The query runs at most once per package list.
func (t *Toolchain) Flags(ctx context.Context, packages []string) ([]string, error) {
	if len(packages) == 0 {
		return nil, nil
	}

	key := strings.Join(packages, " ")

	t.mu.Lock()
	defer t.mu.Unlock()

	if flags, ok := t.cache[key]; ok {
		return slices.Clone(flags), nil
	}

	args := append([]string{"--cflags", "--libs"}, packages...)
	out, err := t.executor.Run(ctx, domain.NewCommand(t.program, args...), ports.RunOptions{Capture: true})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "toolchain flag discovery failed"), "packages", key)
	}

	flags, err := SplitFlags(out)
	if err != nil {
		return nil, zerr.With(err, "packages", key)
	}

	t.cache[key] = flags
	return slices.Clone(flags), nil
}

// CheckPackage verifies that pkg-config knows the package.
func (t *Toolchain) CheckPackage(ctx context.Context, pkg string) error {
	cmd := domain.NewCommand(t.program, "--exists", "--print-errors", pkg)
	if _, err := t.executor.Run(ctx, cmd, ports.RunOptions{Capture: true}); err != nil {
		return zerr.With(zerr.Wrap(err, "package is not available"), "package", pkg)
	}
	return nil
}

// LookPath resolves a program on PATH.
func (t *Toolchain) LookPath(program string) (string, error) {
	path, err := t.lookPath(program)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrToolMissing, err.Error()), "command", program)
	}
	return path, nil
}

// SplitFlags splits pkg-config output into arguments using POSIX shell word rules.
// Quotes and backslashes are honoured. Variable references such as $ORIGIN are kept literally.
func SplitFlags(out string) ([]string, error) {
	if strings.TrimSpace(out) == "" {
		return nil, nil
	}
	fields, err := shell.Fields(out, func(name string) string { return "$" + name })
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrToolchainFlagsParseFailed, err.Error()), "output", out)
	}
	return fields, nil
}
