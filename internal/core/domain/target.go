package domain

import (
	"fmt"
	"path"
	"slices"

	"go.trai.ch/zerr"
)

// Target is a named build action producing one binary from C sources.
type Target struct {
	Name        string
	Description string
	// Compiler is the compiler program. Empty means DefaultCompiler.
	Compiler string
	// Output is the binary name, relative to the output directory.
	Output  string
	Sources []string
	// Packages are pkg-config package names whose flags are appended after the sources.
	Packages  []string
	LinkFlags []string
}

// Validate checks that the target can produce a command.
func (t Target) Validate() error {
	switch {
	case t.Name == "":
		return zerr.Wrap(ErrInvalidTarget, "target has no name")
	case t.Output == "":
		return zerr.With(zerr.Wrap(ErrInvalidTarget, "target has no output"), "target", t.Name)
	case len(t.Sources) == 0:
		return zerr.With(zerr.Wrap(ErrInvalidTarget, "target has no sources"), "target", t.Name)
	}
	return nil
}

// CompilerProgram returns the compiler to invoke.
func (t Target) CompilerProgram() string {
	if t.Compiler == "" {
		return DefaultCompiler
	}
	return t.Compiler
}

// OutputPath returns the output file path under outDir, using forward slashes.
func (t Target) OutputPath(outDir string) string {
	return path.Join(outDir, t.Output)
}

// Command formats the compiler invocation:
//
//	<compiler> <mode flags> -o <outDir>/<output> <sources> <toolchain flags> <link flags>
func (t Target) Command(outDir string, modeFlags, toolchainFlags []string) Command {
	args := make([]string, 0, len(modeFlags)+2+len(t.Sources)+len(toolchainFlags)+len(t.LinkFlags))
	args = append(args, modeFlags...)
	args = append(args, "-o", t.OutputPath(outDir))
	args = append(args, t.Sources...)
	args = append(args, toolchainFlags...)
	args = append(args, t.LinkFlags...)
	return Command{Program: t.CompilerProgram(), Args: args}
}

// Catalogue is the static set of known targets, keyed by name.
type Catalogue struct {
	targets map[string]Target
}

// NewCatalogue builds a catalogue, validating every target.
func NewCatalogue(targets ...Target) (Catalogue, error) {
	c := Catalogue{targets: make(map[string]Target, len(targets))}
	for _, t := range targets {
		if err := t.Validate(); err != nil {
			return Catalogue{}, err
		}
		c.targets[t.Name] = t
	}
	return c, nil
}

// DefaultTargets returns the built-in targets.
func DefaultTargets() []Target {
	return []Target{
		{
			Name:        "layouter",
			Description: "GTK layout experiment",
			Output:      "layouter",
			Sources:     []string{"layouter.c"},
			Packages:    []string{"gtk+-3.0"},
			LinkFlags:   []string{"-lm"},
		},
		{
			Name:        "linear_solver_tests",
			Description: "Linear solver test suite",
			Output:      "linear_solver_tests",
			Sources:     []string{"linear_solver_tests.c"},
			LinkFlags:   []string{"-lm"},
		},
	}
}

// DefaultCatalogue returns a catalogue holding the built-in targets.
func DefaultCatalogue() Catalogue {
	c, _ := NewCatalogue(DefaultTargets()...)
	return c
}

// Lookup returns the target with the given name or ErrUnknownTarget.
func (c Catalogue) Lookup(name string) (Target, error) {
	t, ok := c.targets[name]
	if !ok {
		msg := fmt.Sprintf("target %q is not defined", name)
		return Target{}, zerr.With(zerr.Wrap(ErrUnknownTarget, msg), "target", name)
	}
	return t, nil
}

// With returns a copy of the catalogue with the target added or replaced.
func (c Catalogue) With(t Target) (Catalogue, error) {
	if err := t.Validate(); err != nil {
		return c, err
	}
	next := Catalogue{targets: make(map[string]Target, len(c.targets)+1)}
	for k, v := range c.targets {
		next.targets[k] = v
	}
	next.targets[t.Name] = t
	return next, nil
}

// Names returns the sorted target names.
func (c Catalogue) Names() []string {
	names := make([]string, 0, len(c.targets))
	for name := range c.targets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Targets returns all targets sorted by name.
func (c Catalogue) Targets() []Target {
	out := make([]Target, 0, len(c.targets))
	for _, name := range c.Names() {
		out = append(out, c.targets[name])
	}
	return out
}

// Packages returns the sorted, de-duplicated pkg-config packages used by any target.
func (c Catalogue) Packages() []string {
	var pkgs []string
	for _, t := range c.targets {
		pkgs = append(pkgs, t.Packages...)
	}
	slices.Sort(pkgs)
	return slices.Compact(pkgs)
}

// Compilers returns the sorted, de-duplicated compiler programs used by any target.
func (c Catalogue) Compilers() []string {
	compilers := make([]string, 0, len(c.targets))
	for _, t := range c.targets {
		compilers = append(compilers, t.CompilerProgram())
	}
	slices.Sort(compilers)
	return slices.Compact(compilers)
}
