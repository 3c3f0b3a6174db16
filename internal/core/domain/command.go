package domain

import (
	"slices"
	"strings"
)

// Command is a program invocation expressed as an argument list.
// It is never passed through a shell.
type Command struct {
	Program string
	Args    []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// NewCommand creates a Command from a program and its arguments.
func NewCommand(program string, args ...string) Command {
	return Command{Program: program, Args: slices.Clone(args)}
}

// Argv returns the program followed by its arguments.
func (c Command) Argv() []string {
	return append([]string{c.Program}, c.Args...)
}

// String returns the argument list joined by spaces, without quoting.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}
