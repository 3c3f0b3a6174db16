package domain

import "slices"

// Keys under which the last selections are persisted.
const (
	// ModeKey stores the last resolved mode.
	ModeKey = "mode"
	// LastTargetKey stores the last dispatched target name.
	LastTargetKey = "last_target"
)

// DefaultTargetName is the target used when nothing was passed and nothing was
// remembered. No built-in target carries this name, so a first run without an
// argument fails with ErrUnknownTarget.
const DefaultTargetName = "example_procedure"

// reservedTargetNames are routed by the CLI to subcommands and cannot name a target.
var reservedTargetNames = []string{
	"__complete",
	"__completeNoDesc",
	"check",
	"completion",
	"help",
	"ls",
	"show",
	"status",
	"targets",
	"version",
}

// ReservedTargetNames returns the names no target may use, sorted.
func ReservedTargetNames() []string {
	return slices.Clone(reservedTargetNames)
}

// IsReservedTargetName reports whether name is taken by a CLI subcommand.
func IsReservedTargetName(name string) bool {
	return slices.Contains(reservedTargetNames, name)
}
