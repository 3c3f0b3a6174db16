package domain

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Mode is a compilation mode label.
type Mode string

// Known modes.
const (
	ModeDebug        Mode = "debug"
	ModeProfileDebug Mode = "profile_debug"
	ModeRelease      Mode = "release"
)

// DefaultMode is used when no mode was passed and none was remembered.
const DefaultMode = ModeDebug

// KnownModes lists every mode label in display order.
func KnownModes() []Mode {
	return []Mode{ModeDebug, ModeProfileDebug, ModeRelease}
}

// ParseMode validates a mode label.
func ParseMode(label string) (Mode, error) {
	m := Mode(label)
	if !slices.Contains(KnownModes(), m) {
		msg := fmt.Sprintf("mode %q is not one of %s", label, strings.Join(modeLabels(), ", "))
		return "", zerr.With(zerr.Wrap(ErrUnknownMode, msg), "mode", label)
	}
	return m, nil
}

// ProfileTable maps each mode to its compiler flags.
type ProfileTable struct {
	flags map[Mode][]string
}

// DefaultProfiles returns the built-in profile table.
func DefaultProfiles() ProfileTable {
	return ProfileTable{flags: map[Mode][]string{
		ModeDebug:        {"-O0", "-g", "-Wall"},
		ModeProfileDebug: {"-O2", "-g", "-pg", "-Wall"},
		ModeRelease:      {"-O2", "-g", "-DNDEBUG", "-Wall"},
	}}
}

// WithFlags returns a copy of the table with the flags of one mode replaced.
// Only known modes can be overridden and the flag list must not be empty.
func (p ProfileTable) WithFlags(label string, flags []string) (ProfileTable, error) {
	m, err := ParseMode(label)
	if err != nil {
		return p, err
	}
	if len(flags) == 0 {
		return p, zerr.With(zerr.Wrap(ErrEmptyProfile, "invalid profile"), "mode", label)
	}

	next := make(map[Mode][]string, len(p.flags))
	for k, v := range p.flags {
		next[k] = v
	}
	next[m] = slices.Clone(flags)
	return ProfileTable{flags: next}, nil
}

// Flags returns the compiler flags of the given mode.
// The returned slice is a copy and may be modified by the caller.
func (p ProfileTable) Flags(label string) ([]string, error) {
	m, err := ParseMode(label)
	if err != nil {
		return nil, err
	}
	return slices.Clone(p.flags[m]), nil
}

// FlagString returns the flags of the given mode joined by spaces.
func (p ProfileTable) FlagString(label string) (string, error) {
	flags, err := p.Flags(label)
	if err != nil {
		return "", err
	}
	return strings.Join(flags, " "), nil
}

// Modes returns the labels of all modes in the table in display order.
func (p ProfileTable) Modes() []string {
	return modeLabels()
}

func modeLabels() []string {
	modes := KnownModes()
	labels := make([]string, 0, len(modes))
	for _, m := range modes {
		labels = append(labels, string(m))
	}
	return labels
}
