// Package config provides the configuration loader for pmk.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads pmk.yaml from the given working directory and applies it on top
// of the built-in project. A missing file yields the built-in project.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	path := filepath.Join(cwd, domain.ConfigFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultProject(), nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Pmkfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	project, err := l.apply(domain.DefaultProject(), &file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return project, nil
}

func (l *Loader) apply(project *domain.Project, file *Pmkfile) (*domain.Project, error) {
	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s: unknown version %q, reading it as version %s",
			domain.ConfigFileName, file.Version, SupportedVersion))
	}

	if file.OutputDir != "" {
		project.OutputDir = filepath.ToSlash(filepath.Clean(file.OutputDir))
	}
	if file.DefaultTarget != "" {
		project.DefaultTarget = file.DefaultTarget
	}

	for _, label := range sortedKeys(file.Profiles) {
		profiles, err := project.Profiles.WithFlags(label, file.Profiles[label])
		if err != nil {
			return nil, err
		}
		project.Profiles = profiles
	}

	for _, name := range sortedKeys(file.Targets) {
		if domain.IsReservedTargetName(name) {
			msg := fmt.Sprintf("target name %q is reserved for a subcommand", name)
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTarget, msg), "target", name)
		}
		targets, err := project.Targets.With(toTarget(name, file.Targets[name]))
		if err != nil {
			return nil, err
		}
		project.Targets = targets
	}

	return project, nil
}

// toTarget converts a DTO to a domain target. The output name defaults to the target name.
func toTarget(name string, dto TargetDTO) domain.Target {
	output := dto.Output
	if output == "" {
		output = name
	}
	return domain.Target{
		Name:        name,
		Description: dto.Description,
		Compiler:    dto.Compiler,
		Output:      output,
		Sources:     slices.Clone(dto.Sources),
		Packages:    slices.Clone(dto.Packages),
		LinkFlags:   slices.Clone(dto.LinkFlags),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
