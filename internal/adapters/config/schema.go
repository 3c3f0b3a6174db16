package config

// SupportedVersion is the only pmk.yaml schema version understood by the loader.
const SupportedVersion = "1"

// Pmkfile represents the structure of the pmk.yaml configuration file.
type Pmkfile struct {
	Version       string               `yaml:"version"`
	OutputDir     string               `yaml:"output_dir"`
	DefaultTarget string               `yaml:"default_target"`
	Profiles      map[string][]string  `yaml:"profiles"`
	Targets       map[string]TargetDTO `yaml:"targets"`
}

// TargetDTO represents a target definition in the configuration.
type TargetDTO struct {
	Description string   `yaml:"description"`
	Compiler    string   `yaml:"compiler"`
	Output      string   `yaml:"output"`
	Sources     []string `yaml:"sources"`
	Packages    []string `yaml:"packages"`
	LinkFlags   []string `yaml:"link_flags"`
}
