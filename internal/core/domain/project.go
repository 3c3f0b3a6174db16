package domain

// Project is the resolved build configuration of a working directory.
type Project struct {
	Profiles      ProfileTable
	Targets       Catalogue
	OutputDir     string
	DefaultTarget string
}

// DefaultProject returns the built-in configuration used when no pmk.yaml exists.
func DefaultProject() *Project {
	return &Project{
		Profiles:      DefaultProfiles(),
		Targets:       DefaultCatalogue(),
		OutputDir:     DefaultOutputDir,
		DefaultTarget: DefaultTargetName,
	}
}
