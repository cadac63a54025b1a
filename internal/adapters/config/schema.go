package config

// Sassyfile represents the structure of the sassy.yaml configuration file.
type Sassyfile struct {
	Version string      `yaml:"version"`
	Root    string      `yaml:"root"`
	Ignore  []string    `yaml:"ignore"`
	Options *OptionsDTO `yaml:"options"`
}

// OptionsDTO mirrors domain.Options. Nil fields keep their default value.
type OptionsDTO struct {
	GenerateOnSave         *bool   `yaml:"generateOnSave"`
	MinifyOnSave           *bool   `yaml:"minifyOnSave"`
	IncludeInProject       *bool   `yaml:"includeInProject"`
	IncludeInProjectOutput *bool   `yaml:"includeInProjectOutput"`
	OutputDirectory        *string `yaml:"outputDirectory"`
	ReplaceOutputWithError *bool   `yaml:"replaceOutputWithError"`
	RubyInstallPath        *string `yaml:"rubyInstallPath"`
	IncludeSourceComments  *bool   `yaml:"includeSourceComments"`
	DebugLogging           *bool   `yaml:"debugLogging"`
}
