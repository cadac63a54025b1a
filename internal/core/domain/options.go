package domain

// Options is the configuration snapshot used for a single compile decision.
// It is a plain value: callers receive copies and never mutate shared state.
type Options struct {
	// GenerateOnSave enables compiling on save.
	GenerateOnSave bool `yaml:"generateOnSave"`
	// MinifyOnSave writes a <name>.min.css next to every generated stylesheet.
	MinifyOnSave bool `yaml:"minifyOnSave"`
	// IncludeInProject nests generated files under their source in the project registry.
	IncludeInProject bool `yaml:"includeInProject"`
	// IncludeInProjectOutput registers nested files with the Content build action.
	IncludeInProjectOutput bool `yaml:"includeInProjectOutput"`
	// OutputDirectory redirects generated output. Relative paths resolve against the source directory.
	OutputDirectory string `yaml:"outputDirectory"`
	// ReplaceOutputWithError overwrites the output with an error comment when compilation fails.
	ReplaceOutputWithError bool `yaml:"replaceOutputWithError"`
	// RubyInstallPath is the root of a ruby installation carrying the sass gem.
	RubyInstallPath string `yaml:"rubyInstallPath"`
	// IncludeSourceComments emits line comments pointing back to the source.
	IncludeSourceComments bool `yaml:"includeSourceComments"`
	// DebugLogging enables debug traces for every pipeline decision.
	DebugLogging bool `yaml:"debugLogging"`
}

// DefaultOptions returns the options used when no configuration file sets them.
func DefaultOptions() Options {
	return Options{
		GenerateOnSave: true,
	}
}

// BuildAction is the action a registered generated file receives in the project.
type BuildAction uint8

const (
	// BuildActionNone registers the file without including it in the project output.
	BuildActionNone BuildAction = iota
	// BuildActionContent registers the file as project content.
	BuildActionContent
)

// String returns the name of the build action.
func (a BuildAction) String() string {
	if a == BuildActionContent {
		return "Content"
	}
	return "None"
}

// RegistrationAction returns the build action nested files receive under these options.
func (o Options) RegistrationAction() BuildAction {
	if o.IncludeInProjectOutput {
		return BuildActionContent
	}
	return BuildActionNone
}

// ShouldRegister reports whether generated output is nested under its source.
// Output redirected to a separate directory is never nested.
func (o Options) ShouldRegister() bool {
	return o.IncludeInProject && o.OutputDirectory == ""
}

// BackendKind identifies a compiler backend variant.
type BackendKind string

const (
	// BackendCompass compiles through the compass directory convention.
	BackendCompass BackendKind = "compass"
	// BackendSassGem compiles with the ruby sass gem executable.
	BackendSassGem BackendKind = "sass-gem"
	// BackendLibSass compiles in-process with libsass.
	BackendLibSass BackendKind = "libsass"
)
