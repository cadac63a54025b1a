package domain

import "go.trai.ch/zerr"

var (
	// ErrStaleRequest marks a compile request superseded by a newer save. It is not a failure.
	ErrStaleRequest = zerr.New("stale compile request")

	// ErrBackendUnavailable is returned when no compiler backend could be selected.
	ErrBackendUnavailable = zerr.New("no compiler backend available")

	// ErrCompileFailed is returned when a backend fails to compile a source document.
	ErrCompileFailed = zerr.New("failed to compile css")

	// ErrMinifyFailed is returned when the minified stylesheet cannot be generated.
	ErrMinifyFailed = zerr.New("failed to generate minified css file")

	// ErrRegistrationFailed is returned when a generated file cannot be nested under its source.
	ErrRegistrationFailed = zerr.New("failed to include generated file in project")

	// ErrSourceStatFailed is returned when the source document cannot be stated.
	ErrSourceStatFailed = zerr.New("failed to stat source document")

	// ErrProcessFailed is returned when an external compiler process exits unsuccessfully.
	ErrProcessFailed = zerr.New("compiler process failed")

	// ErrNativeUnavailable is returned when the native compiler library is not linked in.
	ErrNativeUnavailable = zerr.New("native sass library not available in this build")

	// ErrNativeCompileFailed is returned when the native compiler library reports an error.
	ErrNativeCompileFailed = zerr.New("native sass compile failed")

	// ErrCompassConfigMissing is returned when a compass project has no config.rb.
	ErrCompassConfigMissing = zerr.New("compass config.rb not found")

	// ErrOutputWriteFailed is returned when generated output cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write generated output")

	// ErrFileReadFailed is returned when a file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrProjectGraphFailed is returned when the root documents of a project cannot be resolved.
	ErrProjectGraphFailed = zerr.New("failed to resolve root documents")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no sassy.yaml exists in the directory hierarchy.
	ErrConfigNotFound = zerr.New("could not find sassy.yaml")

	// ErrRegistryReadFailed is returned when the nesting registry cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read nesting registry")

	// ErrRegistryWriteFailed is returned when the nesting registry cannot be written.
	ErrRegistryWriteFailed = zerr.New("failed to write nesting registry")

	// ErrRegistryUnmarshalFailed is returned when a nesting record is corrupt.
	ErrRegistryUnmarshalFailed = zerr.New("failed to unmarshal nesting record")

	// ErrWatcherStartFailed is returned when the save watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrRequestPanicked is returned when executing a compile request panics.
	ErrRequestPanicked = zerr.New("compile request panicked")

	// ErrInvalidLogFormat is returned for an unknown --log-format value.
	ErrInvalidLogFormat = zerr.New("invalid log format")

	// ErrNoSourcesSpecified is returned when compile is called without any files.
	ErrNoSourcesSpecified = zerr.New("no source files specified")
)
