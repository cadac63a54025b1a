package ports

import (
	"context"

	"go.trai.ch/sassy/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

// Backend is a substitutable compiler turning one stylesheet source into CSS.
type Backend interface {
	// Kind identifies the backend variant.
	Kind() domain.BackendKind

	// OutputPath returns where the compiled stylesheet for source is written.
	// An empty result means the backend has no output location for source.
	OutputPath(source string) string

	// Compile compiles source into output. It may block for as long as the compiler runs.
	Compile(ctx context.Context, source, output string) error
}

// BackendSelector chooses the backend for a source directory.
type BackendSelector interface {
	// Select returns the backend to use for sources in dir.
	// Selection is evaluated on every call and is deterministic for a fixed environment.
	Select(dir string, opts domain.Options) Backend
}

// EnvironmentProbe answers questions about the compiler tooling installed on the machine.
type EnvironmentProbe interface {
	// IsCompassInstalled reports whether the compass executable can be found.
	IsCompassInstalled(opts domain.Options) bool

	// CompassExecutable returns the compass executable to run. ok is false when none is found.
	CompassExecutable(opts domain.Options) (path string, ok bool)

	// IsInCompassProject reports whether dir belongs to a compass project.
	IsInCompassProject(dir string) bool

	// IsSassGemInstalled reports whether the configured ruby root carries the sass executable.
	IsSassGemInstalled(opts domain.Options) bool
}

// NativeOptions are the options passed to the in-process compiler.
type NativeOptions struct {
	IncludeSourceComments bool
}

// NativeCompiler compiles stylesheets in-process.
type NativeCompiler interface {
	// CompileFile compiles the source file and returns the generated CSS.
	CompileFile(source string, opts NativeOptions) (string, error)
}
