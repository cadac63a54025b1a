// Package libsass compiles stylesheets in-process with libsass.
package libsass

import (
	"context"

	"go.trai.ch/sassy/internal/adapters/backend"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Backend compiles with a ports.NativeCompiler and writes the result itself.
type Backend struct {
	compiler              ports.NativeCompiler
	fs                    ports.FileSystem
	includeSourceComments bool
	outputDirectory       string
}

// New creates a libsass backend.
func New(compiler ports.NativeCompiler, fs ports.FileSystem, opts domain.Options) *Backend {
	return &Backend{
		compiler:              compiler,
		fs:                    fs,
		includeSourceComments: opts.IncludeSourceComments,
		outputDirectory:       opts.OutputDirectory,
	}
}

// Kind identifies the backend variant.
func (b *Backend) Kind() domain.BackendKind {
	return domain.BackendLibSass
}

// OutputPath returns the sibling .css path, or its place in the output directory.
func (b *Backend) OutputPath(source string) string {
	return backend.OutputFor(source, b.outputDirectory)
}

// Compile compiles source and writes the CSS to output, creating its directory if needed.
func (b *Backend) Compile(ctx context.Context, source, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	css, err := b.compiler.CompileFile(source, ports.NativeOptions{
		IncludeSourceComments: b.includeSourceComments,
	})
	if err != nil {
		return zerr.With(err, "source", source)
	}

	return b.fs.WriteFile(output, []byte(css))
}
