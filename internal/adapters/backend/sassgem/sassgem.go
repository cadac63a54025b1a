// Package sassgem compiles stylesheets with the ruby sass gem executable.
package sassgem

import (
	"context"
	"path/filepath"
	"runtime"

	"go.trai.ch/sassy/internal/adapters/backend"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
)

// Executable returns the sass executable below a ruby installation root.
func Executable(rubyRoot string) string {
	name := "sass"
	if runtime.GOOS == "windows" {
		name = "sass.bat"
	}
	return filepath.Join(rubyRoot, "bin", name)
}

// Backend runs the sass gem executable of a ruby installation.
type Backend struct {
	runner                ports.ProcessRunner
	rubyRoot              string
	includeSourceComments bool
	outputDirectory       string
}

// New creates a sass gem backend for the ruby installation at rubyRoot.
func New(runner ports.ProcessRunner, rubyRoot string, opts domain.Options) *Backend {
	return &Backend{
		runner:                runner,
		rubyRoot:              rubyRoot,
		includeSourceComments: opts.IncludeSourceComments,
		outputDirectory:       opts.OutputDirectory,
	}
}

// Kind identifies the backend variant.
func (b *Backend) Kind() domain.BackendKind {
	return domain.BackendSassGem
}

// OutputPath returns the sibling .css path, or its place in the output directory.
func (b *Backend) OutputPath(source string) string {
	return backend.OutputFor(source, b.outputDirectory)
}

// Compile runs "sass [--line-comments] --no-cache source output".
func (b *Backend) Compile(ctx context.Context, source, output string) error {
	args := make([]string, 0, 4)
	if b.includeSourceComments {
		args = append(args, "--line-comments")
	}
	args = append(args, "--no-cache", source, output)

	_, err := b.runner.Run(ctx, domain.Command{
		Path: Executable(b.rubyRoot),
		Args: args,
		Dir:  filepath.Dir(source),
	})
	return err
}
