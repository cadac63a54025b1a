package compass

import (
	"context"
	"path/filepath"

	"go.trai.ch/sassy/internal/adapters/backend"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Backend runs "compass compile" for the project a source belongs to.
type Backend struct {
	runner     ports.ProcessRunner
	executable string
}

// New creates a compass backend invoking executable through runner.
func New(runner ports.ProcessRunner, executable string) *Backend {
	return &Backend{runner: runner, executable: executable}
}

// Kind identifies the backend variant.
func (b *Backend) Kind() domain.BackendKind {
	return domain.BackendCompass
}

// OutputPath returns where compass writes the stylesheet for source.
// It is empty when source is not inside a readable compass project.
func (b *Backend) OutputPath(source string) string {
	project, err := b.project(source)
	if err != nil {
		return ""
	}
	return project.OutputPath(source, backend.CSSName(source))
}

// Compile runs compass from the project root. Compass decides the output location itself.
func (b *Backend) Compile(ctx context.Context, source, _ string) error {
	project, err := b.project(source)
	if err != nil {
		return err
	}

	_, err = b.runner.Run(ctx, domain.Command{
		Path: b.executable,
		Args: []string{"compile", project.Root, source},
		Dir:  project.Root,
	})
	return err
}

func (b *Backend) project(source string) (Project, error) {
	root, ok := FindProjectRoot(filepath.Dir(source))
	if !ok {
		return Project{}, zerr.With(domain.ErrCompassConfigMissing, "source", source)
	}
	return LoadProject(root)
}
