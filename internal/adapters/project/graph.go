// Package project resolves the stylesheet documents of the workspace a source belongs to.
package project

import (
	"context"
	"path/filepath"

	"go.trai.ch/sassy/internal/adapters/fs"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Graph implements ports.ProjectGraph over the directory tree of a workspace.
// The workspace of a source is the directory holding the nearest sassy.yaml, or the
// source directory itself when there is none.
type Graph struct {
	loader ports.ConfigLoader
	walker *fs.Walker
}

// NewGraph creates a Graph.
func NewGraph(loader ports.ConfigLoader, walker *fs.Walker) *Graph {
	return &Graph{loader: loader, walker: walker}
}

// ResolveRootDocuments returns every non-partial stylesheet of the workspace containing source,
// in lexical path order.
func (g *Graph) ResolveRootDocuments(ctx context.Context, source string) ([]string, error) {
	ws, err := g.loader.Load(filepath.Dir(source))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectGraphFailed.Error()), "source", source)
	}

	var roots []string
	for path := range g.walker.WalkFiles(ws.Root, ws.Ignore) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if domain.IsRootStylesheet(path) {
			roots = append(roots, path)
		}
	}

	return roots, nil
}
