// Package router turns save events into compile requests for root documents.
package router

import (
	"context"

	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Router decides which root documents a save event should rebuild.
type Router struct {
	graph  ports.ProjectGraph
	logger ports.Logger
}

// New creates a Router that resolves partials through graph.
func New(graph ports.ProjectGraph, logger ports.Logger) *Router {
	return &Router{graph: graph, logger: logger}
}

// Route returns one compile request per root document affected by event.
// Saving a root document rebuilds it. Saving a partial rebuilds every root document in
// its project. Anything else, including a disabled pipeline, yields no requests.
func (r *Router) Route(ctx context.Context, event domain.SaveEvent, opts domain.Options) []domain.CompileRequest {
	if !domain.IsStylesheetSource(event.Path) || event.Kind != domain.SaveKindContentSaved {
		return nil
	}

	r.trace(opts, "detected file saved: "+event.Path)

	if !opts.GenerateOnSave {
		r.trace(opts, "compile on save disabled, ignoring "+event.Path)
		return nil
	}

	doc := domain.NewSourceDocument(event.Path)
	if !doc.IsPartial {
		r.trace(opts, "compiling: "+doc.Path)
		return []domain.CompileRequest{{Document: doc, RequestedAt: event.SavedAt}}
	}

	r.trace(opts, "compiling all files referencing include file: "+doc.Path)

	roots, err := r.graph.ResolveRootDocuments(ctx, doc.Path)
	if err != nil {
		r.logger.Error(zerr.With(err, "partial", doc.Path))
		return nil
	}

	var requests []domain.CompileRequest
	for _, path := range roots {
		if !domain.IsRootStylesheet(path) {
			continue
		}
		r.trace(opts, "compiling: "+path)
		requests = append(requests, domain.CompileRequest{
			Document:    domain.NewSourceDocument(path),
			RequestedAt: event.SavedAt,
		})
	}
	return requests
}

func (r *Router) trace(opts domain.Options, msg string) {
	if opts.DebugLogging {
		r.logger.Debug(msg)
	}
}
