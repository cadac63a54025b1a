package app

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor executes a single compile request.
type Executor interface {
	Execute(ctx context.Context, req domain.CompileRequest, opts domain.Options) domain.CompileResult
}

// Pipeline supervises compile requests. Every request runs on its own goroutine and a
// panicking request is logged without affecting the others.
type Pipeline struct {
	executor Executor
	logger   ports.Logger
	wg       sync.WaitGroup
}

// NewPipeline creates a Pipeline that executes requests with executor.
func NewPipeline(executor Executor, logger ports.Logger) *Pipeline {
	return &Pipeline{executor: executor, logger: logger}
}

// Dispatch runs req in the background. It never blocks.
func (p *Pipeline) Dispatch(ctx context.Context, req domain.CompileRequest, opts domain.Options) {
	p.wg.Go(func() {
		p.Run(ctx, req, opts)
	})
}

// Wait blocks until every dispatched request has finished.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Run executes req on the calling goroutine, converting a panic into a failed result.
func (p *Pipeline) Run(ctx context.Context, req domain.CompileRequest, opts domain.Options) (res domain.CompileResult) {
	defer zerr.Defer(func(err error) {
		err = zerr.With(errors.Join(domain.ErrRequestPanicked, err), "source", req.Document.Path)
		p.logger.Error(err)
		res = domain.CompileResult{Err: err}
	})

	res = p.executor.Execute(ctx, req, opts)
	if res.Succeeded() && res.OutputPath != "" {
		p.logger.Info("compiled " + req.Document.Path + " to " + res.OutputPath)
	}
	return res
}
