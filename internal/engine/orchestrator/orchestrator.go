// Package orchestrator executes compile requests: staleness check, backend compile,
// project registration and minification.
package orchestrator

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator runs the build pipeline for one compile request at a time.
// It holds no per-request state, so Execute may be called concurrently.
type Orchestrator struct {
	fs        ports.FileSystem
	selector  ports.BackendSelector
	minifier  ports.Minifier
	registrar ports.OutputRegistrar
	logger    ports.Logger
	tracer    ports.Tracer
	metrics   ports.MetricsRecorder
}

// New creates an Orchestrator.
func New(
	fs ports.FileSystem,
	selector ports.BackendSelector,
	minifier ports.Minifier,
	registrar ports.OutputRegistrar,
	logger ports.Logger,
	tracer ports.Tracer,
	metrics ports.MetricsRecorder,
) *Orchestrator {
	return &Orchestrator{
		fs:        fs,
		selector:  selector,
		minifier:  minifier,
		registrar: registrar,
		logger:    logger,
		tracer:    tracer,
		metrics:   metrics,
	}
}

// Execute compiles the requested document unless a newer save has superseded it.
// Failures are logged and reported in the result; they never propagate.
func (o *Orchestrator) Execute(ctx context.Context, req domain.CompileRequest, opts domain.Options) domain.CompileResult {
	source := req.Document.Path

	ctx, span := o.tracer.Start(ctx, "compile")
	defer span.End()
	span.SetAttribute("source", source)

	start := time.Now()
	o.trace(opts, "beginning compile: "+source)

	modTime, err := o.fs.ModTime(source)
	if err != nil {
		return o.fail(span, start, "", "", err)
	}
	if modTime.After(req.RequestedAt) {
		o.trace(opts, "ignoring compile due to stale document: "+source)
		span.SetAttribute("outcome", string(domain.OutcomeStale))
		o.metrics.ObserveCompile("", time.Since(start), domain.OutcomeStale)
		return domain.CompileResult{Skipped: true, Err: domain.ErrStaleRequest}
	}

	backend := o.selector.Select(filepath.Dir(source), opts)
	if backend == nil {
		return o.fail(span, start, "", "", zerr.With(domain.ErrBackendUnavailable, "source", source))
	}
	kind := backend.Kind()
	span.SetAttribute("backend", string(kind))

	output := backend.OutputPath(source)
	if err := backend.Compile(ctx, source, output); err != nil {
		err = errors.Join(domain.ErrCompileFailed, zerr.With(err, "source", source))
		if opts.ReplaceOutputWithError && output != "" {
			_ = o.fs.WriteText(output, ErrorComment(err))
		}
		return o.fail(span, start, kind, output, err)
	}

	if output != "" {
		o.register(ctx, source, output, opts)
		if opts.MinifyOnSave {
			o.minify(ctx, output, opts)
		}
	}

	o.trace(opts, "compile complete: "+source)
	span.SetAttribute("outcome", string(domain.OutcomeCompiled))
	o.metrics.ObserveCompile(kind, time.Since(start), domain.OutcomeCompiled)

	return domain.CompileResult{OutputPath: output}
}

func (o *Orchestrator) fail(
	span ports.Span,
	start time.Time,
	kind domain.BackendKind,
	output string,
	err error,
) domain.CompileResult {
	o.logger.Error(err)
	span.RecordError(err)
	span.SetAttribute("outcome", string(domain.OutcomeFailed))
	o.metrics.ObserveCompile(kind, time.Since(start), domain.OutcomeFailed)
	return domain.CompileResult{OutputPath: output, Err: err}
}

// register nests child under parent when the options ask for project inclusion.
func (o *Orchestrator) register(ctx context.Context, parent, child string, opts domain.Options) {
	if !opts.ShouldRegister() {
		return
	}

	o.trace(opts, "nesting "+child+" under "+parent)
	if err := o.registrar.AddNestedFile(ctx, parent, child, opts.RegistrationAction()); err != nil {
		o.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrRegistrationFailed.Error()), "file", child))
	}
}

// minify writes <name>.min.css next to output and nests it under output.
// A failure never fails the request.
func (o *Orchestrator) minify(ctx context.Context, output string, opts domain.Options) {
	minPath := domain.MinifiedPath(output)
	o.trace(opts, "generating minified css file: "+minPath)

	if err := o.writeMinified(output, minPath); err != nil {
		o.metrics.IncMinify(false)
		err = zerr.With(zerr.Wrap(err, domain.ErrMinifyFailed.Error()), "file", minPath)
		o.logger.Error(err)
		if opts.ReplaceOutputWithError {
			_ = o.fs.WriteText(minPath, ErrorComment(err))
		}
		return
	}

	o.metrics.IncMinify(true)
	o.register(ctx, output, minPath, opts)
}

func (o *Orchestrator) writeMinified(output, minPath string) error {
	css, err := o.fs.ReadFile(output)
	if err != nil {
		return err
	}

	minified, err := o.minifier.Compress(string(css))
	if err != nil {
		return err
	}

	return o.fs.WriteText(minPath, minified)
}

func (o *Orchestrator) trace(opts domain.Options, msg string) {
	if opts.DebugLogging {
		o.logger.Debug(msg)
	}
}
