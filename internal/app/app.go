// Package app implements the application layer for sassy.
package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/sassy/internal/engine/router"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const metricsShutdownTimeout = 5 * time.Second

// LogConfigurer is implemented by loggers that can be reconfigured at runtime.
type LogConfigurer interface {
	SetJSON(enabled bool)
	SetDebug(enabled bool)
}

// App represents the main application logic.
type App struct {
	loader   ports.ConfigLoader
	source   ports.SaveSource
	router   *router.Router
	pipeline *Pipeline
	logger   ports.Logger
	metrics  http.Handler
}

// New creates a new App instance. metrics may be nil when no metrics endpoint is served.
func New(
	loader ports.ConfigLoader,
	source ports.SaveSource,
	r *router.Router,
	executor Executor,
	log ports.Logger,
	metrics http.Handler,
) *App {
	return &App{
		loader:   loader,
		source:   source,
		router:   r,
		pipeline: NewPipeline(executor, log),
		logger:   log,
		metrics:  metrics,
	}
}

// WatchOptions configures the Watch method.
type WatchOptions struct {
	// Debug enables debug logging regardless of the configuration file.
	Debug bool
	// MetricsAddr serves Prometheus metrics on this address when set.
	MetricsAddr string
}

// CompileOptions configures the Compile method.
type CompileOptions struct {
	// Debug enables debug logging regardless of the configuration file.
	Debug bool
}

// ConfigureLogging switches the logger between pretty and JSON output and sets the debug level.
func (a *App) ConfigureLogging(json, debug bool) {
	if c, ok := a.logger.(LogConfigurer); ok {
		c.SetJSON(json)
		c.SetDebug(debug)
	}
}

// Watch compiles stylesheets as they are saved until ctx is cancelled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}
	a.enableDebug(ws.Options, opts.Debug)

	g, ctx := errgroup.WithContext(ctx)

	if err := a.source.Start(ctx, ws.Root); err != nil {
		return err
	}
	defer func() {
		_ = a.source.Stop()
	}()

	if opts.MetricsAddr != "" && a.metrics != nil {
		a.serveMetrics(ctx, g, opts.MetricsAddr)
	}

	a.logger.Info("watching " + ws.Root)

	g.Go(func() error {
		for event := range a.source.Events() {
			snapshot := a.snapshot(event.Path, ws.Options, opts.Debug)
			for _, req := range a.router.Route(ctx, event, snapshot) {
				a.pipeline.Dispatch(ctx, req, snapshot)
			}
		}
		a.pipeline.Wait()
		return nil
	})

	return g.Wait()
}

// Compile compiles the given stylesheets once. Partials compile every root document of
// their project. It returns domain.ErrCompileFailed when any document failed; the
// individual failures have been logged.
func (a *App) Compile(ctx context.Context, paths []string, opts CompileOptions) error {
	if len(paths) == 0 {
		return domain.ErrNoSourcesSpecified
	}

	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}
	a.enableDebug(ws.Options, opts.Debug)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	var failed atomic.Int32
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid source path"), "path", path)
		}

		snapshot := a.snapshot(abs, ws.Options, opts.Debug)
		snapshot.GenerateOnSave = true

		requests := a.router.Route(ctx, domain.NewSaveEvent(abs, time.Now()), snapshot)
		if len(requests) == 0 {
			a.logger.Warn("nothing to compile for " + path)
			continue
		}

		for _, req := range requests {
			g.Go(func() error {
				if res := a.pipeline.Run(ctx, req, snapshot); res.Err != nil && !res.Skipped {
					failed.Add(1)
				}
				return nil
			})
		}
	}
	_ = g.Wait()

	if failed.Load() > 0 {
		return domain.ErrCompileFailed
	}
	return nil
}

// WriteConfig writes the effective configuration of the working directory as YAML.
func (a *App) WriteConfig(w io.Writer) error {
	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}

	doc := struct {
		Root    string         `yaml:"root"`
		Ignore  []string       `yaml:"ignore,omitempty"`
		Options domain.Options `yaml:"options"`
	}{
		Root:    ws.Root,
		Ignore:  ws.Ignore,
		Options: ws.Options,
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return zerr.Wrap(err, "failed to encode configuration")
	}
	return enc.Close()
}

func (a *App) loadWorkspace() (*domain.Workspace, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}

	ws, err := a.loader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return ws, nil
}

// snapshot reads the options governing path. The configuration is read again for every
// save so edits to sassy.yaml apply without a restart.
func (a *App) snapshot(path string, fallback domain.Options, debug bool) domain.Options {
	opts := fallback
	if ws, err := a.loader.Load(filepath.Dir(path)); err != nil {
		a.logger.Warn("using previous configuration: " + err.Error())
	} else {
		opts = ws.Options
	}

	opts.DebugLogging = opts.DebugLogging || debug
	return opts
}

func (a *App) enableDebug(opts domain.Options, debug bool) {
	if !opts.DebugLogging && !debug {
		return
	}

	if c, ok := a.logger.(LogConfigurer); ok {
		c.SetDebug(true)
	}

	opts.DebugLogging = true
	if out, err := yaml.Marshal(opts); err == nil {
		a.logger.Debug("options:\n" + string(out))
	}
}

func (a *App) serveMetrics(ctx context.Context, g *errgroup.Group, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsShutdownTimeout,
	}

	g.Go(func() error {
		a.logger.Info("serving metrics on " + addr + "/metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.With(zerr.Wrap(err, "metrics server failed"), "addr", addr)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
