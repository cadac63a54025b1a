// Package selector chooses the compiler backend for a source directory.
package selector

import (
	"go.trai.ch/sassy/internal/adapters/backend/compass"
	"go.trai.ch/sassy/internal/adapters/backend/libsass"
	"go.trai.ch/sassy/internal/adapters/backend/sassgem"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
)

var _ ports.BackendSelector = (*Selector)(nil)

// Selector picks compass, the sass gem or libsass, in that order of preference.
// The environment is probed on every call, so installing a tool takes effect on the next save.
type Selector struct {
	probe  ports.EnvironmentProbe
	runner ports.ProcessRunner
	fs     ports.FileSystem
	native ports.NativeCompiler
}

// New creates a Selector.
func New(
	probe ports.EnvironmentProbe,
	runner ports.ProcessRunner,
	fs ports.FileSystem,
	native ports.NativeCompiler,
) *Selector {
	return &Selector{
		probe:  probe,
		runner: runner,
		fs:     fs,
		native: native,
	}
}

// Select returns the backend for sources in dir. It never returns nil.
func (s *Selector) Select(dir string, opts domain.Options) ports.Backend {
	if s.probe.IsCompassInstalled(opts) && s.probe.IsInCompassProject(dir) {
		if exe, ok := s.probe.CompassExecutable(opts); ok {
			return compass.New(s.runner, exe)
		}
	}

	if s.probe.IsSassGemInstalled(opts) {
		return sassgem.New(s.runner, opts.RubyInstallPath, opts)
	}

	return libsass.New(s.native, s.fs, opts)
}
