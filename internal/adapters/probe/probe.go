// Package probe detects the stylesheet compiler tooling installed on the machine.
package probe

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.trai.ch/sassy/internal/adapters/backend/compass"
	"go.trai.ch/sassy/internal/adapters/backend/sassgem"
	"go.trai.ch/sassy/internal/core/domain"
)

// Probe implements ports.EnvironmentProbe against the host file system and PATH.
type Probe struct {
	lookPath func(string) (string, error)
}

// New creates a Probe that searches PATH with exec.LookPath.
func New() *Probe {
	return &Probe{lookPath: exec.LookPath}
}

// NewWithLookPath creates a Probe with a custom PATH lookup.
func NewWithLookPath(lookPath func(string) (string, error)) *Probe {
	return &Probe{lookPath: lookPath}
}

// CompassExecutable returns the compass executable to run, preferring the one shipped
// with the configured ruby installation. ok is false when compass cannot be found.
func (p *Probe) CompassExecutable(opts domain.Options) (path string, ok bool) {
	if opts.RubyInstallPath != "" {
		name := "compass"
		if runtime.GOOS == "windows" {
			name = "compass.bat"
		}
		candidate := filepath.Join(opts.RubyInstallPath, "bin", name)
		if isFile(candidate) {
			return candidate, true
		}
	}

	found, err := p.lookPath("compass")
	if err != nil {
		return "", false
	}
	return found, true
}

// IsCompassInstalled reports whether a compass executable can be found.
func (p *Probe) IsCompassInstalled(opts domain.Options) bool {
	_, ok := p.CompassExecutable(opts)
	return ok
}

// IsInCompassProject reports whether dir or one of its ancestors holds a compass config.rb.
func (p *Probe) IsInCompassProject(dir string) bool {
	_, ok := compass.FindProjectRoot(dir)
	return ok
}

// IsSassGemInstalled reports whether the configured ruby root exists and carries the sass executable.
func (p *Probe) IsSassGemInstalled(opts domain.Options) bool {
	ruby := opts.RubyInstallPath
	if ruby == "" {
		return false
	}
	if info, err := os.Stat(ruby); err != nil || !info.IsDir() {
		return false
	}
	return isFile(sassgem.Executable(ruby))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
