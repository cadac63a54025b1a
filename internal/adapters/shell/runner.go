// Package shell runs external compiler processes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner. Process output is echoed line by line as debug traces.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes cmd and waits for it to exit, returning the combined output.
// Cancelling ctx kills the process.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) ([]byte, error) {
	if cmd.Path == "" {
		return nil, zerr.Wrap(domain.ErrProcessFailed, "empty command")
	}

	var combined syncBuffer
	debugLog := &logWriter{logger: r.logger}
	w := io.MultiWriter(&combined, debugLog)

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // compiler paths come from configuration
	c.Dir = cmd.Dir
	c.Stdout = w
	c.Stderr = w

	err := c.Run()
	_ = debugLog.Close()
	out := combined.Bytes()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.Wrap(err, domain.ErrProcessFailed.Error())
		wrapped = zerr.With(wrapped, "command", cmd.Path)
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		if msg := strings.TrimSpace(string(out)); msg != "" {
			wrapped = zerr.With(wrapped, "output", msg)
		}
		return out, wrapped
	}

	return out, nil
}

// syncBuffer guards a bytes.Buffer shared by stdout and stderr.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return bytes.Clone(b.buf.Bytes())
}

type logWriter struct {
	mu     sync.Mutex
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg != "" {
		w.logger.Debug(msg)
	}
}
