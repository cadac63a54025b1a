// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/sassy/internal/core/domain"
)

// ProcessRunner defines the interface for running external compiler processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Run executes the command and waits for it to exit.
	// It returns the combined stdout and stderr output. A non-zero exit is reported as an
	// error carrying the exit code and the captured output.
	Run(ctx context.Context, cmd domain.Command) ([]byte, error)
}
