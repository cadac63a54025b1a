package ports

import (
	"time"

	"go.trai.ch/sassy/internal/core/domain"
)

// MetricsRecorder records compile outcomes.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type MetricsRecorder interface {
	// ObserveCompile records one executed compile request.
	ObserveCompile(backend domain.BackendKind, d time.Duration, outcome domain.Outcome)
	// IncMinify records one minification attempt.
	IncMinify(success bool)
}
