// Package metrics records compile outcomes with Prometheus.
package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
)

var _ ports.MetricsRecorder = (*PrometheusRecorder)(nil)

const namespace = "sassy"

// PrometheusRecorder implements ports.MetricsRecorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry        *prom.Registry
	compileDuration *prom.HistogramVec
	compiles        *prom.CounterVec
	minifications   *prom.CounterVec
}

// NewPrometheusRecorder constructs the compile metrics and registers them with reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		compileDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "compile_duration_seconds",
			Help:      "Duration of executed compile requests",
			Buckets:   prom.DefBuckets,
		}, []string{"backend", "outcome"}),
		compiles: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "compiles_total",
			Help:      "Compile requests by backend and outcome",
		}, []string{"backend", "outcome"}),
		minifications: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "minifications_total",
			Help:      "Minification attempts by result",
		}, []string{"result"}),
	}
	reg.MustRegister(pr.compileDuration, pr.compiles, pr.minifications)
	return pr
}

// ObserveCompile records one executed compile request. Stale requests are counted but not timed.
func (p *PrometheusRecorder) ObserveCompile(backend domain.BackendKind, d time.Duration, outcome domain.Outcome) {
	if p == nil {
		return
	}
	label := string(backend)
	if label == "" {
		label = "none"
	}
	p.compiles.WithLabelValues(label, string(outcome)).Inc()
	if outcome != domain.OutcomeStale {
		p.compileDuration.WithLabelValues(label, string(outcome)).Observe(d.Seconds())
	}
}

// IncMinify records one minification attempt.
func (p *PrometheusRecorder) IncMinify(success bool) {
	if p == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.minifications.WithLabelValues(res).Inc()
}

// Handler serves the recorder's registry in the Prometheus exposition format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
