package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassy/internal/adapters/metrics"
	"go.trai.ch/sassy/internal/core/domain"
)

func TestPrometheusRecorder_ObserveCompile(t *testing.T) {
	t.Parallel()

	reg := prom.NewRegistry()
	pr := metrics.NewPrometheusRecorder(reg)

	pr.ObserveCompile(domain.BackendLibSass, 150*time.Millisecond, domain.OutcomeCompiled)
	pr.ObserveCompile(domain.BackendLibSass, 20*time.Millisecond, domain.OutcomeFailed)
	pr.ObserveCompile("", 0, domain.OutcomeStale)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	assert.Equal(t, 3, testutil.CollectAndCount(reg, "sassy_compiles_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "sassy_compile_duration_seconds"))
}

func TestPrometheusRecorder_IncMinify(t *testing.T) {
	t.Parallel()

	reg := prom.NewRegistry()
	pr := metrics.NewPrometheusRecorder(reg)

	pr.IncMinify(true)
	pr.IncMinify(true)
	pr.IncMinify(false)

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "sassy_minifications_total"))
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	t.Parallel()

	var pr *metrics.PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveCompile(domain.BackendCompass, time.Second, domain.OutcomeCompiled)
		pr.IncMinify(true)
	})
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	t.Parallel()

	pr := metrics.NewPrometheusRecorder(nil)
	pr.ObserveCompile(domain.BackendSassGem, time.Second, domain.OutcomeCompiled)

	srv := httptest.NewServer(pr.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL) //nolint:noctx // test server
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `sassy_compiles_total{backend="sass-gem",outcome="compiled"} 1`)
}
