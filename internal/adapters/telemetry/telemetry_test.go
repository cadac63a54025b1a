package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/sassy/internal/adapters/telemetry"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/sassy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = telemetry.NoOpSpan{}
	var _ sdktrace.SpanProcessor = (*telemetry.LogBridge)(nil)
}

func TestOTelTracer_RecordsAttributesAndErrors(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	tracer := telemetry.NewOTelTracer(tp, "test")

	_, span := tracer.Start(context.Background(), "compile")
	span.SetAttribute("source", "/w/site.scss")
	span.SetAttribute("minify", true)
	span.SetAttribute("count", 3)
	span.SetAttribute("backend", domain.BackendLibSass)
	span.SetAttribute("took", 2*time.Second)
	span.RecordError(errors.New("boom"))
	span.RecordError(nil)
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	got := ended[0]

	assert.Equal(t, "compile", got.Name())
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "boom", got.Status().Description)
	assert.Contains(t, got.Attributes(), attribute.String("source", "/w/site.scss"))
	assert.Contains(t, got.Attributes(), attribute.Bool("minify", true))
	assert.Contains(t, got.Attributes(), attribute.Int("count", 3))
	assert.Contains(t, got.Attributes(), attribute.String("backend", "libsass"))
	assert.Contains(t, got.Attributes(), attribute.String("took", "2s"))
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	gotCtx, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, gotCtx)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestLogBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var line string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { line = msg })

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(mockLogger)))
	tracer := telemetry.NewOTelTracer(tp, "test")

	_, span := tracer.Start(context.Background(), "compile")
	span.SetAttribute("source", "a.scss")
	span.SetAttribute("backend", "compass")
	span.RecordError(errors.New("exit status 1"))
	span.End()

	assert.True(t, strings.HasPrefix(line, "span compile took "), line)
	assert.Contains(t, line, " backend=compass source=a.scss")
	assert.True(t, strings.HasSuffix(line, " status=error: exit status 1"), line)
}

func TestLogBridge_NilLogger(_ *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(nil)))
	_, span := tp.Tracer("test").Start(context.Background(), "compile")
	span.End()
}
