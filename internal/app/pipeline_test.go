package app_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassy/internal/app"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type executorFunc func(ctx context.Context, req domain.CompileRequest, opts domain.Options) domain.CompileResult

func (f executorFunc) Execute(ctx context.Context, req domain.CompileRequest, opts domain.Options) domain.CompileResult {
	return f(ctx, req, opts)
}

// recordingExecutor records requests and compiles each of them to a sibling .css file.
type recordingExecutor struct {
	mu   sync.Mutex
	reqs []domain.CompileRequest
	fail map[string]bool
}

func (e *recordingExecutor) Execute(_ context.Context, req domain.CompileRequest, _ domain.Options) domain.CompileResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reqs = append(e.reqs, req)
	if e.fail[req.Document.Path] {
		return domain.CompileResult{Err: domain.ErrCompileFailed}
	}
	return domain.CompileResult{OutputPath: req.Document.Path + ".css"}
}

func (e *recordingExecutor) paths() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.reqs))
	for _, r := range e.reqs {
		out = append(out, r.Document.Path)
	}
	return out
}

func permissiveLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	l := mocks.NewMockLogger(ctrl)
	l.EXPECT().Debug(gomock.Any()).AnyTimes()
	l.EXPECT().Info(gomock.Any()).AnyTimes()
	l.EXPECT().Warn(gomock.Any()).AnyTimes()
	l.EXPECT().Error(gomock.Any()).AnyTimes()
	return l
}

func TestPipeline_RunRecoversPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged error
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err })

	p := app.NewPipeline(executorFunc(func(context.Context, domain.CompileRequest, domain.Options) domain.CompileResult {
		panic("nil map write")
	}), mockLogger)

	req := domain.CompileRequest{Document: domain.NewSourceDocument("/w/site.scss")}
	res := p.Run(t.Context(), req, domain.Options{})

	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, domain.ErrRequestPanicked)
	assert.Equal(t, res.Err, logged)
	assert.False(t, res.Succeeded())
}

func TestPipeline_RunLogsCompiledOutput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("compiled /w/site.scss to /w/site.scss.css")

	p := app.NewPipeline(&recordingExecutor{}, mockLogger)
	res := p.Run(t.Context(), domain.CompileRequest{Document: domain.NewSourceDocument("/w/site.scss")}, domain.Options{})
	assert.True(t, res.Succeeded())
}

func TestPipeline_DispatchRunsConcurrently(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)

		release := make(chan struct{})
		var running atomic.Int32
		var finished atomic.Int32

		p := app.NewPipeline(executorFunc(func(context.Context, domain.CompileRequest, domain.Options) domain.CompileResult {
			running.Add(1)
			<-release
			time.Sleep(time.Second)
			finished.Add(1)
			return domain.CompileResult{}
		}), permissiveLogger(ctrl))

		for _, path := range []string{"/w/a.scss", "/w/b.scss", "/w/c.scss"} {
			p.Dispatch(t.Context(), domain.CompileRequest{Document: domain.NewSourceDocument(path)}, domain.Options{})
		}

		synctest.Wait()
		assert.Equal(t, int32(3), running.Load())
		assert.Equal(t, int32(0), finished.Load())

		close(release)
		p.Wait()
		assert.Equal(t, int32(3), finished.Load())
	})
}

func TestPipeline_PanicDoesNotAffectOthers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)

		var completed atomic.Int32
		p := app.NewPipeline(executorFunc(func(_ context.Context, req domain.CompileRequest, _ domain.Options) domain.CompileResult {
			if req.Document.Path == "/w/bad.scss" {
				panic("boom")
			}
			completed.Add(1)
			return domain.CompileResult{}
		}), permissiveLogger(ctrl))

		for _, path := range []string{"/w/a.scss", "/w/bad.scss", "/w/b.scss"} {
			p.Dispatch(t.Context(), domain.CompileRequest{Document: domain.NewSourceDocument(path)}, domain.Options{})
		}
		p.Wait()

		assert.Equal(t, int32(2), completed.Load())
	})
}
