package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassy/internal/adapters/watcher"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func startWatcher(t *testing.T, root string) (<-chan domain.SaveEvent, context.CancelFunc) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(mockLogger, 10*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, w.Start(ctx, root))

	out := make(chan domain.SaveEvent, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range w.Events() {
			out <- ev
		}
	}()

	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
		<-done
	})

	return out, cancel
}

func waitEvent(t *testing.T, events <-chan domain.SaveEvent) domain.SaveEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for save event")
		return domain.SaveEvent{}
	}
}

func TestWatcher_EmitsSaveForStylesheet(t *testing.T) {
	root := t.TempDir()
	events, _ := startWatcher(t, root)

	path := filepath.Join(root, "site.scss")
	require.NoError(t, os.WriteFile(path, []byte("a{}"), domain.PrivateFilePerm))

	ev := waitEvent(t, events)
	assert.Equal(t, path, ev.Path)
	assert.Equal(t, domain.SaveKindContentSaved, ev.Kind)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, ev.SavedAt.Equal(info.ModTime()))
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	events, _ := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "site.css"), []byte("a{}"), domain.PrivateFilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), nil, domain.PrivateFilePerm))
	path := filepath.Join(root, "later.scss")
	require.NoError(t, os.WriteFile(path, nil, domain.PrivateFilePerm))

	assert.Equal(t, path, waitEvent(t, events).Path)
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	events, _ := startWatcher(t, root)

	dir := filepath.Join(root, "pages")
	require.NoError(t, os.Mkdir(dir, domain.DirPerm))

	path := filepath.Join(dir, "home.scss")
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("a{}"), domain.PrivateFilePerm)
		select {
		case ev := <-events:
			return ev.Path == path
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_EventsEndAfterCancel(t *testing.T) {
	root := t.TempDir()

	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl), 10*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, w.Start(ctx, root))
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range w.Events() {
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events iterator did not end")
	}
	require.NoError(t, w.Stop())
}
