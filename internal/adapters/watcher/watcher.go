// Package watcher turns file system notifications into stylesheet save events.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SaveSource = (*Watcher)(nil)

// DefaultDebounceWindow is the window within which writes to one file count as a single save.
const DefaultDebounceWindow = 50 * time.Millisecond

const eventChannelBuffer = 100

// shouldSkipDirectories are directories that are never watched.
var shouldSkipDirectories = map[string]bool{
	".git":              true,
	".jj":               true,
	".sass-cache":       true,
	"node_modules":      true,
	domain.SassyDirName: true,
}

// Watcher implements ports.SaveSource using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	debouncer *Debouncer
	events    chan domain.SaveEvent

	mu       sync.RWMutex
	closed   bool
	done     chan struct{}
	doneOnce sync.Once
}

// NewWatcher creates a watcher that coalesces writes within window.
func NewWatcher(logger ports.Logger, window time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		events:    make(chan domain.SaveEvent, eventChannelBuffer),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.emitSaved)
	return w, nil
}

// Start begins watching root recursively. Events flow until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range w.watchRecursively(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "dir", dir)
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of save events. It ends once the watcher has shut down.
func (w *Watcher) Events() iter.Seq[domain.SaveEvent] {
	return func(yield func(domain.SaveEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are not watched
			}
			if d.IsDir() {
				if path != root && shouldSkipDirectories[d.Name()] {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error: " + err.Error())
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		if err != nil {
			return
		}
		if info.IsDir() {
			if event.Has(fsnotify.Create) && !shouldSkipDirectories[info.Name()] {
				for dir := range w.watchRecursively(event.Name) {
					_ = w.fsWatcher.Add(dir)
				}
			}
			return
		}
		if domain.IsStylesheetSource(event.Name) {
			w.debouncer.Add(event.Name)
		}
	case event.Has(fsnotify.Remove):
		if domain.IsStylesheetSource(event.Name) {
			w.emit(domain.SaveEvent{Path: event.Name, SavedAt: time.Now(), Kind: domain.SaveKindRemoved})
		}
	case event.Has(fsnotify.Rename):
		if domain.IsStylesheetSource(event.Name) {
			w.emit(domain.SaveEvent{Path: event.Name, SavedAt: time.Now(), Kind: domain.SaveKindRenamed})
		}
	}
}

// emitSaved is the debouncer callback. The save time is the file's modification time, so a
// compile request only goes stale once the file is written again.
func (w *Watcher) emitSaved(paths []string) {
	for _, path := range paths {
		savedAt := time.Now()
		if info, err := os.Stat(path); err == nil {
			savedAt = info.ModTime()
		}
		w.emit(domain.NewSaveEvent(path, savedAt))
	}
}

func (w *Watcher) emit(event domain.SaveEvent) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return
	}

	select {
	case w.events <- event:
	case <-w.done:
	}
}

func (w *Watcher) shutdown() {
	w.debouncer.Stop()
	w.doneOnce.Do(func() { close(w.done) })

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.closed {
		w.closed = true
		close(w.events)
	}
}
