package ports

import (
	"context"
	"iter"

	"go.trai.ch/sassy/internal/core/domain"
)

// SaveSource delivers "file saved" notifications.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type SaveSource interface {
	// Start begins watching the given root directory recursively.
	Start(ctx context.Context, root string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of save events. It ends when the watcher stops.
	Events() iter.Seq[domain.SaveEvent]
}
