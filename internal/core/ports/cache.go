package ports

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by TaskCache.Get when no entry exists for the
// requested scope.
var ErrCacheMiss = errors.New("cache miss")

// TaskCache stores rendered task lists keyed by visibility scope. The
// realtime bridge busts the whole cache on any change notification, so the
// next read falls through to storage.
type TaskCache interface {
	Get(ctx context.Context, scope string) ([]TaskView, error)
	Set(ctx context.Context, scope string, tasks []TaskView) error
	// InvalidateAll drops every cached scope.
	InvalidateAll(ctx context.Context) error
}
