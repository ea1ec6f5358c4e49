// Package realtime connects the tasks change feed to the task-list cache.
// Invalidation is deliberately coarse: any notification drops every cached
// list, and the next read repopulates from storage.
package realtime

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/crewdesk/crewdesk-api/internal/api/metrics"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// Bridge consumes task change notifications and busts the task cache.
type Bridge struct {
	sub   ports.ChangeSubscription
	cache ports.TaskCache
	log   zerolog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewBridge wires a change subscription to the cache. The bridge owns the
// subscription from this point on and releases it in Close.
func NewBridge(sub ports.ChangeSubscription, cache ports.TaskCache, log zerolog.Logger) *Bridge {
	return &Bridge{
		sub:   sub,
		cache: cache,
		log:   log,
		done:  make(chan struct{}),
	}
}

// Start launches the consumer goroutine. It stops when ctx is cancelled or
// the subscription channel closes.
func (b *Bridge) Start(ctx context.Context) {
	go b.run(ctx)
}

func (b *Bridge) run(ctx context.Context) {
	defer close(b.done)

	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-b.sub.Changes():
			if !ok {
				b.log.Warn().Msg("change feed closed")
				return
			}

			metrics.TaskChangesReceivedTotal.WithLabelValues(string(change.Op)).Inc()

			if err := b.cache.InvalidateAll(ctx); err != nil {
				// The stale entry survives until its TTL or the next
				// successful invalidation; reads stay correct at storage.
				b.log.Error().Err(err).Str("task_id", change.TaskID).Msg("cache invalidation failed")
				continue
			}

			metrics.CacheInvalidationsTotal.Inc()
			b.log.Debug().Str("op", string(change.Op)).Str("task_id", change.TaskID).Msg("task cache invalidated")
		}
	}
}

// Close releases the subscription handle and waits for the consumer to
// drain. Safe to call more than once and on every shutdown path.
func (b *Bridge) Close() error {
	var err error
	b.closeOnce.Do(func() {
		err = b.sub.Close()
		<-b.done
		// When run exited on context cancellation the decoder may still
		// hold an unsent change. Drain until the channel closes so its
		// goroutine can finish.
		for range b.sub.Changes() {
		}
	})
	return err
}
