package ports

import (
	"context"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

// ChangePublisher emits task change notifications to the change feed.
// Publish failures are non-fatal for the mutation that triggered them.
type ChangePublisher interface {
	PublishTaskChange(ctx context.Context, change domain.TaskChange) error
}

// ChangeSubscription is a live handle on the tasks change feed. Close must
// be called on every exit path of the owner's lifetime; a leaked handle is
// a leaked channel.
type ChangeSubscription interface {
	// Changes returns the stream of notifications. The channel is closed
	// when the subscription is closed or the transport drops.
	Changes() <-chan domain.TaskChange
	Close() error
}
