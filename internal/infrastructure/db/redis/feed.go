package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

// taskChannel is the pub/sub channel carrying task change notifications.
const taskChannel = "tasks.changes"

// ChangeFeed publishes task change notifications over Redis pub/sub.
type ChangeFeed struct {
	client *redis.Client
}

func NewChangeFeed(client *redis.Client) *ChangeFeed {
	return &ChangeFeed{client: client}
}

func (f *ChangeFeed) PublishTaskChange(ctx context.Context, change domain.TaskChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}
	if err := f.client.Publish(ctx, taskChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

// ChangeSubscription is a live pub/sub handle on the task change feed.
// Close releases the underlying channel; it must be called on every exit
// path of the owner's lifetime.
type ChangeSubscription struct {
	pubsub  *redis.PubSub
	changes chan domain.TaskChange
	quit    chan struct{}
	once    sync.Once
	log     zerolog.Logger
}

// Subscribe opens a subscription on the task change channel and starts
// decoding messages into TaskChange values.
func (f *ChangeFeed) Subscribe(ctx context.Context, log zerolog.Logger) *ChangeSubscription {
	pubsub := f.client.Subscribe(ctx, taskChannel)

	sub := &ChangeSubscription{
		pubsub:  pubsub,
		changes: make(chan domain.TaskChange),
		quit:    make(chan struct{}),
		log:     log,
	}
	go sub.decode()
	return sub
}

func (s *ChangeSubscription) decode() {
	defer close(s.changes)

	for msg := range s.pubsub.Channel() {
		var change domain.TaskChange
		if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
			s.log.Warn().Err(err).Str("payload", msg.Payload).Msg("malformed change notification dropped")
			continue
		}
		// The consumer may have stopped receiving before Close is called.
		// Never block a shutdown on an unread change.
		select {
		case s.changes <- change:
		case <-s.quit:
			return
		}
	}
}

func (s *ChangeSubscription) Changes() <-chan domain.TaskChange {
	return s.changes
}

// Close unsubscribes and releases the pub/sub connection. The Changes
// channel closes shortly after, even if a decoded change was never read.
func (s *ChangeSubscription) Close() error {
	s.once.Do(func() { close(s.quit) })
	return s.pubsub.Close()
}
