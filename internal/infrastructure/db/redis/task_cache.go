package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/crewdesk/crewdesk-api/internal/api/metrics"
	"github.com/crewdesk/crewdesk-api/internal/core/ports"
)

// cacheTTL bounds staleness when an invalidation is lost; the bridge
// normally busts entries long before this.
const cacheTTL = 5 * time.Minute

const taskKeyPrefix = "tasks:"

// TaskCache stores rendered task lists in Redis, one key per visibility
// scope. Key format: tasks:<scope>.
type TaskCache struct {
	client *redis.Client
}

// NewTaskCache creates a TaskCache wrapping the given Redis client.
func NewTaskCache(client *redis.Client) *TaskCache {
	return &TaskCache{client: client}
}

func (c *TaskCache) Get(ctx context.Context, scope string) ([]ports.TaskView, error) {
	raw, err := c.client.Get(ctx, taskKeyPrefix+scope).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.TaskCacheLookupsTotal.WithLabelValues("miss").Inc()
			return nil, ports.ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var tasks []ports.TaskView
	if err := json.Unmarshal(raw, &tasks); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		metrics.TaskCacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, ports.ErrCacheMiss
	}

	metrics.TaskCacheLookupsTotal.WithLabelValues("hit").Inc()
	return tasks, nil
}

func (c *TaskCache) Set(ctx context.Context, scope string, tasks []ports.TaskView) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, taskKeyPrefix+scope, raw, cacheTTL).Err()
}

// InvalidateAll drops every cached scope. Coarse on purpose: any task
// change invalidates all lists, and the next read refetches from storage.
func (c *TaskCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, taskKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
