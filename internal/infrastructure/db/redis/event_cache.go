package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/foodbridge/coordination-api/internal/api/metrics"
	"github.com/foodbridge/coordination-api/internal/core/domain"
)

const eventCacheTTL = 5 * time.Minute

// EventCache caches calendar range queries.
// Key format: calendar:<start_unix>:<end_unix>
type EventCache struct {
	client *redis.Client
}

func NewEventCache(client *redis.Client) *EventCache {
	return &EventCache{client: client}
}

// Get returns the cached events for the range and whether the key was present.
func (c *EventCache) Get(ctx context.Context, r domain.DateRange) ([]domain.CalendarEvent, bool, error) {
	raw, err := c.client.Get(ctx, c.key(r)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CalendarCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("event cache get: %w", err)
	}

	var events []domain.CalendarEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, false, fmt.Errorf("event cache decode: %w", err)
	}
	metrics.CalendarCacheTotal.WithLabelValues("hit").Inc()
	return events, true, nil
}

func (c *EventCache) Set(ctx context.Context, r domain.DateRange, events []domain.CalendarEvent) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("event cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(r), raw, eventCacheTTL).Err(); err != nil {
		return fmt.Errorf("event cache set: %w", err)
	}
	return nil
}

func (c *EventCache) key(r domain.DateRange) string {
	return fmt.Sprintf("calendar:%d:%d", r.Start.Unix(), r.End.Unix())
}
