package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

const jobKey = "jobs:regenerate_embeddings"

// JobStore persists the regeneration job snapshot in Redis so every API
// instance reports the same progress.
type JobStore struct {
	client *redis.Client
}

func NewJobStore(client *redis.Client) *JobStore {
	return &JobStore{client: client}
}

// Get returns the stored job snapshot; a missing key reads as an idle job.
func (s *JobStore) Get(ctx context.Context) (domain.RegenerationJob, error) {
	raw, err := s.client.Get(ctx, jobKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.RegenerationJob{State: domain.JobIdle}, nil
		}
		return domain.RegenerationJob{}, fmt.Errorf("job store get: %w", err)
	}

	var job domain.RegenerationJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return domain.RegenerationJob{}, fmt.Errorf("job store decode: %w", err)
	}
	return job, nil
}

func (s *JobStore) Set(ctx context.Context, job domain.RegenerationJob) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("job store encode: %w", err)
	}
	// No TTL: the last completed/failed snapshot stays visible until the next run.
	if err := s.client.Set(ctx, jobKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("job store set: %w", err)
	}
	return nil
}
