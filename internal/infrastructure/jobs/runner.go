// Package jobs hosts the background workers: the embedding regeneration
// runner and the calendar mirror syncer.
package jobs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/foodbridge/coordination-api/internal/api/metrics"
	"github.com/foodbridge/coordination-api/internal/core/domain"
	"github.com/foodbridge/coordination-api/internal/core/ports"
)

const (
	defaultWorkers    = 4
	defaultFlushEvery = 2 * time.Second
)

// Runner executes the embedding regeneration job: it loads every searchable
// feature, fans them out to a fixed worker pool, and periodically flushes
// progress to the shared job store. One job runs at a time.
type Runner struct {
	features   ports.FeatureRepository
	embedder   ports.Embedder
	store      ports.JobStore
	workers    int
	flushEvery time.Duration
	log        zerolog.Logger

	mu      sync.Mutex
	running bool
}

// NewRunner creates a Runner. workers <= 0 and flushEvery <= 0 fall back to
// the defaults.
func NewRunner(features ports.FeatureRepository, embedder ports.Embedder, store ports.JobStore, workers int, flushEvery time.Duration, log zerolog.Logger) *Runner {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if flushEvery <= 0 {
		flushEvery = defaultFlushEvery
	}
	return &Runner{
		features:   features,
		embedder:   embedder,
		store:      store,
		workers:    workers,
		flushEvery: flushEvery,
		log:        log,
	}
}

// Start begins a regeneration run in the background. It returns
// domain.ErrJobAlreadyRunning when a run is in flight, either in this process
// or (via the shared store) in another instance. The run outlives the calling
// request's context.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return domain.ErrJobAlreadyRunning
	}

	// A store error blocks the start: without the shared snapshot there is no
	// way to know whether another instance already holds the job.
	stored, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	if stored.State == domain.JobRunning {
		return domain.ErrJobAlreadyRunning
	}

	features, err := r.features.ListAll(ctx)
	if err != nil {
		return err
	}

	job := domain.RegenerationJob{
		State:     domain.JobRunning,
		Total:     len(features),
		StartedAt: time.Now().UTC(),
	}
	if err := r.store.Set(ctx, job); err != nil {
		return err
	}

	r.running = true
	go r.run(context.WithoutCancel(ctx), job, features)
	return nil
}

func (r *Runner) run(ctx context.Context, job domain.RegenerationJob, features []domain.SearchableFeature) {
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	started := time.Now()
	var processed atomic.Int64
	var failMu sync.Mutex
	var firstErr error

	// Progress ticker: flushes the shared snapshot every flushEvery and is
	// stopped on completion, on failure, and on shutdown. The final snapshot
	// below is written only after the ticker goroutine exits, so a tick in
	// flight can never overwrite the terminal state.
	done := make(chan struct{})
	var flushWG sync.WaitGroup
	flushWG.Add(1)
	go func() {
		defer flushWG.Done()
		ticker := time.NewTicker(r.flushEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				snapshot := job
				snapshot.Processed = int(processed.Load())
				if err := r.store.Set(ctx, snapshot); err != nil {
					r.log.Warn().Err(err).Msg("regeneration progress flush failed")
				}
			}
		}
	}()

	work := make(chan domain.SearchableFeature)
	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range work {
				if err := r.embedOne(ctx, f); err != nil {
					failMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					failMu.Unlock()
					r.log.Error().Err(err).Str("feature_id", f.ID).Msg("feature embedding failed")
					continue
				}
				processed.Add(1)
				metrics.FeaturesEmbeddedTotal.Inc()
			}
		}()
	}

	for _, f := range features {
		select {
		case <-ctx.Done():
			failMu.Lock()
			if firstErr == nil {
				firstErr = ctx.Err()
			}
			failMu.Unlock()
		case work <- f:
			continue
		}
		break
	}
	close(work)
	wg.Wait()
	close(done)
	flushWG.Wait()

	job.Processed = int(processed.Load())
	job.FinishedAt = time.Now().UTC()
	if firstErr != nil {
		job.State = domain.JobFailed
		job.Error = firstErr.Error()
	} else {
		job.State = domain.JobCompleted
	}

	if err := r.store.Set(ctx, job); err != nil {
		r.log.Error().Err(err).Msg("failed to store final regeneration state")
	}

	metrics.EmbeddingJobsTotal.WithLabelValues(string(job.State)).Inc()
	metrics.EmbeddingJobDuration.Observe(time.Since(started).Seconds())

	r.log.Info().
		Str("state", string(job.State)).
		Int("processed", job.Processed).
		Int("total", job.Total).
		Dur("took", time.Since(started)).
		Msg("embedding regeneration finished")
}

// embedOne computes the vector from the feature's name and description and
// persists it.
func (r *Runner) embedOne(ctx context.Context, f domain.SearchableFeature) error {
	text := f.Name
	if f.Description != "" {
		text += "\n" + f.Description
	}
	vector, err := r.embedder.Embed(ctx, text)
	if err != nil {
		return err
	}
	return r.features.UpdateEmbedding(ctx, f.ID, vector, time.Now().UTC())
}
