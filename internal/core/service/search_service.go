package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/foodbridge/coordination-api/internal/core/domain"
	"github.com/foodbridge/coordination-api/internal/core/ports"
)

// JobRunner starts the embedding regeneration in the background. Implemented
// by the jobs runner; abstracted here so the service stays testable.
type JobRunner interface {
	Start(ctx context.Context) error
}

type SearchService struct {
	features ports.FeatureRepository
	jobs     ports.JobStore
	runner   JobRunner
	logger   zerolog.Logger
}

func NewSearchService(features ports.FeatureRepository, jobs ports.JobStore, runner JobRunner, logger zerolog.Logger) *SearchService {
	return &SearchService{features: features, jobs: jobs, runner: runner, logger: logger}
}

func (s *SearchService) Features(ctx context.Context) ([]domain.SearchableFeature, error) {
	return s.features.ListAll(ctx)
}

// Coverage reports how much of the search index carries embeddings.
func (s *SearchService) Coverage(ctx context.Context) (domain.CoverageStatus, error) {
	features, err := s.features.ListAll(ctx)
	if err != nil {
		return domain.CoverageStatus{}, err
	}
	return domain.ComputeCoverage(features), nil
}

// Regenerate kicks off the background regeneration job. A job already in
// flight is rejected with domain.ErrJobAlreadyRunning.
func (s *SearchService) Regenerate(ctx context.Context) error {
	if err := s.runner.Start(ctx); err != nil {
		return err
	}
	s.logger.Info().Msg("embedding regeneration started")
	return nil
}

// Status combines index coverage with the current job snapshot.
func (s *SearchService) Status(ctx context.Context) (*ports.SearchStatusResult, error) {
	coverage, err := s.Coverage(ctx)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.SearchStatusResult{
		Coverage: coverage,
		Job:      job,
		Progress: job.DisplayProgress(),
	}, nil
}
