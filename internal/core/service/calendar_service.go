package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/foodbridge/coordination-api/internal/core/domain"
	"github.com/foodbridge/coordination-api/internal/core/ports"
)

// EventCache abstracts the range cache (Redis) in front of the mirror store.
type EventCache interface {
	Get(ctx context.Context, r domain.DateRange) ([]domain.CalendarEvent, bool, error)
	Set(ctx context.Context, r domain.DateRange, events []domain.CalendarEvent) error
}

type CalendarService struct {
	repo   ports.CalendarEventRepository
	cache  EventCache
	logger zerolog.Logger
}

func NewCalendarService(repo ports.CalendarEventRepository, cache EventCache, logger zerolog.Logger) *CalendarService {
	return &CalendarService{repo: repo, cache: cache, logger: logger}
}

// Events returns the mirrored calendar events for the range, serving from the
// cache when possible. Cache failures degrade to a direct store read.
func (s *CalendarService) Events(ctx context.Context, r domain.DateRange) ([]domain.CalendarEvent, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		events, hit, err := s.cache.Get(ctx, r)
		if err != nil {
			s.logger.Warn().Err(err).Msg("calendar cache read failed, falling back to store")
		} else if hit {
			return events, nil
		}
	}

	events, err := s.repo.ListRange(ctx, r)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, r, events); err != nil {
			s.logger.Warn().Err(err).Msg("calendar cache write failed")
		}
	}
	return events, nil
}
