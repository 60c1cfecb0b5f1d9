package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/foodbridge/coordination-api/internal/core/domain"
	"github.com/foodbridge/coordination-api/internal/core/ports"
)

const (
	defaultSyncInterval = 15 * time.Minute
	syncPastWindow      = 7 * 24 * time.Hour
	syncFutureWindow    = 60 * 24 * time.Hour
)

// CalendarSyncer mirrors the upstream calendar into the local store on a
// fixed interval.
type CalendarSyncer struct {
	source   ports.CalendarSource
	repo     ports.CalendarEventRepository
	interval time.Duration
	log      zerolog.Logger
}

func NewCalendarSyncer(source ports.CalendarSource, repo ports.CalendarEventRepository, interval time.Duration, log zerolog.Logger) *CalendarSyncer {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &CalendarSyncer{source: source, repo: repo, interval: interval, log: log}
}

// Run syncs once immediately, then on every interval tick until ctx is
// cancelled. Intended to be launched as a goroutine from main.
func (s *CalendarSyncer) Run(ctx context.Context) {
	if err := s.SyncOnce(ctx); err != nil {
		s.log.Error().Err(err).Msg("initial calendar sync failed")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.SyncOnce(ctx); err != nil {
				s.log.Error().Err(err).Msg("calendar sync failed")
			}
		}
	}
}

// SyncOnce fetches the sync window from upstream and replaces the mirrored
// copy.
func (s *CalendarSyncer) SyncOnce(ctx context.Context) error {
	now := time.Now().UTC()
	r := domain.DateRange{Start: now.Add(-syncPastWindow), End: now.Add(syncFutureWindow)}

	events, err := s.source.Fetch(ctx, r)
	if err != nil {
		return err
	}
	if err := s.repo.ReplaceRange(ctx, r, events); err != nil {
		return err
	}

	s.log.Info().Int("events", len(events)).Msg("calendar mirror synced")
	return nil
}
