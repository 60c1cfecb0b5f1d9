package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/foodbridge/coordination-api/internal/core/domain"
	"github.com/foodbridge/coordination-api/internal/core/ports"
)

type AvailabilityService struct {
	users  ports.UserRepository
	slots  ports.AvailabilityRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewAvailabilityService(users ports.UserRepository, slots ports.AvailabilityRepository, logger zerolog.Logger) *AvailabilityService {
	return &AvailabilityService{users: users, slots: slots, logger: logger, now: time.Now}
}

// Summary joins users with their slots for the requested range and partitions
// each user's slots by status. Empty inputs yield an empty result, not an error.
func (s *AvailabilityService) Summary(ctx context.Context, input ports.SummaryInput) (*ports.SummaryResult, error) {
	r := input.Range
	if input.Preset != "" {
		resolved, err := domain.ResolvePreset(input.Preset, s.now().UTC())
		if err != nil {
			return nil, err
		}
		r = resolved
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	users, err := s.users.ListBasic(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("summary: list users failed")
		return nil, err
	}

	slots, err := s.slots.ListRange(ctx, r)
	if err != nil {
		s.logger.Error().Err(err).Msg("summary: list slots failed")
		return nil, err
	}

	// Orphans are counted against the full user set so a search filter does
	// not masquerade as a data-integrity problem.
	orphans := countOrphans(users, slots)
	if orphans > 0 {
		s.logger.Warn().Int("orphans", orphans).Msg("slots referencing unknown users dropped from summary")
	}

	aggregated, _ := AggregateAvailability(FilterUsers(users, input.Search), slots)

	result := &ports.SummaryResult{
		Range:       r,
		Users:       aggregated,
		OrphanCount: orphans,
		Counts:      countBuckets(aggregated),
	}
	return result, nil
}

// ListSlots returns the raw slots overlapping the range.
func (s *AvailabilityService) ListSlots(ctx context.Context, r domain.DateRange) ([]domain.AvailabilitySlot, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return s.slots.ListRange(ctx, r)
}

// CreateSlot records a new availability slot after validating its invariants.
func (s *AvailabilityService) CreateSlot(ctx context.Context, input ports.CreateSlotInput) (*domain.AvailabilitySlot, error) {
	now := s.now().UTC()
	slot := &domain.AvailabilitySlot{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		StartsAt:  input.StartsAt.UTC(),
		EndsAt:    input.EndsAt.UTC(),
		Status:    domain.SlotStatus(input.Status),
		Note:      input.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := slot.Validate(); err != nil {
		return nil, err
	}

	if err := s.slots.Insert(ctx, slot); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create slot")
		return nil, err
	}

	s.logger.Info().Str("slot_id", slot.ID).Str("user_id", slot.UserID).Str("status", string(slot.Status)).Msg("slot created")
	return slot, nil
}

func (s *AvailabilityService) DeleteSlot(ctx context.Context, id string) error {
	if err := s.slots.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("slot_id", id).Msg("slot deleted")
	return nil
}

// FilterUsers returns the users matching the free-text query. The match is a
// case-insensitive substring check against "first last", the display name, and
// the email. An empty query matches everything.
func FilterUsers(users []domain.User, query string) []domain.User {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return users
	}
	matched := make([]domain.User, 0, len(users))
	for _, u := range users {
		fullName := strings.ToLower(strings.TrimSpace(u.FirstName + " " + u.LastName))
		if strings.Contains(fullName, query) ||
			strings.Contains(strings.ToLower(u.DisplayName), query) ||
			strings.Contains(strings.ToLower(u.Email), query) {
			matched = append(matched, u)
		}
	}
	return matched
}

// AggregateAvailability groups slots per user and partitions them by status.
// Slots whose user is not in the given set are dropped; the second return
// value reports how many. Output order is case-insensitive lexicographic by
// display label.
func AggregateAvailability(users []domain.User, slots []domain.AvailabilitySlot) ([]domain.UserAvailability, int) {
	byUser := make(map[string][]domain.AvailabilitySlot, len(users))
	known := make(map[string]struct{}, len(users))
	for _, u := range users {
		known[u.ID] = struct{}{}
	}

	orphans := 0
	for _, slot := range slots {
		if _, ok := known[slot.UserID]; !ok {
			orphans++
			continue
		}
		byUser[slot.UserID] = append(byUser[slot.UserID], slot)
	}

	result := make([]domain.UserAvailability, 0, len(users))
	for _, u := range users {
		entry := domain.UserAvailability{User: u}
		for _, slot := range byUser[u.ID] {
			switch slot.Status {
			case domain.SlotAvailable:
				entry.Available = append(entry.Available, slot)
			case domain.SlotUnavailable:
				entry.Unavailable = append(entry.Unavailable, slot)
			}
		}
		entry.HasAvailability = len(entry.Available) > 0 || len(entry.Unavailable) > 0
		result = append(result, entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].User.DisplayLabel()) < strings.ToLower(result[j].User.DisplayLabel())
	})
	return result, orphans
}

func countOrphans(users []domain.User, slots []domain.AvailabilitySlot) int {
	known := make(map[string]struct{}, len(users))
	for _, u := range users {
		known[u.ID] = struct{}{}
	}
	orphans := 0
	for _, slot := range slots {
		if _, ok := known[slot.UserID]; !ok {
			orphans++
		}
	}
	return orphans
}

func countBuckets(entries []domain.UserAvailability) ports.SummaryCounts {
	counts := ports.SummaryCounts{TotalUsers: len(entries)}
	for _, e := range entries {
		switch {
		case len(e.Available) > 0:
			counts.Available++
		case len(e.Unavailable) > 0:
			counts.Unavailable++
		default:
			counts.NoData++
		}
	}
	return counts
}
