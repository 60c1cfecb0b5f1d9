package domain

import (
	"errors"
	"time"
)

// RangePreset names a shortcut that resolves to a well-known date range.
type RangePreset string

const (
	PresetToday     RangePreset = "today"
	PresetThisWeek  RangePreset = "this-week"
	PresetNextWeek  RangePreset = "next-week"
	PresetThisMonth RangePreset = "this-month"
)

var ErrUnknownPreset = errors.New("unknown range preset")
var ErrInvalidRange = errors.New("range start must be before end")

// DateRange is a half-open interval [Start, End).
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate checks the range invariant.
func (r DateRange) Validate() error {
	if !r.Start.Before(r.End) {
		return ErrInvalidRange
	}
	return nil
}

// ResolvePreset expands a named preset into a concrete range relative to now.
// Weeks start on Monday.
func ResolvePreset(preset RangePreset, now time.Time) (DateRange, error) {
	day := startOfDay(now)
	switch preset {
	case PresetToday:
		return DateRange{Start: day, End: day.AddDate(0, 0, 1)}, nil
	case PresetThisWeek:
		monday := startOfWeek(day)
		return DateRange{Start: monday, End: monday.AddDate(0, 0, 7)}, nil
	case PresetNextWeek:
		monday := startOfWeek(day).AddDate(0, 0, 7)
		return DateRange{Start: monday, End: monday.AddDate(0, 0, 7)}, nil
	case PresetThisMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return DateRange{Start: first, End: first.AddDate(0, 1, 0)}, nil
	default:
		return DateRange{}, ErrUnknownPreset
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -int((t.Weekday()+6)%7))
}
