package domain

import (
	"errors"
	"time"
)

// SlotStatus is the declared state of a single availability window.
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotUnavailable SlotStatus = "unavailable"
)

var ErrSlotNotFound = errors.New("availability slot not found")
var ErrInvalidSlotRange = errors.New("slot start must be before end")
var ErrInvalidSlotStatus = errors.New("invalid slot status")

// Valid reports whether s is a known slot status.
func (s SlotStatus) Valid() bool {
	return s == SlotAvailable || s == SlotUnavailable
}

// AvailabilitySlot is a time-bounded availability record for one user.
type AvailabilitySlot struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	UserID    string     `json:"user_id" bson:"user_id"`
	StartsAt  time.Time  `json:"starts_at" bson:"starts_at"`
	EndsAt    time.Time  `json:"ends_at" bson:"ends_at"`
	Status    SlotStatus `json:"status" bson:"status"`
	Note      string     `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// Validate checks the slot invariants before persistence.
func (s AvailabilitySlot) Validate() error {
	if !s.Status.Valid() {
		return ErrInvalidSlotStatus
	}
	if !s.StartsAt.Before(s.EndsAt) {
		return ErrInvalidSlotRange
	}
	return nil
}

// UserAvailability pairs a user with their slots for a range, partitioned by
// status. Derived in memory on every request; never persisted.
type UserAvailability struct {
	User            User               `json:"user"`
	Available       []AvailabilitySlot `json:"available"`
	Unavailable     []AvailabilitySlot `json:"unavailable"`
	HasAvailability bool               `json:"has_availability"`
}
