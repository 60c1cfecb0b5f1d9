package domain

import (
	"errors"
	"testing"
	"time"
)

func TestDisplayLabel_Fallbacks(t *testing.T) {
	cases := []struct {
		name string
		user User
		want string
	}{
		{"display name wins", User{DisplayName: "Cap", FirstName: "Carol", LastName: "Price", Email: "c@x.org"}, "Cap"},
		{"first last", User{FirstName: "Carol", LastName: "Price", Email: "c@x.org"}, "Carol Price"},
		{"first only", User{FirstName: "Carol", Email: "c@x.org"}, "Carol"},
		{"email last resort", User{Email: "c@x.org"}, "c@x.org"},
	}
	for _, tc := range cases {
		if got := tc.user.DisplayLabel(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSlotValidate(t *testing.T) {
	start := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)
	ok := AvailabilitySlot{UserID: "u1", StartsAt: start, EndsAt: start.Add(time.Hour), Status: SlotAvailable}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid slot rejected: %v", err)
	}

	inverted := ok
	inverted.EndsAt = start.Add(-time.Hour)
	if !errors.Is(inverted.Validate(), ErrInvalidSlotRange) {
		t.Error("inverted slot must be rejected")
	}

	empty := ok
	empty.EndsAt = start
	if !errors.Is(empty.Validate(), ErrInvalidSlotRange) {
		t.Error("zero-length slot must be rejected")
	}

	badStatus := ok
	badStatus.Status = "busy"
	if !errors.Is(badStatus.Validate(), ErrInvalidSlotStatus) {
		t.Error("unknown status must be rejected")
	}
}
