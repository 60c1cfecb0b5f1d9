package domain

import "time"

// CalendarEvent is a mirrored entry from the team's shared Google calendar.
type CalendarEvent struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	StartsAt    time.Time `json:"starts_at" bson:"starts_at"`
	EndsAt      time.Time `json:"ends_at" bson:"ends_at"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	AllDay      bool      `json:"all_day" bson:"all_day"`
}
