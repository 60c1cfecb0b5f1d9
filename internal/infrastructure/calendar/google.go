// Package calendar implements the upstream Google-calendar client that feeds
// the mirrored events collection.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

// Config captures the settings for the calendar API access.
type Config struct {
	BaseURL      string // e.g. https://www.googleapis.com/calendar/v3
	CalendarID   string
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// Client fetches events from the shared Google calendar using an OAuth2
// client-credentials token source.
type Client struct {
	cfg Config
	hc  *http.Client
}

func NewClient(ctx context.Context, cfg Config) *Client {
	creds := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       []string{"https://www.googleapis.com/auth/calendar.readonly"},
	}
	return &Client{cfg: cfg, hc: creds.Client(ctx)}
}

type eventItem struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Start       struct {
		DateTime time.Time `json:"dateTime"`
		Date     string    `json:"date"`
	} `json:"start"`
	End struct {
		DateTime time.Time `json:"dateTime"`
		Date     string    `json:"date"`
	} `json:"end"`
}

type eventList struct {
	Items []eventItem `json:"items"`
}

// Fetch lists the calendar's events inside [r.Start, r.End).
func (c *Client) Fetch(ctx context.Context, r domain.DateRange) ([]domain.CalendarEvent, error) {
	q := url.Values{}
	q.Set("timeMin", r.Start.UTC().Format(time.RFC3339))
	q.Set("timeMax", r.End.UTC().Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")

	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", c.cfg.BaseURL, url.PathEscape(c.cfg.CalendarID), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("calendar fetch: build request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("calendar fetch: upstream returned %d: %s", resp.StatusCode, snippet)
	}

	var list eventList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("calendar fetch: decode response: %w", err)
	}

	events := make([]domain.CalendarEvent, 0, len(list.Items))
	for _, item := range list.Items {
		events = append(events, toDomainEvent(item))
	}
	return events, nil
}

// toDomainEvent maps an upstream item to a mirrored event. All-day events
// carry date-only bounds; those expand to UTC midnights.
func toDomainEvent(item eventItem) domain.CalendarEvent {
	e := domain.CalendarEvent{
		ID:          item.ID,
		Title:       item.Summary,
		Location:    item.Location,
		Description: item.Description,
		StartsAt:    item.Start.DateTime,
		EndsAt:      item.End.DateTime,
	}
	if item.Start.Date != "" {
		e.AllDay = true
		if day, err := time.Parse("2006-01-02", item.Start.Date); err == nil {
			e.StartsAt = day
		}
		if day, err := time.Parse("2006-01-02", item.End.Date); err == nil {
			e.EndsAt = day
		}
	}
	return e
}
