package domain

import (
	"errors"
	"time"
)

// JobState is the lifecycle state of the embedding regeneration job.
type JobState string

const (
	JobIdle      JobState = "idle"
	JobRunning   JobState = "running"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
)

var ErrJobAlreadyRunning = errors.New("regeneration job already running")

// maxRunningProgress is the ceiling reported while the job is still running,
// so the dashboard never shows 100% before the backend confirms completion.
const maxRunningProgress = 95

// RegenerationJob is a snapshot of the embedding regeneration job.
type RegenerationJob struct {
	State      JobState  `json:"state"`
	Processed  int       `json:"processed"`
	Total      int       `json:"total"`
	StartedAt  time.Time `json:"started_at,omitempty"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// DisplayProgress returns the percentage shown to clients: capped at 95 while
// running, snapped to 100 on completion, reset to 0 when idle or failed.
func (j RegenerationJob) DisplayProgress() int {
	switch j.State {
	case JobCompleted:
		return 100
	case JobRunning:
		if j.Total <= 0 {
			return 0
		}
		pct := j.Processed * 100 / j.Total
		if pct > maxRunningProgress {
			return maxRunningProgress
		}
		return pct
	default:
		return 0
	}
}
