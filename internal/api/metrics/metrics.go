// Package metrics defines all custom Prometheus metrics for the coordination
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coordination"

// ── Availability metrics ──────────────────────────────────────────────────────

// SummaryRequestsTotal counts availability summary requests.
// Label:
//   - preset: the quick-filter used ("today", "this-week", …) or "custom"
var SummaryRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_requests_total",
		Help:      "Total number of availability summary requests, by range preset.",
	},
	[]string{"preset"},
)

// OrphanSlotsTotal counts slots dropped from summaries because their user_id
// matched no known user.
var OrphanSlotsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orphan_slots_total",
		Help:      "Total number of availability slots dropped for referencing unknown users.",
	},
)

// SlotsCreatedTotal counts newly recorded availability slots.
// Label:
//   - status: "available" or "unavailable"
var SlotsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slots_created_total",
		Help:      "Total number of availability slots created, by status.",
	},
	[]string{"status"},
)

// ── Smart-search metrics ──────────────────────────────────────────────────────

// EmbeddingJobsTotal counts finished regeneration runs.
// Label:
//   - result: "completed" or "failed"
var EmbeddingJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "embedding_jobs_total",
		Help:      "Total number of embedding regeneration runs, by result.",
	},
	[]string{"result"},
)

// FeaturesEmbeddedTotal counts individual features embedded successfully.
var FeaturesEmbeddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "features_embedded_total",
		Help:      "Total number of searchable features that received a fresh embedding.",
	},
)

// EmbeddingJobDuration measures how long a full regeneration run takes.
var EmbeddingJobDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "embedding_job_duration_seconds",
		Help:      "Duration of embedding regeneration runs end-to-end.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
	},
)

// ── Calendar metrics ──────────────────────────────────────────────────────────

// CalendarCacheTotal counts calendar range cache lookups.
// Label:
//   - result: "hit" or "miss"
var CalendarCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calendar_cache_total",
		Help:      "Total number of calendar range cache lookups, by result.",
	},
	[]string{"result"},
)
