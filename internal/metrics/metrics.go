// Package metrics defines and registers all custom Prometheus metrics for the
// KPI dashboard API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kpi_dashboard"

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordsMutatedTotal counts successful writes through the API.
// Labels:
//   - entity: e.g. "client", "team_member", "ads_kpi"
//   - action: "create", "update" or "delete"
var RecordsMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_mutated_total",
		Help:      "Total number of records created, updated or deleted, by entity.",
	},
	[]string{"entity", "action"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "bad_password" or "unknown_user"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Activity log metrics ──────────────────────────────────────────────────────

// ActivityQueueDepth tracks entries waiting in each recorder worker channel.
// Label:
//   - worker_id: numeric worker index
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity entries pending in each recorder worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityWritesTotal counts activity persistence outcomes.
// Label:
//   - result: "ok", "error" or "dropped"
var ActivityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_writes_total",
		Help:      "Total number of activity entries persisted, failed or dropped.",
	},
	[]string{"result"},
)

// ActivityWriteDuration measures a single activity insert.
var ActivityWriteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_write_duration_seconds",
		Help:      "Duration of activity log inserts.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ActivityPrunedTotal counts entries removed by the retention job.
var ActivityPrunedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_pruned_total",
		Help:      "Total number of activity entries deleted by retention.",
	},
)
