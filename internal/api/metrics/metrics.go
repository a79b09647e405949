// Package metrics defines and registers all custom Prometheus metrics for the
// to-do API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at init time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todo"

// ── Auth / session metrics ────────────────────────────────────────────────────

// SessionsCreatedTotal counts established sessions.
// Label:
//   - method: "login" or "register" (registration implies login)
var SessionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions established, by method.",
	},
	[]string{"method"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "bad_credentials", "missing_cookie", or "invalid_session"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// ── List / item metrics ───────────────────────────────────────────────────────

// ListsCreatedTotal counts newly created lists.
var ListsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lists_created_total",
		Help:      "Total number of lists created.",
	},
)

// ItemsCreatedTotal counts newly created checklist items.
var ItemsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of checklist items created.",
	},
)

// ItemStatusTotal counts item updates by resulting status.
// Label:
//   - status: "pending" or "completed"
var ItemStatusTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "item_status_total",
		Help:      "Total number of item updates, by resulting status.",
	},
	[]string{"status"},
)

// ── Activity log metrics ──────────────────────────────────────────────────────

// ActivityProcessedTotal counts activity entries persisted successfully.
// Label:
//   - action: the recorded action (e.g. "list_created")
var ActivityProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_processed_total",
		Help:      "Total number of activity entries successfully persisted.",
	},
	[]string{"action"},
)

// ActivityErrorsTotal counts activity entries that failed to persist or were
// dropped before reaching a worker.
// Label:
//   - reason: "insert_failed" or "queue_full"
var ActivityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity entries lost, by reason.",
	},
	[]string{"reason"},
)

// ActivityQueueDepth tracks the number of entries waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityProcessingDuration measures how long persisting one entry takes.
// Label:
//   - action: the recorded action
var ActivityProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_processing_duration_seconds",
		Help:      "Duration of activity entry persistence from dequeue to commit.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"action"},
)
