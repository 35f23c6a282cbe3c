// Package metrics defines and registers all custom Prometheus metrics for the
// Pegasus admin API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pegasus"

// ── Billing metrics ───────────────────────────────────────────────────────────

// RefundsTotal counts refunds that completed both writes.
var RefundsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refunds_total",
		Help:      "Total number of operation refunds completed successfully.",
	},
)

// RefundErrorsTotal counts refund failures.
// Label:
//   - reason: the failing step ("credit lookup", "balance update", "operation update")
var RefundErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refund_errors_total",
		Help:      "Total number of failed refunds, labelled by failing step.",
	},
	[]string{"reason"},
)

// RefundDuration measures a single refund end-to-end, lookups included.
var RefundDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "refund_duration_seconds",
		Help:      "Duration of the refund workflow from lookup to final write.",
		Buckets:   prometheus.DefBuckets,
	},
)

// CreditAdjustmentsTotal counts account mutations outside the refund path.
// Label:
//   - action: "add", "renew", or "block"
var CreditAdjustmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credit_adjustments_total",
		Help:      "Total number of account adjustments, by action.",
	},
	[]string{"action"},
)

// ── Fetch metrics ─────────────────────────────────────────────────────────────

// FetchErrorsTotal counts backend read failures.
// Label:
//   - entity: "users" or "operations"
var FetchErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_errors_total",
		Help:      "Total number of failed backend reads, by entity.",
	},
	[]string{"entity"},
)

// ── Ingest metrics ────────────────────────────────────────────────────────────

// OperationsIngestedTotal counts operation records accepted from devices.
// Label:
//   - operation_type: the reported type tag, or "unknown"
var OperationsIngestedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_ingested_total",
		Help:      "Total number of operation records ingested, by type.",
	},
	[]string{"operation_type"},
)

// IngestErrorsTotal counts operation records that failed to persist.
var IngestErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingest_errors_total",
		Help:      "Total number of operation records that failed to persist.",
	},
)

// IngestQueueDepth tracks pending records in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var IngestQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ingest_queue_depth",
		Help:      "Current number of records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
