// Package metrics defines the Prometheus metrics for the earthquake
// dashboard service. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "teq"

// FetchesTotal counts upstream fetch attempts.
// Labels:
//   - source: "afad" or "usgs"
//   - result: "ok", "error" or "cache_hit"
var FetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetches_total",
		Help:      "Total number of upstream data fetches, by source and result.",
	},
	[]string{"source", "result"},
)

// FetchDuration measures upstream fetch latency.
var FetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "fetch_duration_seconds",
		Help:      "Duration of upstream data fetches.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"source"},
)

// EventsFetched tracks the event count of the most recent AFAD response.
var EventsFetched = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_fetched",
		Help:      "Number of event records in the most recent AFAD response.",
	},
)

// DashboardRenders counts dashboard page renders.
// Label:
//   - result: "ok" or "error"
var DashboardRenders = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_renders_total",
		Help:      "Total number of dashboard page renders.",
	},
	[]string{"result"},
)

// SnapshotsTotal counts snapshot bundle builds.
// Label:
//   - result: "ok" or "error"
var SnapshotsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_total",
		Help:      "Total number of snapshot bundles built.",
	},
	[]string{"result"},
)

// CSVExportsTotal counts CSV export downloads.
var CSVExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "csv_exports_total",
		Help:      "Total number of CSV exports served.",
	},
)
