// Package metrics defines and registers the custom Prometheus metrics for
// the medilog API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "medilog"

// SignupsTotal counts successful account registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful account registrations.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts by result.",
	},
	[]string{"result"},
)

// HealthMetricsSavedTotal counts daily health metric upserts.
var HealthMetricsSavedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "health_metrics_saved_total",
		Help:      "Total number of health metric records saved or updated.",
	},
)

// FlagChecksTotal counts feature-flag membership checks by outcome.
// Label:
//   - result: "enabled" or "disabled"
var FlagChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feature_flag_checks_total",
		Help:      "Total number of feature flag membership checks by result.",
	},
	[]string{"result"},
)
