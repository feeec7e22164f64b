// Package metrics defines and registers all custom Prometheus metrics for the
// client portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto; importing this package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// SignupsTotal counts successful account registrations.
// Label:
//   - role: "admin" or "client"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts that reached a terminal outcome.
// Labels:
//   - role: "admin" or "client"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// MessagesCreatedTotal counts messages accepted from clients.
var MessagesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_created_total",
		Help:      "Total number of messages stored.",
	},
)

// StatsCacheLookupsTotal counts dashboard counter cache lookups.
// Label:
//   - result: "hit" or "miss"
var StatsCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_lookups_total",
		Help:      "Total number of stats cache lookups, by result.",
	},
	[]string{"result"},
)

// ActivitiesRecordedTotal counts activity log entries written by the async
// recorder.
// Label:
//   - action: the recorded action (e.g. "signed up", "logged in")
var ActivitiesRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_recorded_total",
		Help:      "Total number of activity log entries persisted, by action.",
	},
	[]string{"action"},
)
