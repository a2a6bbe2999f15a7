// Package metrics defines and registers the custom Prometheus metrics for
// the casting marketplace API. It is the single source of truth for metric
// names, labels, and help strings; registration happens at import time via
// promauto and the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "starcast"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ProfileUpdatesTotal counts profile update requests that persisted.
var ProfileUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_updates_total",
		Help:      "Total number of successfully persisted profile updates.",
	},
)

// RoleChangesTotal counts admin role changes by the role granted.
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of role changes applied, by granted role.",
	},
	[]string{"role"},
)

// RegistrationsTotal counts casting registration attempts.
// Label:
//   - result: "success", "duplicate", or "rejected"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of casting registration attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationMediaBytes measures the decoded size of inline media accepted
// per registration.
var RegistrationMediaBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "registration_media_bytes",
		Help:      "Decoded bytes of inline media accepted per registration.",
		Buckets:   prometheus.ExponentialBuckets(64<<10, 4, 8), // 64KB .. 1GB
	},
)

// AuditQueueDepth tracks the events waiting in each audit worker channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", ...)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each worker channel.",
	},
	[]string{"worker_id"},
)
