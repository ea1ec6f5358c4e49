// Package metrics defines all custom Prometheus metrics for the crewdesk
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crewdesk"

// ── Realtime metrics ─────────────────────────────────────────────────────────

// TaskChangesReceivedTotal counts change-feed notifications consumed by the
// realtime bridge.
// Label:
//   - op: "insert", "update" or "delete"
var TaskChangesReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_changes_received_total",
		Help:      "Total number of task change notifications received from the change feed.",
	},
	[]string{"op"},
)

// CacheInvalidationsTotal counts successful whole-cache invalidations
// triggered by change notifications.
var CacheInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_invalidations_total",
		Help:      "Total number of task cache invalidations performed by the realtime bridge.",
	},
)

// TaskCacheLookupsTotal counts task-list cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (fell through to storage)
var TaskCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_cache_lookups_total",
		Help:      "Total number of task cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Authorization metrics ────────────────────────────────────────────────────

// RoleResolutionFailuresTotal counts requests whose role could not be
// derived from the caller's profile. These requests are denied.
var RoleResolutionFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_resolution_failures_total",
		Help:      "Total number of authenticated requests with no resolvable role.",
	},
)

// AccessDeniedTotal counts requests rejected by the role guard.
// Label:
//   - role: the caller's resolved role, or "unknown"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by role-based access control.",
	},
	[]string{"role"},
)

// ── Entity metrics ───────────────────────────────────────────────────────────

// TasksCreatedTotal counts created tasks.
// Label:
//   - priority: "low" or "high"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)

// ProjectsCreatedTotal counts created projects.
// Label:
//   - role: the role of the creating caller
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by caller role.",
	},
	[]string{"role"},
)
