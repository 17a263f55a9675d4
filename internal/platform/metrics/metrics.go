// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

// Package metrics defines and registers all custom Prometheus metrics for
// the RSF API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics use promauto and register with the default registry at package
// init; the /metrics endpoint is mounted by the server composition root.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rsf"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// RequestsTotal counts finished HTTP requests.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (not the raw path, to bound cardinality)
//   - status: numeric response status class (e.g. "200", "403")
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served.",
	},
	[]string{"method", "route", "status"},
)

// RequestDuration measures end-to-end request latency.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Moderation metrics ────────────────────────────────────────────────────────

// ModerationActionsTotal counts privileged moderation operations.
// Labels:
//   - action: "ban", "unban", or "detail_lookup"
//   - result: "allowed", "forbidden", or "error"
var ModerationActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_actions_total",
		Help:      "Total number of moderation operations, by action and outcome.",
	},
	[]string{"action", "result"},
)

// ModerationPartialWrites counts ban/unban calls where one of the two store
// writes succeeded and the other failed, leaving the account and profile
// stores temporarily out of sync until a retry.
var ModerationPartialWrites = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_partial_writes_total",
		Help:      "Total number of moderation operations that left the dual stores inconsistent.",
	},
	[]string{"action", "failed_step"},
)
