// Package observability exposes the engine's Prometheus metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	syncCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitsync",
		Subsystem: "sync",
		Name:      "calls_total",
		Help:      "Provider sync calls by provider, call type and outcome kind.",
	}, []string{"provider", "call_type", "outcome"})

	recordsPersistedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitsync",
		Subsystem: "sync",
		Name:      "records_persisted_total",
		Help:      "Canonical records written, by provider.",
	}, []string{"provider"})

	rateLimitDeniedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitsync",
		Subsystem: "ratelimit",
		Name:      "denied_total",
		Help:      "Sync calls denied by the daily budget, by provider and call type.",
	}, []string{"provider", "call_type"})

	tokenRefreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitsync",
		Subsystem: "oauth",
		Name:      "token_refresh_total",
		Help:      "Provider token refreshes by provider and outcome.",
	}, []string{"provider", "outcome"})

	lastSyncGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitsync",
		Subsystem: "sync",
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix timestamp of the most recent completed sync run.",
	})
)

func init() {
	prometheus.MustRegister(
		syncCallsTotal,
		recordsPersistedTotal,
		rateLimitDeniedTotal,
		tokenRefreshTotal,
		lastSyncGauge,
	)
}

// RecordSyncCall counts one provider call outcome. An empty outcome means
// success.
func RecordSyncCall(provider, callType, outcome string) {
	if outcome == "" {
		outcome = "success"
	}
	syncCallsTotal.WithLabelValues(provider, callType, outcome).Inc()
}

// RecordPersisted counts canonical records written for a provider.
func RecordPersisted(provider string, n int) {
	if n <= 0 {
		return
	}
	recordsPersistedTotal.WithLabelValues(provider).Add(float64(n))
}

// RecordRateLimitDenied counts one budget denial.
func RecordRateLimitDenied(provider, callType string) {
	rateLimitDeniedTotal.WithLabelValues(provider, callType).Inc()
}

// RecordTokenRefresh counts one refresh attempt outcome ("success",
// "failed" or "reauth_required").
func RecordTokenRefresh(provider, outcome string) {
	tokenRefreshTotal.WithLabelValues(provider, outcome).Inc()
}

// RecordSyncRunFinished updates the last-run watermark gauge.
func RecordSyncRunFinished(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastSyncGauge.Set(float64(ts.Unix()))
}
