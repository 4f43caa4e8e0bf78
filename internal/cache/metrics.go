package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Cache-level Prometheus metrics. All metrics carry an "operation" label
// holding the operation identity (OpStore, OpGet), mirroring the namespace
// used for the store-backed counters so dashboards and recorded history
// line up.
var (
	// CallsTotal counts write-path invocations per operation.
	CallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_store_calls_total",
			Help: "Total number of instrumented cache write calls.",
		},
		[]string{"operation"},
	)

	// HitsTotal counts reads that found a key per operation.
	HitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache reads that found the key.",
		},
		[]string{"operation"},
	)

	// MissesTotal counts reads of absent keys per operation.
	MissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache reads of absent keys.",
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(
		CallsTotal,
		HitsTotal,
		MissesTotal,
	)
}
