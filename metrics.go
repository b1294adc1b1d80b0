package hashring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hashring"

var (
	hostsRegistered = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hosts",
			Help:      "The number of hosts currently registered, by ring name.",
		},
		[]string{"ring"},
	)
	ringPositions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "positions",
			Help:      "The number of distinct positions on the ring. Normally hosts * replication factor, less any hash collisions.",
		},
		[]string{"ring"},
	)
	aggregateLoad = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "load",
			Help:      "The sum of all hosts' load counters, by ring name.",
		},
		[]string{"ring"},
	)
	lookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "The number of plain consistent-hash lookups, by ring name. Includes lookups against an empty ring.",
		},
		[]string{"ring"},
	)
	boundedLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bounded_lookups_total",
			Help:      "The number of bounded-load lookups, by ring name. Includes lookups against an empty ring.",
		},
		[]string{"ring"},
	)
	boundedOverflows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bounded_overflows_total",
			Help:      "The number of bounded-load lookups that passed over the successor host because it was at capacity, by ring name.",
		},
		[]string{"ring"},
	)
	boundedFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bounded_fallbacks_total",
			Help:      "The number of bounded-load lookups that found every host at capacity and fell back to the successor host. The cap formula should keep this at zero.",
		},
		[]string{"ring"},
	)
	missingPositions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "missing_positions_total",
			Help:      "The number of derived positions expected on the ring during host removal but found absent, e.g. after a hash collision, by ring name.",
		},
		[]string{"ring"},
	)
)
