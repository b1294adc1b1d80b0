/*
Package hashring implements a consistent hashing ring with bounded loads.

Both keys and hosts are mapped onto a shared 64-bit circular hash space,
so that when the set of hosts changes, only the keys whose closest ring
position belonged to the affected host move; the rest of the keyspace is
undisturbed. Each host is placed on the ring several times (virtual
nodes) to smooth the distribution between hosts of equal weight.

Two lookups are offered. Get is the classic consistent hash: the key's
successor position on the ring wins, always. GetLeast additionally tracks
a load counter per host, and refuses to pick a host whose incremented
load would exceed a cap derived from the current mean; overflow spills
deterministically to the next host around the ring. Callers drive the
counters themselves via IncLoad, DecLoad and SetLoad, typically around
the unit of work they routed.

A Ring has no internal synchronisation and no operation is safe to run
concurrently with a mutating one. It is designed to be owned by a single
goroutine; if it must be shared, wrap every call, lookups included, in
one mutex. Finer-grained locking is not possible from outside, as Add and
Remove restructure the index that lookups search.
*/
package hashring

import (
	"github.com/routamo/hashring/internal/pkg/hashindex"

	"github.com/prometheus/client_golang/prometheus"
)

// host is a record in the Ring's arena. The index refers to hosts by
// arena slot rather than by pointer, so all mutable state stays behind
// the Ring itself.
type host struct {
	name string
	load uint64
}

// Ring routes keys to hosts. Create instances with New. Not safe for
// concurrent use; see the package documentation.
type Ring struct {
	config Config
	hasher Hasher

	index *hashindex.Index

	// hosts is an arena of records referenced by slot from the index and
	// byName. Slots of removed hosts are recycled via free.
	hosts  []host
	free   []int
	byName map[string]int

	// total is the sum of all hosts' load, maintained incrementally
	// alongside every counter mutation.
	total uint64

	registered, positions, load prometheus.Gauge

	lookups, boundedLookups, boundedOverflows, boundedFallbacks, missingPositions prometheus.Counter
}

// New creates an empty ring. Zero-value config fields are filled with
// defaults, so hashring.New(hashring.Config{}) is a working ring; see
// Config for what can be tuned. Metrics are labelled by config.Name, so
// rings meant to be distinguishable in monitoring should be named.
func New(config Config) *Ring {
	config = config.withDefaults()
	r := &Ring{
		config: config,
		hasher: config.Hasher,
		index:  hashindex.New(),
		byName: make(map[string]int),

		registered: hostsRegistered.WithLabelValues(config.Name),
		positions:  ringPositions.WithLabelValues(config.Name),
		load:       aggregateLoad.WithLabelValues(config.Name),

		lookups:          lookups.WithLabelValues(config.Name),
		boundedLookups:   boundedLookups.WithLabelValues(config.Name),
		boundedOverflows: boundedOverflows.WithLabelValues(config.Name),
		boundedFallbacks: boundedFallbacks.WithLabelValues(config.Name),
		missingPositions: missingPositions.WithLabelValues(config.Name),
	}
	r.registered.Set(0)
	r.positions.Set(0)
	r.load.Set(0)
	return r
}

// ReplicationFactor returns the number of virtual nodes placed per host.
func (r *Ring) ReplicationFactor() int {
	return r.config.ReplicationFactor
}

// Hosts returns the names of all registered hosts, in no particular
// order.
func (r *Ring) Hosts() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}
