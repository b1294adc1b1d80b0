package hashring

import (
	"math"
)

// SetLoad replaces a host's load counter, adjusting the aggregate by the
// difference. It returns false, changing nothing, if the host is not
// registered.
func (r *Ring) SetLoad(hostname string, load uint64) bool {
	slot, ok := r.byName[hostname]
	if !ok {
		return false
	}
	r.total -= r.hosts[slot].load
	r.hosts[slot].load = load
	r.total += load
	r.load.Set(float64(r.total))
	return true
}

// IncLoad increments a host's load counter by one. It returns false,
// changing nothing, if the host is not registered.
func (r *Ring) IncLoad(hostname string) bool {
	slot, ok := r.byName[hostname]
	if !ok {
		return false
	}
	r.hosts[slot].load++
	r.total++
	r.load.Set(float64(r.total))
	return true
}

// DecLoad decrements a host's load counter by one, saturating at zero
// rather than underflowing. It returns false, changing nothing, if the
// host is not registered or its load is already zero.
func (r *Ring) DecLoad(hostname string) bool {
	slot, ok := r.byName[hostname]
	if !ok || r.hosts[slot].load == 0 {
		return false
	}
	r.hosts[slot].load--
	r.total--
	r.load.Set(float64(r.total))
	return true
}

// AvgLoad returns the per-host cap GetLeast selects against: the mean
// load were one more unit placed, scaled by the configured load factor
// and rounded up. Counting the pending placement in the numerator keeps
// the cap ahead of the load a successful lookup is about to add, so there
// is always a host with capacity, and the result is never below 1 even on
// an idle ring.
func (r *Ring) AvgLoad() float64 {
	hosts := len(r.byName)
	if hosts == 0 {
		hosts = 1
	}
	avg := float64(r.total+1) / float64(hosts)
	return math.Ceil(avg * r.config.LoadFactor)
}
