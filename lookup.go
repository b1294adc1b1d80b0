package hashring

// Get returns the host owning the key's successor position, or false if
// no hosts are registered. For a fixed set of hosts the result is stable
// across calls, and changing the set only reassigns keys whose successor
// position belonged to the added or removed host's virtual nodes.
func (r *Ring) Get(key string) (string, bool) {
	r.lookups.Inc()
	if r.index.Len() == 0 {
		return "", false
	}
	i := r.index.Successor(r.hasher.Sum64(key))
	return r.hosts[r.index.Slot(i)].name, true
}

// GetLeast returns a host for the key, skipping hosts whose incremented
// load would exceed the current cap (see AvgLoad). It prefers the host
// Get would return, walking forward around the ring while the candidate
// is at capacity, so overflow lands on the next successor rather than an
// arbitrary host. It returns false only when no hosts are registered.
//
// Each distinct host is considered at most once per call. Should every
// host be at capacity, which the cap formula prevents while each host
// retains at least one ring position, the walk ends after a single sweep
// and the successor host is returned regardless.
//
// Note GetLeast does not itself increment the chosen host's load; that is
// the caller's decision, typically IncLoad on selection and DecLoad on
// completion.
func (r *Ring) GetLeast(key string) (string, bool) {
	r.boundedLookups.Inc()
	if r.index.Len() == 0 {
		return "", false
	}
	limit := r.AvgLoad()
	i := r.index.Successor(r.hasher.Sum64(key))
	first := r.index.Slot(i)

	seen := make(map[int]struct{}, len(r.byName))
	for n := 0; n < r.index.Len(); n++ {
		slot := r.index.Slot(i)
		i++
		if i == r.index.Len() {
			i = 0
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		if float64(r.hosts[slot].load+1) <= limit {
			if slot != first {
				r.boundedOverflows.Inc()
			}
			return r.hosts[slot].name, true
		}
	}

	r.boundedFallbacks.Inc()
	return r.hosts[first].name, true
}
