package hashring

import (
	"strconv"
)

// Add registers a host, placing its virtual nodes on the ring. Its load
// starts at zero. Adding a name that is already registered is a no-op,
// leaving both the ring and the existing load counter untouched.
func (r *Ring) Add(hostname string) {
	if _, ok := r.byName[hostname]; ok {
		return
	}
	slot := r.allocate(hostname)
	r.byName[hostname] = slot
	for i := 0; i < r.config.ReplicationFactor; i++ {
		r.index.Insert(r.position(hostname, i), slot)
	}
	r.registered.Set(float64(len(r.byName)))
	r.positions.Set(float64(r.index.Len()))
}

// Remove deregisters a host, deleting its virtual nodes, its membership
// entry and its contribution to the aggregate load in one step; lookups
// never observe a partially removed host. Removing an unknown name is a
// no-op. A derived position can legitimately be absent from the index if
// another host's virtual node collided with it; that is counted, not
// fatal.
func (r *Ring) Remove(hostname string) {
	slot, ok := r.byName[hostname]
	if !ok {
		return
	}
	for i := 0; i < r.config.ReplicationFactor; i++ {
		if !r.index.Remove(r.position(hostname, i)) {
			r.missingPositions.Inc()
		}
	}
	r.total -= r.hosts[slot].load
	r.load.Set(float64(r.total))
	delete(r.byName, hostname)
	r.hosts[slot] = host{}
	r.free = append(r.free, slot)
	r.registered.Set(float64(len(r.byName)))
	r.positions.Set(float64(r.index.Len()))
}

// position derives the ring position of the i-th virtual node of a host.
// Add and Remove must derive identical positions, which is why this
// exists rather than each concatenating for itself.
func (r *Ring) position(hostname string, i int) uint64 {
	return r.hasher.Sum64(hostname + strconv.Itoa(i))
}

// allocate finds an arena slot for a new host, reusing a freed slot if
// one is available.
func (r *Ring) allocate(hostname string) int {
	if n := len(r.free); n > 0 {
		slot := r.free[n-1]
		r.free = r.free[:n-1]
		r.hosts[slot] = host{name: hostname}
		return slot
	}
	r.hosts = append(r.hosts, host{name: hostname})
	return len(r.hosts) - 1
}
