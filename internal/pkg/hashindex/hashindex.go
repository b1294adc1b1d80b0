// Package hashindex provides the sorted position index underlying a ring
// hash.
package hashindex

import (
	"sort"
)

// Index is an ordered set of 64-bit ring positions, each owned by exactly
// one host slot. Slots are opaque integers allocated by the caller; the
// index never dereferences them, which keeps host state behind a single
// owner. The position sequence is kept sorted at all times, so Successor
// can always binary search without a preparatory pass.
type Index struct {

	// positions is sorted ascending. It contains one entry for each
	// distinct position on the ring, however many virtual nodes mapped to
	// it.
	positions []uint64

	// owners maps each element of positions back to its owning slot. The
	// two structures cover exactly the same set of positions.
	owners map[uint64]int
}

// New creates an empty index.
func New() *Index {
	return &Index{
		owners: make(map[uint64]int),
	}
}

// Len returns the number of distinct positions on the ring.
func (x *Index) Len() int {
	return len(x.positions)
}

// Insert places position under the given slot, maintaining sort order. If
// the position already exists, i.e. two virtual nodes hashed to exactly
// the same value, the last writer takes ownership and the position is not
// duplicated. Collisions are vanishingly rare in a 64-bit space, but must
// resolve the same way on every ring for lookups to agree.
func (x *Index) Insert(position uint64, slot int) {
	if _, ok := x.owners[position]; ok {
		x.owners[position] = slot
		return
	}
	i := sort.Search(len(x.positions), func(i int) bool {
		return x.positions[i] >= position
	})
	x.positions = append(x.positions, 0)
	copy(x.positions[i+1:], x.positions[i:])
	x.positions[i] = position
	x.owners[position] = slot
}

// Remove deletes a position, reporting whether it was present. Callers
// must tolerate false: a collision handled by Insert can leave a derived
// position owned by a different host, and already deleted, by the time its
// original owner is removed.
func (x *Index) Remove(position uint64) bool {
	if _, ok := x.owners[position]; !ok {
		return false
	}
	delete(x.owners, position)
	i := sort.Search(len(x.positions), func(i int) bool {
		return x.positions[i] >= position
	})
	x.positions = append(x.positions[:i], x.positions[i+1:]...)
	return true
}

// Successor returns the index of the smallest position >= hash. If hash is
// beyond the highest position, it wraps to 0; this is what makes a flat
// sorted slice behave as a circle. The index must be non-empty.
func (x *Index) Successor(hash uint64) int {
	i := sort.Search(len(x.positions), func(i int) bool {
		return x.positions[i] >= hash
	})

	// we have cycled back round to the first position
	if i == len(x.positions) {
		i = 0
	}
	return i
}

// Slot returns the owning slot of the i-th position, with i in [0, Len()).
func (x *Index) Slot(i int) int {
	return x.owners[x.positions[i]]
}
