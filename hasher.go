package hashring

import (
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Hasher turns an arbitrary string into a 64-bit ring position. The same
// function places virtual nodes and maps lookup keys, so it must be
// deterministic across processes for independently built rings to agree
// on ownership. It does not need to be cryptographic, only fast and
// well-distributed. Implementations must be stateless.
type Hasher interface {
	Sum64(key string) uint64
}

// HasherFunc simplifies implementation of stateless Hashers.
type HasherFunc func(key string) uint64

func (f HasherFunc) Sum64(key string) uint64 {
	return f(key)
}

var (
	// XXHash is the default Hasher.
	XXHash Hasher = HasherFunc(xxhash.Sum64String)

	// Murmur3 is an alternative for embedders already standardised on
	// murmur elsewhere in their stack.
	Murmur3 Hasher = HasherFunc(func(key string) uint64 {
		return murmur3.Sum64([]byte(key))
	})

	// FNV1a trades some distribution quality for having no dependency
	// beyond the standard library.
	FNV1a Hasher = HasherFunc(func(key string) uint64 {
		h := fnv.New64a()
		h.Write([]byte(key)) // never fails
		return h.Sum64()
	})
)
