package hash

import (
	"hash/maphash"

	"github.com/gostonefire/memstruct/hashfunc"
)

// NativeHashAlgorithm - The internally used hash algorithm. It uses the key's own hash code if the key implements
// hashfunc.HashCoder, otherwise maphash.Comparable folded to 32 bits. A nil or zero value key always has hash
// code 0 (zero).
type NativeHashAlgorithm[K comparable] struct {
	seed maphash.Seed
}

// NewNativeHashAlgorithm - Returns a pointer to a new NativeHashAlgorithm instance with a random seed
func NewNativeHashAlgorithm[K comparable]() *NativeHashAlgorithm[K] {
	return &NativeHashAlgorithm[K]{seed: maphash.MakeSeed()}
}

// HashCode - Given key it returns the native hash code of the key.
// The zero value of K, which includes nil interfaces and nil pointers, always gives 0 (zero).
func (N *NativeHashAlgorithm[K]) HashCode(key K) int32 {
	var zero K
	if key == zero {
		return 0
	}

	if k, ok := any(key).(hashfunc.HashCoder); ok {
		return k.HashCode()
	}

	h := maphash.Comparable(N.seed, key)
	return int32(uint32(h) ^ uint32(h>>32))
}

// Spread - Mixes the high 16 bits of a hash code into the low 16 bits, which are the ones used for bucket
// index on smaller tables.
func Spread(h int32) uint32 {
	u := uint32(h)
	return u ^ (u >> 16)
}
