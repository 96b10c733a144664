package utils

import (
	"math/bits"

	"github.com/gostonefire/memstruct/internal/conf"
)

// TableSizeFor - Returns the smallest power of 2 that is equal to or bigger than capacity.
// A capacity of 0 (zero) or less gives 1 and anything above conf.MaximumCapacity gives conf.MaximumCapacity.
func TableSizeFor(capacity int) int {
	if capacity <= 1 {
		return 1
	}
	if capacity >= conf.MaximumCapacity {
		return conf.MaximumCapacity
	}

	return 1 << bits.Len(uint(capacity-1))
}

// IsPowerOf2 - Returns true if n is a positive power of 2
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
