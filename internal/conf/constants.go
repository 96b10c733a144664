package conf

import "math"

// DefaultInitialCapacity - Number of buckets allocated on first insert when no initial capacity was given.
// Must be a power of 2.
const DefaultInitialCapacity int = 16

// MaximumCapacity - Largest number of buckets a hash map table will ever have
const MaximumCapacity int = 1 << 30

// DefaultLoadFactor - Ratio of entries to buckets above which the hash map table is doubled
const DefaultLoadFactor float64 = 0.75

// MaxThreshold - Saturated resize threshold, used once the table can no longer grow
const MaxThreshold int = math.MaxInt32

// MaxLevel - Number of levels in a skip list, the head sentinel participates in all of them
const MaxLevel int = 32

// PromotionProbability - Chance that a sampled skip list node level is extended by one more level
const PromotionProbability float64 = 0.25
