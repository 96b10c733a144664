// Package hashmap implements an in-memory hash map using separate chaining in a power of 2 sized bucket table.
//
// The table is allocated at first insert and doubled whenever the number of entries exceeds
// capacity * load factor. Collision chains are never converted to trees, so a bucket collecting many keys with
// equal spread hash degrades lookups in that bucket to a linear scan.
//
// A HashMap is not safe for concurrent use.
package hashmap

import (
	"fmt"
	"math"

	"github.com/gostonefire/memstruct/hashfunc"
	"github.com/gostonefire/memstruct/internal/conf"
	"github.com/gostonefire/memstruct/internal/hash"
	"github.com/gostonefire/memstruct/internal/utils"
	"go.uber.org/zap"
)

// node - One entry in a bucket chain. A node is owned by its chain predecessor or by the table slot if it is
// the head of the chain.
type node[K comparable, V any] struct {
	hash  uint32
	key   K
	value V
	next  *node[K, V]
}

// Conf - Is a struct to be passed in the call to NewWithConf and contains configuration of the hash map.
//   - InitialCapacity is the number of buckets to allocate at first insert, rounded up to nearest power of 2
//   - LoadFactor is the ratio of entries to buckets above which the table is doubled
//   - HashAlgorithm is an optional custom native hash code function, nil gives the internal algorithm
//   - Logger is an optional logger for table resize events, nil gives a no-op logger
type Conf[K comparable] struct {
	InitialCapacity int
	LoadFactor      float64
	HashAlgorithm   hashfunc.HashAlgorithm[K]
	Logger          *zap.Logger
}

// HashMap - The main implementation struct
type HashMap[K comparable, V any] struct {
	table           []*node[K, V]
	size            int
	threshold       int
	loadFactor      float64
	modCount        int
	maximumCapacity int
	hashAlgorithm   hashfunc.HashAlgorithm[K]
	logger          *zap.Logger
}

// New - Returns a new empty hash map with default initial capacity (16) and load factor (0.75).
// The bucket table is not allocated until the first insert.
func New[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{
		loadFactor:      conf.DefaultLoadFactor,
		maximumCapacity: conf.MaximumCapacity,
		hashAlgorithm:   hash.NewNativeHashAlgorithm[K](),
		logger:          zap.NewNop(),
	}
}

// NewWithCapacity - Returns a new empty hash map prepared for initialCapacity buckets and with default load factor.
//   - initialCapacity must be 0 (zero) or positive, it is rounded up to nearest power of 2 and capped at 2^30
//
// It returns:
//   - hashMap is a pointer to the new HashMap
//   - err is of type IllegalCapacity if initialCapacity is negative
func NewWithCapacity[K comparable, V any](initialCapacity int) (hashMap *HashMap[K, V], err error) {
	return NewWithConf[K, V](Conf[K]{InitialCapacity: initialCapacity, LoadFactor: conf.DefaultLoadFactor})
}

// NewWithCapacityAndLoadFactor - Returns a new empty hash map prepared for initialCapacity buckets and using
// the given load factor.
//   - initialCapacity must be 0 (zero) or positive, it is rounded up to nearest power of 2 and capped at 2^30
//   - loadFactor must be positive and not NaN
//
// It returns:
//   - hashMap is a pointer to the new HashMap
//   - err is of type IllegalCapacity or IllegalLoadFactor if any of the parameters are invalid
func NewWithCapacityAndLoadFactor[K comparable, V any](initialCapacity int, loadFactor float64) (hashMap *HashMap[K, V], err error) {
	return NewWithConf[K, V](Conf[K]{InitialCapacity: initialCapacity, LoadFactor: loadFactor})
}

// NewWithConf - Returns a new empty hash map configured by hashMapConf.
// Validation of capacity and load factor follows NewWithCapacityAndLoadFactor. Nothing is created on error.
func NewWithConf[K comparable, V any](hashMapConf Conf[K]) (hashMap *HashMap[K, V], err error) {
	// Check if initial capacity is valid
	if hashMapConf.InitialCapacity < 0 {
		err = IllegalCapacity{msg: fmt.Sprintf("illegal initial capacity: %d", hashMapConf.InitialCapacity)}
		return
	}

	// Check if load factor is valid
	if hashMapConf.LoadFactor <= 0 || math.IsNaN(hashMapConf.LoadFactor) {
		err = IllegalLoadFactor{msg: fmt.Sprintf("illegal load factor: %v", hashMapConf.LoadFactor)}
		return
	}

	hashAlgorithm := hashMapConf.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewNativeHashAlgorithm[K]()
	}

	logger := hashMapConf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// The preset threshold is used as the capacity at first resize
	hashMap = &HashMap[K, V]{
		threshold:       utils.TableSizeFor(hashMapConf.InitialCapacity),
		loadFactor:      hashMapConf.LoadFactor,
		maximumCapacity: conf.MaximumCapacity,
		hashAlgorithm:   hashAlgorithm,
		logger:          logger,
	}

	return
}

// Capacity - Returns the current number of buckets, 0 (zero) before the first insert
func (H *HashMap[K, V]) Capacity() int {
	return len(H.table)
}

// Threshold - Returns the number of entries above which the table is doubled. Before the first insert it holds
// the capacity that will be allocated, or 0 (zero) if the default capacity is to be used.
func (H *HashMap[K, V]) Threshold() int {
	return H.threshold
}

// LoadFactor - Returns the load factor the hash map was created with
func (H *HashMap[K, V]) LoadFactor() float64 {
	return H.loadFactor
}

// hash - Returns the spread hash of key
func (H *HashMap[K, V]) hash(key K) uint32 {
	return hash.Spread(H.hashAlgorithm.HashCode(key))
}

// resize - Allocates the initial table or doubles the current one, and returns the table in use afterwards.
// Entries of a chain are split on the bit of the hash corresponding to the old capacity. Entries with that bit
// unset stay at their index, the others move to index + old capacity. Relative order within chains is kept.
func (H *HashMap[K, V]) resize() []*node[K, V] {
	oldTab := H.table
	oldCap := len(oldTab)
	oldThr := H.threshold
	var newCap, newThr int

	if oldCap > 0 {
		// Saturate, the table can not grow any further
		if oldCap >= H.maximumCapacity {
			H.threshold = conf.MaxThreshold
			H.logger.Warn("hash map reached maximum capacity, chains will grow unchecked",
				zap.Int("capacity", oldCap),
				zap.Int("size", H.size))
			return oldTab
		}
		newCap = oldCap << 1
		if newCap < H.maximumCapacity && oldCap >= conf.DefaultInitialCapacity {
			newThr = oldThr << 1
		}
	} else if oldThr > 0 {
		// The bit-split needs a power of 2 capacity
		newCap = oldThr
		if !utils.IsPowerOf2(newCap) {
			newCap = utils.TableSizeFor(newCap)
		}
	} else {
		newCap = conf.DefaultInitialCapacity
		newThr = int(conf.DefaultLoadFactor * float64(conf.DefaultInitialCapacity))
	}

	if newThr == 0 {
		ft := float64(newCap) * H.loadFactor
		if newCap < H.maximumCapacity && ft < float64(H.maximumCapacity) {
			newThr = int(ft)
		} else {
			newThr = conf.MaxThreshold
		}
	}

	H.threshold = newThr
	newTab := make([]*node[K, V], newCap)
	H.table = newTab

	for j := 0; j < oldCap; j++ {
		e := oldTab[j]
		if e == nil {
			continue
		}
		oldTab[j] = nil

		if e.next == nil {
			newTab[e.hash&uint32(newCap-1)] = e
			continue
		}

		var loHead, loTail, hiHead, hiTail *node[K, V]
		for e != nil {
			next := e.next
			if e.hash&uint32(oldCap) == 0 {
				if loTail == nil {
					loHead = e
				} else {
					loTail.next = e
				}
				loTail = e
			} else {
				if hiTail == nil {
					hiHead = e
				} else {
					hiTail.next = e
				}
				hiTail = e
			}
			e = next
		}

		if loTail != nil {
			loTail.next = nil
			newTab[j] = loHead
		}
		if hiTail != nil {
			hiTail.next = nil
			newTab[j+oldCap] = hiHead
		}
	}

	H.logger.Debug("hash map table resized",
		zap.Int("oldCapacity", oldCap),
		zap.Int("newCapacity", newCap),
		zap.Int("threshold", newThr),
		zap.Int("size", H.size))

	return newTab
}
