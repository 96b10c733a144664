package hashmap

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - Capacity is the number of buckets in the table
//   - Threshold is the number of entries above which the table is doubled
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the number of entries in the most populated bucket
//   - BucketDistribution is the number of entries stored in each bucket
type HashMapStat struct {
	Records            int
	Capacity           int
	Threshold          int
	UsedBuckets        int
	LongestChain       int
	BucketDistribution []int
}

// Get - Gets the value associated with key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, otherwise the zero value of V
//   - found is true if an entry with key exists
func (H *HashMap[K, V]) Get(key K) (value V, found bool) {
	e := H.getNode(H.hash(key), key)
	if e == nil {
		return
	}

	value = e.value
	found = true

	return
}

// ContainsKey - Returns true if an entry with key exists
func (H *HashMap[K, V]) ContainsKey(key K) bool {
	return H.getNode(H.hash(key), key) != nil
}

// Put - Associates value with key, replacing the value of any existing entry with same key.
//   - key is the identifier of an entry, the zero value and nil are valid keys
//   - value is the value to store
//
// It returns:
//   - previous is the value that was replaced, or the zero value of V if the key was absent
//   - replaced is true if an existing entry was updated
func (H *HashMap[K, V]) Put(key K, value V) (previous V, replaced bool) {
	return H.putVal(H.hash(key), key, value, false)
}

// PutIfAbsent - Associates value with key only if no entry with key exists.
// An entry whose stored value is nil still counts as present and is not overwritten, use Put to replace it.
//
// It returns:
//   - current is the value already associated with key, or the zero value of V if value was stored
//   - present is true if an entry already existed and was left untouched
func (H *HashMap[K, V]) PutIfAbsent(key K, value V) (current V, present bool) {
	return H.putVal(H.hash(key), key, value, true)
}

// Remove - Removes the entry with key from the hash map.
//
// It returns:
//   - value is the value of the removed entry, or the zero value of V if no entry was found
//   - removed is true if an entry was removed
func (H *HashMap[K, V]) Remove(key K) (value V, removed bool) {
	n := len(H.table)
	if n == 0 {
		return
	}

	h := H.hash(key)
	i := h & uint32(n-1)

	var prev *node[K, V]
	for e := H.table[i]; e != nil; e = e.next {
		if e.hash == h && e.key == key {
			if prev == nil {
				H.table[i] = e.next
			} else {
				prev.next = e.next
			}
			e.next = nil
			H.modCount++
			H.size--

			value = e.value
			removed = true
			return
		}
		prev = e
	}

	return
}

// Size - Returns the number of entries in the hash map
func (H *HashMap[K, V]) Size() int {
	return H.size
}

// IsEmpty - Returns true if the hash map holds no entries
func (H *HashMap[K, V]) IsEmpty() bool {
	return H.size == 0
}

// Clear - Removes all entries. The capacity of the table is kept.
func (H *HashMap[K, V]) Clear() {
	H.modCount++
	if H.table != nil && H.size > 0 {
		H.size = 0
		clear(H.table)
	}
}

// Stat - Walks through the entire table and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of entries per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	hashMapStat.Capacity = len(H.table)
	hashMapStat.Threshold = H.threshold

	if includeDistribution {
		hashMapStat.BucketDistribution = make([]int, len(H.table))
	}

	for i, e := range H.table {
		var chain int
		for ; e != nil; e = e.next {
			chain++
		}
		if chain == 0 {
			continue
		}

		hashMapStat.Records += chain
		hashMapStat.UsedBuckets++
		hashMapStat.LongestChain = max(hashMapStat.LongestChain, chain)
		if includeDistribution {
			hashMapStat.BucketDistribution[i] = chain
		}
	}

	return
}

// getNode - Returns the entry matching hash and key, or nil if there is none
func (H *HashMap[K, V]) getNode(h uint32, key K) *node[K, V] {
	n := len(H.table)
	if n == 0 {
		return nil
	}

	first := H.table[h&uint32(n-1)]
	if first == nil {
		return nil
	}

	// Check the chain head first, it is the only entry for most buckets
	if first.hash == h && first.key == key {
		return first
	}
	for e := first.next; e != nil; e = e.next {
		if e.hash == h && e.key == key {
			return e
		}
	}

	return nil
}

// putVal - Updates an existing entry or appends a new one to the tail of its bucket chain.
// An update neither changes size nor triggers a resize. If onlyIfAbsent is set an existing entry is left as is.
func (H *HashMap[K, V]) putVal(h uint32, key K, value V, onlyIfAbsent bool) (previous V, existed bool) {
	tab := H.table
	if len(tab) == 0 {
		tab = H.resize()
	}
	n := len(tab)
	i := h & uint32(n-1)

	p := tab[i]
	if p == nil {
		tab[i] = &node[K, V]{hash: h, key: key, value: value}
	} else {
		var e *node[K, V]
		for {
			if p.hash == h && p.key == key {
				e = p
				break
			}
			if p.next == nil {
				p.next = &node[K, V]{hash: h, key: key, value: value}
				break
			}
			p = p.next
		}

		if e != nil {
			previous = e.value
			existed = true
			if !onlyIfAbsent {
				e.value = value
			}
			return
		}
	}

	H.modCount++
	H.size++
	if H.size > H.threshold {
		H.resize()
	}

	return
}
