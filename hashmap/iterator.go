package hashmap

// Iterator - Is used to iterate over hash map entries one by one, bucket by bucket in index order.
// It fails fast with ConcurrentModification if the hash map is structurally modified (insert, remove, clear) after
// the iterator was created. Updating the value of an existing key is not a structural modification.
type Iterator[K comparable, V any] struct {
	hashMap          *HashMap[K, V]
	next             *node[K, V]
	index            int
	expectedModCount int
}

// Iterator - Returns a pointer to a new Iterator positioned at the first entry
func (H *HashMap[K, V]) Iterator() *Iterator[K, V] {
	iter := &Iterator[K, V]{
		hashMap:          H,
		expectedModCount: H.modCount,
	}
	iter.advance()

	return iter
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (I *Iterator[K, V]) HasNext() bool {
	return I.next != nil
}

// Next - Returns the next entry.
// It returns:
//   - key is the key of the entry
//   - value is the value of the entry
//   - err is of type ConcurrentModification if the hash map changed structurally, or of type NoRecordFound if there are no more entries when calling this function.
func (I *Iterator[K, V]) Next() (key K, value V, err error) {
	if I.hashMap.modCount != I.expectedModCount {
		err = ConcurrentModification{}
		return
	}
	if I.next == nil {
		err = NoRecordFound{}
		return
	}

	e := I.next
	key = e.key
	value = e.value

	I.next = e.next
	if I.next == nil {
		I.advance()
	}

	return
}

// advance - Moves to the head of the next non-empty bucket, leaves next as nil if there is none
func (I *Iterator[K, V]) advance() {
	tab := I.hashMap.table
	for I.index < len(tab) {
		e := tab[I.index]
		I.index++
		if e != nil {
			I.next = e
			return
		}
	}
}
