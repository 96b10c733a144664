//go:build unit

package hashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashMap_Iterator(t *testing.T) {
	t.Run("visits every entry in bucket and chain order", func(t *testing.T) {
		// Prepare
		hm := newIdentityHashMap(t, 16, 100)
		for _, k := range []int{18, 1, 2, 17, 33} {
			hm.Put(k, "v")
		}

		// Execute
		var keys []int
		iter := hm.Iterator()
		for iter.HasNext() {
			k, v, err := iter.Next()
			assert.NoError(t, err, "gets next entry")
			assert.Equal(t, "v", v, "value correct")
			keys = append(keys, k)
		}

		// Check
		assert.Equal(t, []int{1, 17, 33, 18, 2}, keys, "bucket order then chain order")
		_, _, err := iter.Next()
		assert.ErrorIs(t, err, NoRecordFound{}, "exhausted iterator")
	})

	t.Run("empty hash map has nothing to iterate", func(t *testing.T) {
		// Execute
		iter := New[string, int]().Iterator()

		// Check
		assert.False(t, iter.HasNext(), "no entries")
		_, _, err := iter.Next()
		assert.ErrorIs(t, err, NoRecordFound{}, "exhausted iterator")
	})

	t.Run("fails fast after structural modification", func(t *testing.T) {
		// Prepare
		hm := New[string, int]()
		hm.Put("a", 1)
		hm.Put("b", 2)
		iter := hm.Iterator()
		_, _, err := iter.Next()
		assert.NoError(t, err, "first entry before modification")

		// Execute
		hm.Put("c", 3)

		// Check
		_, _, err = iter.Next()
		assert.ErrorIs(t, err, ConcurrentModification{}, "modification detected")
	})

	t.Run("value updates do not break iteration", func(t *testing.T) {
		// Prepare
		hm := New[string, int]()
		hm.Put("a", 1)
		hm.Put("b", 2)
		iter := hm.Iterator()

		// Execute
		hm.Put("a", 10)

		// Check
		count := 0
		for iter.HasNext() {
			_, _, err := iter.Next()
			assert.NoError(t, err, "iterates after value update")
			count++
		}
		assert.Equal(t, hm.Size(), count, "visited all entries")
	})

	t.Run("clear is detected", func(t *testing.T) {
		// Prepare
		hm := New[string, int]()
		hm.Put("a", 1)
		iter := hm.Iterator()

		// Execute
		hm.Clear()

		// Check
		_, _, err := iter.Next()
		assert.ErrorIs(t, err, ConcurrentModification{}, "clear detected")
	})
}
