//go:build stress

package test

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/gostonefire/memstruct/hashmap"
	"github.com/gostonefire/memstruct/skiplist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collidingHashAlgorithm - Gives only 64 distinct hash codes, forcing long chains
type collidingHashAlgorithm struct{}

func (collidingHashAlgorithm) HashCode(key string) int32 {
	var h int32
	for _, c := range key {
		h += c
	}
	return h & 63
}

func TestStressHashMap(t *testing.T) {
	tests := []struct {
		name       string
		conf       hashmap.Conf[string]
		operations int
	}{
		{name: "default", conf: hashmap.Conf[string]{InitialCapacity: 16, LoadFactor: 0.75}, operations: 500000},
		{name: "tiny table", conf: hashmap.Conf[string]{InitialCapacity: 0, LoadFactor: 0.25}, operations: 200000},
		{name: "colliding hash", conf: hashmap.Conf[string]{InitialCapacity: 16, LoadFactor: 4, HashAlgorithm: collidingHashAlgorithm{}}, operations: 50000},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("random operations on %s", test.name), func(t *testing.T) {
			// Prepare
			r := rand.New(rand.NewSource(1))
			hm, err := hashmap.NewWithConf[string, int](test.conf)
			require.NoError(t, err, "create hash map")
			reference := make(map[string]int)

			// Execute
			for i := 0; i < test.operations; i++ {
				key := fmt.Sprintf("key-%d", r.Intn(test.operations/4))
				switch op := r.Intn(10); {
				case op < 6:
					previous, replaced := hm.Put(key, i)
					refPrevious, refReplaced := reference[key]
					require.Equalf(t, refReplaced, replaced, "put %s reports replace", key)
					require.Equalf(t, refPrevious, previous, "put %s returns previous", key)
					reference[key] = i
				case op < 9:
					value, removed := hm.Remove(key)
					refValue, refRemoved := reference[key]
					require.Equalf(t, refRemoved, removed, "remove %s reports removal", key)
					require.Equalf(t, refValue, value, "remove %s returns value", key)
					delete(reference, key)
				default:
					value, found := hm.Get(key)
					refValue, refFound := reference[key]
					require.Equalf(t, refFound, found, "get %s reports found", key)
					require.Equalf(t, refValue, value, "get %s returns value", key)
				}
			}

			// Check
			assert.Equal(t, len(reference), hm.Size(), "size matches reference")
			stat := hm.Stat(false)
			assert.Equal(t, hm.Size(), stat.Records, "stat records matches size")

			seen := 0
			iter := hm.Iterator()
			for iter.HasNext() {
				key, value, err := iter.Next()
				require.NoError(t, err, "iterates")
				assert.Equalf(t, reference[key], value, "iterated value of %s", key)
				seen++
			}
			_, _, err = iter.Next()
			assert.True(t, errors.Is(err, hashmap.NoRecordFound{}), "iterator exhausted")
			assert.Equal(t, len(reference), seen, "iterated every entry")
		})
	}
}

func TestStressSkipList(t *testing.T) {
	t.Run("random operations against sorted reference", func(t *testing.T) {
		// Prepare
		r := rand.New(rand.NewSource(2))
		sl := skiplist.NewSeeded[int](3)
		reference := make(map[int]int)

		// Execute
		for i := 0; i < 300000; i++ {
			v := r.Intn(20000)
			if r.Intn(3) == 0 {
				removed := sl.Remove(v)
				require.Equalf(t, reference[v] > 0, removed, "remove %d", v)
				if removed {
					reference[v]--
				}
			} else {
				sl.Add(v)
				reference[v]++
			}
		}

		// Check
		var expected []int
		for v, count := range reference {
			for j := 0; j < count; j++ {
				expected = append(expected, v)
			}
		}
		sort.Ints(expected)

		assert.Equal(t, len(expected), sl.Len(), "length matches reference")
		assert.Equal(t, expected, sl.Values(), "values match reference")
		for v := 0; v < 20000; v++ {
			assert.Equalf(t, reference[v] > 0, sl.Contains(v), "membership of %d", v)
		}
	})
}
