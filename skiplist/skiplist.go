// Package skiplist implements an ordered set of values kept in a skip list with probabilistic level assignment.
//
// Search, insert and remove run in O(log n) expected time. Inserting a value that is already present adds another
// node with the same value, removing it removes one node at a time.
//
// A SkipList is not safe for concurrent use.
package skiplist

import (
	"math/rand"
	"time"

	"github.com/gostonefire/memstruct/internal/conf"
	"golang.org/x/exp/constraints"
)

// RandomSource - Interface for the uniform random numbers used when sampling node levels.
// *rand.Rand satisfies it.
type RandomSource interface {
	// Float64 - Returns a pseudo-random number in [0.0,1.0)
	Float64() float64
}

type node[T constraints.Ordered] struct {
	value T
	next  []*node[T]
}

// SkipList - The main implementation struct
type SkipList[T constraints.Ordered] struct {
	head   *node[T]
	level  int
	length int
	random RandomSource
}

// New - Returns a pointer to a new empty SkipList sampling node levels from randomSource.
// A nil randomSource gives a time seeded math/rand source.
func New[T constraints.Ordered](randomSource RandomSource) *SkipList[T] {
	if randomSource == nil {
		randomSource = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &SkipList[T]{
		head:   &node[T]{next: make([]*node[T], conf.MaxLevel)},
		level:  1,
		random: randomSource,
	}
}

// NewSeeded - Returns a pointer to a new empty SkipList with a deterministic math/rand source
func NewSeeded[T constraints.Ordered](seed int64) *SkipList[T] {
	return New[T](rand.New(rand.NewSource(seed)))
}

// Contains - Returns true if at least one node holds value
func (S *SkipList[T]) Contains(value T) bool {
	cur := S.head
	for i := S.level - 1; i >= 0; i-- {
		for cur.next[i] != nil && cur.next[i].value < value {
			cur = cur.next[i]
		}
	}

	cur = cur.next[0]
	return cur != nil && cur.value == value
}

// Add - Inserts value. An already present value is not replaced, the new node is placed in front of the
// existing ones.
func (S *SkipList[T]) Add(value T) {
	var update [conf.MaxLevel]*node[T]
	S.findPredecessors(value, &update)

	newLevel := S.randomLevel()
	if newLevel > S.level {
		for i := S.level; i < newLevel; i++ {
			update[i] = S.head
		}
		S.level = newLevel
	}

	n := &node[T]{value: value, next: make([]*node[T], newLevel)}
	for i := 0; i < newLevel; i++ {
		n.next[i] = update[i].next[i]
		update[i].next[i] = n
	}
	S.length++
}

// Remove - Removes one node holding value.
// It returns true if a node was removed, false if value was not present.
func (S *SkipList[T]) Remove(value T) bool {
	var update [conf.MaxLevel]*node[T]
	S.findPredecessors(value, &update)

	target := update[0].next[0]
	if target == nil || target.value != value {
		return false
	}

	// Splice out bottom up, the target takes part in levels 0 to len(target.next)-1 only
	for i := 0; i < S.level; i++ {
		if update[i].next[i] != target {
			break
		}
		update[i].next[i] = target.next[i]
		target.next[i] = nil
	}

	for S.level > 1 && S.head.next[S.level-1] == nil {
		S.level--
	}
	S.length--

	return true
}

// Len - Returns the number of nodes, duplicates included
func (S *SkipList[T]) Len() int {
	return S.length
}

// Level - Returns the number of active levels, at least 1
func (S *SkipList[T]) Level() int {
	return S.level
}

// Values - Returns all values in ascending order
func (S *SkipList[T]) Values() []T {
	return S.LevelValues(0)
}

// LevelValues - Returns the values of the nodes taking part in level, in ascending order.
// It returns nil if level is not an active level.
func (S *SkipList[T]) LevelValues(level int) []T {
	if level < 0 || level >= S.level {
		return nil
	}

	// Only level 0 is known to hold every node
	var values []T
	if level == 0 {
		values = make([]T, 0, S.length)
	} else {
		values = make([]T, 0)
	}
	for cur := S.head.next[level]; cur != nil; cur = cur.next[level] {
		values = append(values, cur.value)
	}

	return values
}

// findPredecessors - Descends from the highest active level and records in update the last node before
// value on every active level
func (S *SkipList[T]) findPredecessors(value T, update *[conf.MaxLevel]*node[T]) {
	cur := S.head
	for i := S.level - 1; i >= 0; i-- {
		for cur.next[i] != nil && cur.next[i].value < value {
			cur = cur.next[i]
		}
		update[i] = cur
	}
}

// randomLevel - Samples a level in 1 to conf.MaxLevel, geometrically distributed with conf.PromotionProbability
func (S *SkipList[T]) randomLevel() int {
	level := 1
	for S.random.Float64() < conf.PromotionProbability && level < conf.MaxLevel {
		level++
	}

	return level
}
