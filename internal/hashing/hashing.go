// Package hashing provides Zobrist layout hashes and hash-bucketed occurrence
// counting used for repetition detection.
package hashing

// Counter counts occurrences of items bucketed by hash code. Items sharing a
// bucket are told apart with the equality function, so hash collisions never
// merge distinct items.
type Counter[T any] struct {
	// hashTable stores seen items per hash code
	hashTable map[uint64][]counted[T]
	equal     func(a, b T) bool
}

type counted[T any] struct {
	item  T
	count int
}

// NewCounter creates a new occurrence counter.
func NewCounter[T any](equal func(a, b T) bool) *Counter[T] {
	return &Counter[T]{
		hashTable: make(map[uint64][]counted[T]),
		equal:     equal,
	}
}

// Add records one occurrence of item and returns how many times an equal
// item has now been seen, including this one.
func (c *Counter[T]) Add(hash uint64, item T) int {
	bucket := c.hashTable[hash]
	for i := range bucket {
		if c.equal(bucket[i].item, item) {
			bucket[i].count++
			return bucket[i].count
		}
	}
	c.hashTable[hash] = append(bucket, counted[T]{item: item, count: 1})
	return 1
}

// Count returns how many times an item equal to item has been added.
func (c *Counter[T]) Count(hash uint64, item T) int {
	for _, e := range c.hashTable[hash] {
		if c.equal(e.item, item) {
			return e.count
		}
	}
	return 0
}
