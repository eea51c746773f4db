package chash

import (
	"iter"

	"go.uber.org/zap"
)

// resizeRatio is the growth factor of the bucket index
const resizeRatio = 2

// Table is a hash table with separate chaining. Entries are owned by a
// record store and referenced from per-bucket chains. When the number of
// entries exceeds the number of buckets, the bucket count doubles and every
// chain is rebuilt.
//
// A Table is not safe for concurrent use.
type Table[K comparable, V any] struct {
	hasher  Hasher[K]
	log     *zap.Logger
	records store[K, V]
	buckets index
	version uint64
}

// Pair is a key/value pair used to load and export tables
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// New creates an empty table with a single bucket
func New[K comparable, V any](opts ...Option) *Table[K, V] {
	h, logger := buildConfig[K](opts)
	return &Table[K, V]{
		hasher:  h,
		log:     logger,
		records: newStore[K, V](),
		buckets: newIndex(1),
	}
}

// FromSeq creates a table holding the pairs produced by seq. Pairs are
// loaded in order; a pair whose key was already loaded is dropped, the same
// as Insert would do. The bucket count is twice the resulting size.
func FromSeq[K comparable, V any](seq iter.Seq2[K, V], opts ...Option) *Table[K, V] {
	var pairs []Pair[K, V]
	for k, v := range seq {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return FromPairs(pairs, opts...)
}

// FromPairs creates a table holding pairs, with the same rules as FromSeq
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option) *Table[K, V] {
	t := New[K, V](opts...)
	t.buckets = newIndex(resizeRatio * len(pairs))
	for _, p := range pairs {
		if t.lookup(p.Key) != nilSlot {
			continue
		}
		t.link(t.records.pushFront(p.Key, p.Value), t.bucketOf(p.Key))
	}
	if want := max(resizeRatio*t.records.size, 1); want != t.buckets.buckets() {
		t.rebuild(want)
	}
	return t
}

// Of creates a table from a literal list of pairs
func Of[K comparable, V any](pairs ...Pair[K, V]) *Table[K, V] {
	return FromPairs(pairs)
}

// Clone returns a deep copy of t. Entries keep their relative order, the
// hasher and logger are shared, and the bucket count is twice the size.
func (t *Table[K, V]) Clone() *Table[K, V] {
	c := &Table[K, V]{
		hasher:  t.hasher,
		log:     t.log,
		records: newStore[K, V](),
	}
	for slot := t.records.head; slot != nilSlot; slot = t.records.at(slot).next {
		r := t.records.at(slot)
		c.records.pushBack(r.key, r.value)
	}
	c.rebuild(resizeRatio * c.records.size)
	return c
}

// Assign replaces the contents and hasher of t with a deep copy of src.
// The copy is built completely before t is touched, so t.Assign(t) keeps
// every entry. The bucket count becomes twice the new size, every cursor
// on t is invalidated, and t keeps its own logger.
func (t *Table[K, V]) Assign(src *Table[K, V]) {
	c := src.Clone()
	t.hasher = c.hasher
	t.records = c.records
	t.buckets = c.buckets
	t.version++
}

// Len returns the number of entries
func (t *Table[K, V]) Len() int {
	return t.records.size
}

// Empty reports whether the table has no entries
func (t *Table[K, V]) Empty() bool {
	return t.records.size == 0
}

// Capacity returns the current number of buckets
func (t *Table[K, V]) Capacity() int {
	return t.buckets.buckets()
}

// HashFunction returns the hashing policy of the table
func (t *Table[K, V]) HashFunction() Hasher[K] {
	return t.hasher
}

// Find returns a cursor on the entry with the given key, or End() if there
// is none.
func (t *Table[K, V]) Find(key K) Cursor[K, V] {
	return t.cursor(t.lookup(key))
}

// Lookup returns the value stored under key and whether it was present
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	if slot := t.lookup(key); slot != nilSlot {
		return t.records.at(slot).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present
func (t *Table[K, V]) Contains(key K) bool {
	return t.lookup(key) != nilSlot
}

// At returns the value stored under key, or ErrKeyNotFound
func (t *Table[K, V]) At(key K) (V, error) {
	v, ok := t.Lookup(key)
	if !ok {
		return v, ErrKeyNotFound
	}
	return v, nil
}

// Index returns a pointer to the value stored under key, inserting the zero
// value first if key is absent. The pointer is valid until the entry is
// erased or the table is cleared or reassigned.
func (t *Table[K, V]) Index(key K) *V {
	slot := t.lookup(key)
	if slot == nilSlot {
		var zero V
		slot = t.insert(key, zero)
	}
	return &t.records.at(slot).value
}

// Insert adds key with value. If key is already present nothing changes,
// the existing value is kept, and Insert returns false.
func (t *Table[K, V]) Insert(key K, value V) bool {
	if t.lookup(key) != nilSlot {
		return false
	}
	t.insert(key, value)
	return true
}

// insert stores a key known to be absent and applies the resize policy
func (t *Table[K, V]) insert(key K, value V) int {
	slot := t.records.pushFront(key, value)
	t.link(slot, t.bucketOf(key))
	t.growIfNeeded()
	return slot
}

// Erase removes key. It returns false if key was absent. The bucket count
// never shrinks.
func (t *Table[K, V]) Erase(key K) bool {
	b := t.bucketOf(key)
	slot := t.lookup(key)
	if slot == nilSlot {
		return false
	}
	t.unlink(slot, b)
	t.records.remove(slot)
	t.version++
	return true
}

// Clear removes every entry but keeps the current bucket count
func (t *Table[K, V]) Clear() {
	t.records.reset()
	t.buckets.empty()
	t.version++
}
