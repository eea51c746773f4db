package chash

import "iter"

// Cursor points at one entry of a table, or past the last entry (End).
//
// A cursor is invalidated by any growth of the bucket index, by Erase, by
// Clear and by Assign. Stale reports this; using a stale cursor in any
// other way is undefined and is not checked.
//
// Cursors of the same table compare equal with == when they point at the
// same entry and were taken between the same two invalidations.
type Cursor[K comparable, V any] struct {
	t       *Table[K, V]
	slot    int
	version uint64
}

func (t *Table[K, V]) cursor(slot int) Cursor[K, V] {
	return Cursor[K, V]{t: t, slot: slot, version: t.version}
}

// Begin returns a cursor on the first entry in traversal order, which is
// the most recently inserted entry. For an empty table it equals End().
func (t *Table[K, V]) Begin() Cursor[K, V] {
	return t.cursor(t.records.head)
}

// End returns the past-the-end cursor, also returned by Find on a miss
func (t *Table[K, V]) End() Cursor[K, V] {
	return t.cursor(nilSlot)
}

// Valid reports whether c points at an entry
func (c Cursor[K, V]) Valid() bool {
	return c.t != nil && c.slot != nilSlot
}

// Stale reports whether the table was structurally modified after c was
// taken
func (c Cursor[K, V]) Stale() bool {
	return c.t != nil && c.version != c.t.version
}

// Key returns a copy of the entry's key
func (c Cursor[K, V]) Key() K {
	return c.t.records.at(c.slot).key
}

// Value returns the entry's value
func (c Cursor[K, V]) Value() V {
	return c.t.records.at(c.slot).value
}

// SetValue replaces the entry's value. Keys cannot be changed in place.
func (c Cursor[K, V]) SetValue(v V) {
	c.t.records.at(c.slot).value = v
}

// Next returns a cursor on the following entry, or End()
func (c Cursor[K, V]) Next() Cursor[K, V] {
	return Cursor[K, V]{t: c.t, slot: c.t.records.at(c.slot).next, version: c.version}
}

// All yields every entry in traversal order. Values may be updated during
// the iteration, but entries must not be inserted or erased.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for slot := t.records.head; slot != nilSlot; slot = t.records.at(slot).next {
			r := t.records.at(slot)
			if !yield(r.key, r.value) {
				return
			}
		}
	}
}

// Keys yields every key in traversal order
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value in traversal order
func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Pairs returns the entries in traversal order
func (t *Table[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, t.records.size)
	for k, v := range t.All() {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return pairs
}
