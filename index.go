package chash

import "go.uber.org/zap"

// index is the bucket index: one chain head per bucket. Chains are linked
// through record.chain and hold no ownership of the records.
type index struct {
	heads []int
}

func newIndex(buckets int) index {
	if buckets < 1 {
		buckets = 1
	}
	heads := make([]int, buckets)
	for i := range heads {
		heads[i] = nilSlot
	}
	return index{heads: heads}
}

func (ix *index) buckets() int {
	return len(ix.heads)
}

func (ix *index) empty() {
	for i := range ix.heads {
		ix.heads[i] = nilSlot
	}
}

// bucketOf returns hash(key) mod B
func (t *Table[K, V]) bucketOf(key K) int {
	return int(t.hasher.Hash(key) % uint64(t.buckets.buckets()))
}

// lookup scans the chain of key's bucket and returns the matching slot
func (t *Table[K, V]) lookup(key K) int {
	for slot := t.buckets.heads[t.bucketOf(key)]; slot != nilSlot; {
		r := t.records.at(slot)
		if r.key == key {
			return slot
		}
		slot = r.chain
	}
	return nilSlot
}

// link puts slot at the front of bucket b's chain
func (t *Table[K, V]) link(slot, b int) {
	t.records.at(slot).chain = t.buckets.heads[b]
	t.buckets.heads[b] = slot
}

// unlink removes slot from bucket b's chain
func (t *Table[K, V]) unlink(slot, b int) {
	prev := nilSlot
	for cur := t.buckets.heads[b]; cur != nilSlot; cur = t.records.at(cur).chain {
		if cur != slot {
			prev = cur
			continue
		}
		next := t.records.at(cur).chain
		if prev == nilSlot {
			t.buckets.heads[b] = next
		} else {
			t.records.at(prev).chain = next
		}
		t.records.at(cur).chain = nilSlot
		return
	}
}

// rebuild replaces the bucket index with one of the given size and rehashes
// every record into it. Records are linked from the back of the store so
// each chain ends up in record-store order.
func (t *Table[K, V]) rebuild(buckets int) {
	t.buckets = newIndex(buckets)
	for slot := t.records.tail; slot != nilSlot; slot = t.records.at(slot).prev {
		t.link(slot, t.bucketOf(t.records.at(slot).key))
	}
}

// growIfNeeded doubles the bucket count once size exceeds it
func (t *Table[K, V]) growIfNeeded() {
	from := t.buckets.buckets()
	if t.records.size <= from {
		return
	}
	to := from * resizeRatio
	t.rebuild(to)
	t.version++
	t.log.Debug("grew bucket index",
		zap.Int("size", t.records.size),
		zap.Int("from", from),
		zap.Int("to", to))
}
