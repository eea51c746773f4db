package chash

const (
	pageBits = 7
	pageSize = 1 << pageBits
	pageMask = pageSize - 1

	// nilSlot terminates record lists, chains and the free list.
	nilSlot = -1
)

// record is one slot of the record store. Live records are linked in
// record-store order through prev/next; chain links the record into its
// bucket. Free records reuse next as the free-list link.
type record[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
	chain int
	live  bool
}

// store owns every entry of a table. Slots live in fixed-size pages that
// are never reallocated, so a slot index and the address of its record
// stay put until the record is removed.
type store[K comparable, V any] struct {
	pages [][]record[K, V]
	used  int // slots handed out so far, live or free
	free  int
	head  int
	tail  int
	size  int
}

func newStore[K comparable, V any]() store[K, V] {
	return store[K, V]{free: nilSlot, head: nilSlot, tail: nilSlot}
}

func (s *store[K, V]) at(slot int) *record[K, V] {
	return &s.pages[slot>>pageBits][slot&pageMask]
}

// alloc takes a slot from the free list, or from the end of the arena
func (s *store[K, V]) alloc(key K, value V) int {
	slot := s.free
	if slot != nilSlot {
		s.free = s.at(slot).next
	} else {
		if s.used == len(s.pages)*pageSize {
			s.pages = append(s.pages, make([]record[K, V], pageSize))
		}
		slot = s.used
		s.used++
	}

	*s.at(slot) = record[K, V]{key: key, value: value, prev: nilSlot, next: nilSlot, chain: nilSlot, live: true}
	s.size++
	return slot
}

// pushFront stores a new record ahead of every other record
func (s *store[K, V]) pushFront(key K, value V) int {
	slot := s.alloc(key, value)
	r := s.at(slot)
	r.next = s.head
	if s.head != nilSlot {
		s.at(s.head).prev = slot
	} else {
		s.tail = slot
	}
	s.head = slot
	return slot
}

// pushBack stores a new record behind every other record
func (s *store[K, V]) pushBack(key K, value V) int {
	slot := s.alloc(key, value)
	r := s.at(slot)
	r.prev = s.tail
	if s.tail != nilSlot {
		s.at(s.tail).next = slot
	} else {
		s.head = slot
	}
	s.tail = slot
	return slot
}

// remove unlinks a live record and returns its slot to the free list.
// Other slots are not touched.
func (s *store[K, V]) remove(slot int) {
	r := s.at(slot)
	if r.prev != nilSlot {
		s.at(r.prev).next = r.next
	} else {
		s.head = r.next
	}
	if r.next != nilSlot {
		s.at(r.next).prev = r.prev
	} else {
		s.tail = r.prev
	}

	*r = record[K, V]{prev: nilSlot, next: s.free, chain: nilSlot}
	s.free = slot
	s.size--
}

// reset releases every record and the pages holding them
func (s *store[K, V]) reset() {
	*s = newStore[K, V]()
}
