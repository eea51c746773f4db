/*
Package chash provides a generic hash table with separate chaining.

Table maps unique keys to values. It keeps its entries in a record store
whose slots never move once written, and indexes them through an array of
bucket chains that is rebuilt whenever the table grows.

Basic usage:

	import "github.com/theflywheel/chash"

	t := chash.New[string, int](chash.WithHasher[string](chash.XXHasher[string]{}))

	t.Insert("a", 1)
	t.Insert("a", 3) // no-op, "a" keeps 1
	*t.Index("b") += 2

	v, err := t.At("a")
	if errors.Is(err, chash.ErrKeyNotFound) {
		// ...
	}

	for k, v := range t.All() {
		fmt.Println(k, v)
	}

Features:

  - Generic over comparable keys and any value type
  - Pluggable hashing policies: maphash (default), xxHash, SipHash,
    UUID and integer hashers
  - Insert never overwrites: the first value stored under a key wins
  - Get-or-create access through Index, failing access through At
  - Deep copies with Clone and copy-and-swap assignment with Assign
  - Optional zap logging of bucket index growth

Implementation Details:

The record store is an arena of fixed-size pages. Live records form a
doubly linked list in traversal order, newest first; erased slots go on a
free list and are reused. Each bucket of the index holds the head of a
singly linked chain threaded through the records.

The table starts with one bucket. After an insertion that makes the number
of entries exceed the number of buckets, the bucket count doubles and every
chain is rebuilt from the record store, so that each chain lists its
entries in traversal order. Erase and Clear never shrink the index.

Cursors returned by Find and Begin are invalidated by growth, Erase, Clear
and Assign. Cursor.Stale reports invalidation; a table is not safe for
concurrent use.
*/
package chash
