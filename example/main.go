package main

import (
	"errors"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/theflywheel/chash"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Integer keys, bucket growth reported through the logger
	t := chash.New[int, int](
		chash.WithHasher[int](chash.IntHasher[int]{}),
		chash.WithLogger(logger),
	)

	fmt.Println("Table created successfully")

	// Insert some data
	for i := 0; i < 10; i++ {
		t.Insert(i, i*100)
	}

	fmt.Printf("Inserted %d key-value pairs, %d buckets\n", t.Len(), t.Capacity())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		value, found := t.Lookup(i)
		if found {
			fmt.Printf("Key %d => Value %d\n", i, value)
		} else {
			fmt.Printf("Key %d not found\n", i)
		}
	}

	// Insert never overwrites; update through Index instead
	t.Insert(2, 999)
	fmt.Printf("After Insert, key 2 => Value %d\n", *t.Index(2))

	*t.Index(2) = 999
	fmt.Printf("After Index, key 2 => Value %d\n", *t.Index(2))

	// Erase and observe the failing read
	t.Erase(4)
	if _, err := t.At(4); errors.Is(err, chash.ErrKeyNotFound) {
		fmt.Printf("Key 4 erased: %v\n", err)
	}

	// Copies are independent
	snapshot := t.Clone()
	t.Clear()
	fmt.Printf("Cleared table has %d entries and %d buckets, snapshot has %d entries\n",
		t.Len(), t.Capacity(), snapshot.Len())

	if err := report(snapshot, 7); err != nil {
		log.Fatalf("Report failed: %v", err)
	}

	fmt.Println("Example completed successfully")
}

func report(t *chash.Table[int, int], key int) error {
	v, err := t.At(key)
	if err != nil {
		return fmt.Errorf("reading key %d: %w", key, err)
	}
	fmt.Printf("Snapshot key %d => Value %d\n", key, v)
	return nil
}
