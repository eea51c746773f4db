package chash

import (
	"crypto/rand"
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

// Hasher is the hashing policy of a table. Hash must return the same value
// for equal keys; the quality of the distribution only affects speed.
type Hasher[K any] interface {
	Hash(key K) uint64
}

// HasherFunc adapts a plain function to a Hasher
type HasherFunc[K any] func(key K) uint64

// Hash calls f(key)
func (f HasherFunc[K]) Hash(key K) uint64 {
	return f(key)
}

// ComparableHasher hashes any comparable key with hash/maphash. It is the
// default policy of a table. The seed is fixed when the hasher is created,
// so copies of a hasher agree with each other.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHasher returns a ComparableHasher with a fresh random seed
func NewComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: maphash.MakeSeed()}
}

func (h ComparableHasher[K]) Hash(key K) uint64 {
	return maphash.Comparable(h.seed, key)
}

// XXHasher hashes string keys with xxHash64. It is unseeded, so the same
// key hashes identically across processes.
type XXHasher[K ~string] struct{}

func (XXHasher[K]) Hash(key K) uint64 {
	return xxhash.Sum64String(string(key))
}

// SipHasher hashes string keys with SipHash-2-4 under a 128-bit key.
// Use it when keys come from untrusted input.
type SipHasher[K ~string] struct {
	k0, k1 uint64
}

// NewSipHasher returns a SipHasher keyed with key
func NewSipHasher[K ~string](key [16]byte) SipHasher[K] {
	return SipHasher[K]{
		k0: binary.LittleEndian.Uint64(key[0:8]),
		k1: binary.LittleEndian.Uint64(key[8:16]),
	}
}

// NewRandomSipHasher returns a SipHasher with a key read from crypto/rand
func NewRandomSipHasher[K ~string]() (SipHasher[K], error) {
	var key [16]byte
	if _, err := rand.Read(key[:]); err != nil {
		return SipHasher[K]{}, err
	}
	return NewSipHasher[K](key), nil
}

func (h SipHasher[K]) Hash(key K) uint64 {
	return siphash.Hash(h.k0, h.k1, []byte(key))
}

// UUIDHasher hashes UUID keys with xxHash64 over their 16 bytes
type UUIDHasher struct{}

func (UUIDHasher) Hash(key uuid.UUID) uint64 {
	return xxhash.Sum64(key[:])
}

// IntHasher hashes integer keys with the splitmix64 finalizer
type IntHasher[K constraints.Integer] struct{}

func (IntHasher[K]) Hash(key K) uint64 {
	x := uint64(key)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
