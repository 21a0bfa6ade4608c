package exthash

import (
	"errors"
	"fmt"
	"sync"
)

// maxDepth is the widest usable directory index; Hasher produces
// 64-bit values, so no split can make more bits significant.
const maxDepth = 64

var (
	// ErrDepthExhausted is returned by Insert when the addressed
	// bucket can no longer be split: the colliding keys agree on every
	// hash bit, so no amount of directory doubling would separate them.
	ErrDepthExhausted = errors.New("exthash: hash depth exhausted, keys collide on all hash bits")

	// ErrIndexOutOfRange is returned by LocalDepth for a directory
	// index outside [0, 2^GlobalDepth).
	ErrIndexOutOfRange = errors.New("exthash: directory index out of range")
)

// ExtendibleHashTable maps keys to values using extendible hashing.
// A directory of bucket pointers is indexed by the low GlobalDepth
// bits of a key's hash; several directory slots may point at the same
// bucket. When a bucket fills up it is split in two on one additional
// hash bit instead of the whole table being rehashed, and the
// directory doubles only when the full bucket's local depth has
// already caught up with the global depth.
//
// All methods are safe for concurrent use. A single mutex serializes
// every operation, including lookups; splits rewrite shared directory
// state, so there is no finer-grained locking.
type ExtendibleHashTable[K comparable, V any] struct {
	mu          sync.Mutex
	globalDepth int
	numBuckets  int
	capacity    int
	hash        Hasher[K]
	dir         []*bucket[K, V]
}

// New creates a table whose buckets hold up to bucketCapacity entries
// each, hashing keys with hash. It starts with a single bucket at
// depth zero.
func New[K comparable, V any](bucketCapacity int, hash Hasher[K]) (*ExtendibleHashTable[K, V], error) {
	if bucketCapacity < 1 {
		return nil, fmt.Errorf("exthash: bucket capacity must be positive, got %d", bucketCapacity)
	}
	if hash == nil {
		return nil, errors.New("exthash: nil hasher")
	}
	return &ExtendibleHashTable[K, V]{
		capacity:   bucketCapacity,
		hash:       hash,
		numBuckets: 1,
		dir:        []*bucket[K, V]{newBucket[K, V](bucketCapacity, 0)},
	}, nil
}

// indexOf returns the directory slot key hashes to under the current
// global depth. The mask widens as the directory grows, so the index
// must be recomputed after every split.
func (t *ExtendibleHashTable[K, V]) indexOf(key K) int {
	mask := uint64(1)<<uint(t.globalDepth) - 1
	return int(t.hash(key) & mask)
}

// Find returns the value stored under key, if any.
func (t *ExtendibleHashTable[K, V]) Find(key K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.dir[t.indexOf(key)].find(key)
}

// Remove deletes the entry for key and reports whether it was
// present. Buckets are never merged, so removing entries shrinks
// neither the directory nor the bucket count.
func (t *ExtendibleHashTable[K, V]) Remove(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.dir[t.indexOf(key)].remove(key)
}

// Insert stores value under key, updating in place if key is already
// present. When the addressed bucket is full the table splits it,
// doubling the directory as needed, and retries until the insert
// lands. A single split may not separate keys that still agree on
// every bit considered so far, so several rounds can be required.
//
// Insert fails only with ErrDepthExhausted, when more than
// bucketCapacity keys share one full 64-bit hash value. The key is
// not stored in that case; splits already performed are kept, and
// every previously stored entry remains reachable.
func (t *ExtendibleHashTable[K, V]) Insert(key K, value V) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for !t.dir[t.indexOf(key)].insert(key, value) {
		if err := t.splitBucket(key); err != nil {
			return err
		}
	}
	return nil
}

// GlobalDepth returns the number of low hash bits currently used to
// index the directory. The directory holds 2^GlobalDepth slots.
func (t *ExtendibleHashTable[K, V]) GlobalDepth() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.globalDepth
}

// LocalDepth returns the local depth of the bucket that directory
// slot dirIndex points at.
func (t *ExtendibleHashTable[K, V]) LocalDepth(dirIndex int) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if dirIndex < 0 || dirIndex >= len(t.dir) {
		return 0, fmt.Errorf("%w: %d with directory size %d", ErrIndexOutOfRange, dirIndex, len(t.dir))
	}
	return t.dir[dirIndex].localDepth, nil
}

// BucketCount returns the number of distinct buckets. It only ever
// grows; see Remove.
func (t *ExtendibleHashTable[K, V]) BucketCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.numBuckets
}

// splitBucket replaces the bucket addressed by key with two fresh
// buckets partitioned on one additional hash bit, growing the
// directory first if that bucket's local depth has caught up with the
// global depth.
func (t *ExtendibleHashTable[K, V]) splitBucket(key K) error {
	target := t.dir[t.indexOf(key)]

	if target.localDepth == maxDepth || t.unsplittable(target, key) {
		return ErrDepthExhausted
	}

	if target.localDepth == t.globalDepth {
		t.globalDepth++
		t.growDirectory()
	}

	target.localDepth++
	lo := newBucket[K, V](t.capacity, target.localDepth)
	hi := newBucket[K, V](t.capacity, target.localDepth)

	// Every slot aliasing target agrees on the low localDepth-1 bits,
	// so the newly significant bit alone decides the partition.
	bit := uint64(1) << uint(target.localDepth-1)
	for i := range t.dir {
		if t.dir[i] == target {
			if uint64(i)&bit == 0 {
				t.dir[i] = lo
			} else {
				t.dir[i] = hi
			}
		}
	}
	t.numBuckets++

	// The directory now routes around the old bucket, so re-inserting
	// through it lands every old entry in lo or hi. Neither can
	// overflow: target held at most capacity entries.
	for i := range target.entries {
		e := &target.entries[i]
		t.dir[t.indexOf(e.key)].insert(e.key, e.value)
	}
	return nil
}

// growDirectory doubles the directory by aliasing the new upper half
// onto the lower: slot i+old points at the same bucket as slot i.
// Bucket contents and local depths are untouched.
func (t *ExtendibleHashTable[K, V]) growDirectory() {
	old := len(t.dir)
	for i := 0; i < old; i++ {
		t.dir = append(t.dir, t.dir[i])
	}
}

// unsplittable reports whether every entry in the full bucket hashes
// identically to key across all 64 bits. No split at any depth can
// separate such a cluster, so Insert must fail before the directory
// starts doubling without bound.
func (t *ExtendibleHashTable[K, V]) unsplittable(b *bucket[K, V], key K) bool {
	h := t.hash(key)
	for i := range b.entries {
		if t.hash(b.entries[i].key) != h {
			return false
		}
	}
	return true
}
