package exthash

// entry is a single key/value pair stored in a bucket.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket holds up to capacity entries whose hashes agree on the low
// localDepth bits. Buckets are created at table construction and by
// splits; the table is the only writer of localDepth.
type bucket[K comparable, V any] struct {
	localDepth int
	capacity   int
	entries    []entry[K, V]
}

func newBucket[K comparable, V any](capacity, localDepth int) *bucket[K, V] {
	return &bucket[K, V]{
		localDepth: localDepth,
		capacity:   capacity,
		entries:    make([]entry[K, V], 0, capacity),
	}
}

// find returns the value stored under key, if any.
func (b *bucket[K, V]) find(key K) (V, bool) {
	for i := range b.entries {
		if b.entries[i].key == key {
			return b.entries[i].value, true
		}
	}
	var zero V
	return zero, false
}

// remove deletes the entry for key and reports whether it was present.
func (b *bucket[K, V]) remove(key K) bool {
	for i := range b.entries {
		if b.entries[i].key == key {
			last := len(b.entries) - 1
			b.entries[i] = b.entries[last]
			b.entries[last] = entry[K, V]{}
			b.entries = b.entries[:last]
			return true
		}
	}
	return false
}

// insert stores value under key. An existing key is updated in place
// and never counts against capacity. It reports false only when the
// key is new and the bucket is full; the caller must split and retry.
func (b *bucket[K, V]) insert(key K, value V) bool {
	for i := range b.entries {
		if b.entries[i].key == key {
			b.entries[i].value = value
			return true
		}
	}
	if len(b.entries) == b.capacity {
		return false
	}
	b.entries = append(b.entries, entry[K, V]{key: key, value: value})
	return true
}
