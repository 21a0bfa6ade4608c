/*
Package exthash provides an in-memory generic hash table based on extendible hashing.

ExtendibleHashTable maps keys to values through a directory of bucket
pointers indexed by the low bits of a key's hash. When a bucket fills
up, only that bucket is split; the table never rehashes all of its
entries at once. The directory itself doubles in length only when a
split needs one more addressing bit than the directory currently has.

Basic usage:

	import "github.com/theflywheel/exthash"

	// Create a table with up to 8 entries per bucket
	ht, err := exthash.New[string, int](8, exthash.StringHash)
	if err != nil {
		log.Fatal(err)
	}

	// Insert data
	if err := ht.Insert("answer", 42); err != nil {
		log.Fatal(err)
	}

	// Retrieve data
	v, ok := ht.Find("answer")
	if ok {
		fmt.Println("Value:", v)
	}

	// Remove data
	removed := ht.Remove("answer")
	fmt.Println("Removed:", removed)

Features:

  - Generic keys and values; any comparable key type with a Hasher
  - Incremental growth: a full bucket splits on one extra hash bit
  - Directory doubles in place, no full-table rehash ever happens
  - Thread-safe: one exclusive lock serializes all operations
  - Ready-made hashers backed by xxHash, plus a keyed SipHash variant
  - Defined ErrDepthExhausted failure for fully hash-identical keys

Implementation Details:

The directory always holds exactly 2^GlobalDepth slots. Each bucket
carries a local depth, the number of low hash bits shared by every
slot that points at it; a bucket with local depth d at global depth g
is referenced by exactly 2^(g-d) slots. Splitting a full bucket
increments its local depth, creates two replacement buckets, rewires
the aliased slots by the newly significant bit, and redistributes the
entries through the updated directory. Inserting retries after each
split until the addressed bucket accepts the entry.

Buckets are never merged: removals leave the directory length and
bucket count unchanged for the lifetime of the table.
*/
package exthash
