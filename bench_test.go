package exthash_test

import (
	"strconv"
	"testing"

	"github.com/theflywheel/exthash"
)

func BenchmarkInsert(b *testing.B) {
	ht, err := exthash.New[uint64, uint64](16, exthash.Uint64Hash)
	if err != nil {
		b.Fatalf("Failed to create table: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ht.Insert(uint64(i), uint64(i)); err != nil {
			b.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}
}

func BenchmarkFind(b *testing.B) {
	const numKeys = 1 << 16

	ht, err := exthash.New[uint64, uint64](16, exthash.Uint64Hash)
	if err != nil {
		b.Fatalf("Failed to create table: %v", err)
	}
	for i := uint64(0); i < numKeys; i++ {
		if err := ht.Insert(i, i*2); err != nil {
			b.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := uint64(i) % numKeys
		if v, ok := ht.Find(k); !ok || v != k*2 {
			b.Fatalf("Find(%d) = (%d, %v), want (%d, true)", k, v, ok, k*2)
		}
	}
}

func BenchmarkInsertStringKeys(b *testing.B) {
	ht, err := exthash.New[string, int](16, exthash.StringHash)
	if err != nil {
		b.Fatalf("Failed to create table: %v", err)
	}
	keys := make([]string, 1<<16)
	for i := range keys {
		keys[i] = "bench-key-" + strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ht.Insert(keys[i%len(keys)], i); err != nil {
			b.Fatalf("Failed to insert: %v", err)
		}
	}
}
