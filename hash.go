package exthash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
)

// Hasher computes a 64-bit hash of a key. The table indexes its
// directory with the low GlobalDepth bits of the result, so the low
// bits must be well distributed. A Hasher must be deterministic for
// the lifetime of the table that uses it.
type Hasher[K any] func(K) uint64

// StringHash hashes a string key with xxHash.
func StringHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Uint64Hash hashes a uint64 key with xxHash over its big-endian
// encoding.
func Uint64Hash(key uint64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], key)
	return xxhash.Sum64(buf[:])
}

// IntHash hashes an int key with xxHash over its big-endian encoding.
func IntHash(key int) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key))
	return xxhash.Sum64(buf[:])
}

// SeededStringHash returns a keyed SipHash-2-4 string hasher. Use it
// when keys come from untrusted input and a per-table secret should
// keep collision patterns unpredictable.
func SeededStringHash(k0, k1 uint64) Hasher[string] {
	return func(key string) uint64 {
		return siphash.Hash(k0, k1, []byte(key))
	}
}
