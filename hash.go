package chmap

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/pierrec/xxHash/xxHash64"
	"github.com/zeebo/xxh3"
)

// HashFunc maps a key onto a 64-bit hash value.
// Equal keys must map onto equal hash values.
type HashFunc func(key []byte) uint64

// CompareFunc establishes a total order over keys returning
// a negative value if a is smaller than b, a positive value
// if a is greater than b and 0 if both are equal.
type CompareFunc func(a, b []byte) int

// FormatFunc renders an entry for dumps.
type FormatFunc func(key, value []byte) string

// HashXXH3 hashes key using the default (unseeded) XXH3 hash.
func HashXXH3(key []byte) uint64 { return xxh3.Hash(key) }

// HashXXH3Seeded returns a HashFunc hashing with XXH3 and the given seed.
func HashXXH3Seeded(seed uint64) HashFunc {
	return func(key []byte) uint64 { return xxh3.HashSeed(key, seed) }
}

// HashXXH64 returns a HashFunc hashing with XXH64 and the given seed.
func HashXXH64(seed uint64) HashFunc {
	return func(key []byte) uint64 { return xxHash64.Checksum(key, seed) }
}

// HashUint64 interprets key as a big-endian unsigned 64-bit integer.
// Keys shorter than 8 bytes are zero-extended,
// for longer keys only the first 8 bytes are read.
// Useful for tables keyed by fixed-size counters and identifiers.
func HashUint64(key []byte) uint64 {
	if len(key) < 8 {
		var b [8]byte
		copy(b[8-len(key):], key)
		return binary.BigEndian.Uint64(b[:])
	}
	return binary.BigEndian.Uint64(key)
}

// CompareBytes compares keys lexicographically byte-wise.
func CompareBytes(a, b []byte) int { return bytes.Compare(a, b) }

// FormatQuoted renders an entry as "key":"value"
// with both parts Go-quoted.
func FormatQuoted(key, value []byte) string {
	return fmt.Sprintf("%q:%q", key, value)
}

// FormatHex renders an entry as key=value
// with both parts hex-encoded.
func FormatHex(key, value []byte) string {
	return hex.EncodeToString(key) + "=" + hex.EncodeToString(value)
}
