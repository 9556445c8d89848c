package hash

import (
	"hash/crc32"

	"golang.org/x/exp/constraints"
)

// StringHashAlgorithm - The internally used hash algorithm for string keys.
// It is implemented using crc32.ChecksumIEEE over the raw bytes of the key.
type StringHashAlgorithm struct{}

// NewStringHashAlgorithm - Returns a new StringHashAlgorithm instance
func NewStringHashAlgorithm() StringHashAlgorithm {
	return StringHashAlgorithm{}
}

// Hash - Given key it generates a 64 bit hash value
func (S StringHashAlgorithm) Hash(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}

// Equal - Returns true if a and b are the same string
func (S StringHashAlgorithm) Equal(a, b string) bool {
	return a == b
}

// BytesHashAlgorithm - The internally used hash algorithm for byte slice keys.
// It is implemented using crc32.ChecksumIEEE over the key.
type BytesHashAlgorithm struct{}

// NewBytesHashAlgorithm - Returns a new BytesHashAlgorithm instance
func NewBytesHashAlgorithm() BytesHashAlgorithm {
	return BytesHashAlgorithm{}
}

// Hash - Given key it generates a 64 bit hash value
func (B BytesHashAlgorithm) Hash(key []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(key))
}

// Equal - Returns true if a and b are equal both in size and contents
func (B BytesHashAlgorithm) Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// IntegerHashAlgorithm - The internally used hash algorithm for integer keys
// of any width and signedness. It applies the splitmix64 finalizer to spread
// sequential keys over the full 64 bit range.
type IntegerHashAlgorithm[K constraints.Integer] struct{}

// NewIntegerHashAlgorithm - Returns a new IntegerHashAlgorithm instance
func NewIntegerHashAlgorithm[K constraints.Integer]() IntegerHashAlgorithm[K] {
	return IntegerHashAlgorithm[K]{}
}

// Hash - Given key it generates a 64 bit hash value
func (I IntegerHashAlgorithm[K]) Hash(key K) uint64 {
	h := uint64(key)
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31

	return h
}

// Equal - Returns true if a and b are the same integer
func (I IntegerHashAlgorithm[K]) Equal(a, b K) bool {
	return a == b
}
