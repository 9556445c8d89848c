package hashfunc

// HashAlgorithm - Interface that permits an implementation using the hash-based
// containers to supply a custom hash algorithm suited for its particular
// distribution of keys.
//
// The implementation must keep equality consistent with hashing:
// Equal(a, b) implies Hash(a) == Hash(b). Violating that contract is a caller
// error and leads to undefined lookup behavior, it is not detected internally.
type HashAlgorithm[K any] interface {
	// Hash - Given key it generates a 64 bit hash value.
	// The containers reduce the value to a bucket number internally, so the
	// full 64 bit range may be used.
	Hash(key K) uint64
	// Equal - Reports whether a and b denote the same key.
	// Keys are always compared through this function, never by hash value alone.
	Equal(a, b K) bool
}
