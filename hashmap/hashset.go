package hashmap

import (
	"golang.org/x/exp/constraints"

	"github.com/stonegate/coreds/hashfunc"
)

// HashSet - Set of unique keys built on HashMap with empty struct values.
// It shares the map's chaining, resizing and deterministic iteration behavior.
type HashSet[K any] struct {
	m *HashMap[K, struct{}]
}

// NewSet - Returns a new HashSet with default initial capacity and max load factor.
//   - hashAlgorithm supplies hashing and key equality
//
// It returns:
//   - hashSet is a pointer to a HashSet struct
//   - err is a normal Go error which should be nil if everything went ok
func NewSet[K any](hashAlgorithm hashfunc.HashAlgorithm[K]) (hashSet *HashSet[K], err error) {
	m, err := New[K, struct{}](hashAlgorithm)
	if err != nil {
		return
	}

	hashSet = &HashSet[K]{m: m}
	return
}

// NewStringSet - Returns a new HashSet with string keys using the internal
// string hash algorithm and default settings.
func NewStringSet() *HashSet[string] {
	return &HashSet[string]{m: NewString[struct{}]()}
}

// NewIntegerSet - Returns a new HashSet with integer keys using the internal
// integer hash algorithm and default settings.
func NewIntegerSet[K constraints.Integer]() *HashSet[K] {
	return &HashSet[K]{m: NewInteger[K, struct{}]()}
}

// Add - Adds the key to the set.
//
// It returns:
//   - added is true if the key was not already present
func (S *HashSet[K]) Add(key K) (added bool) {
	_, existed := S.m.Put(key, struct{}{})
	return !existed
}

// Contains - Returns true if the key is present
func (S *HashSet[K]) Contains(key K) bool {
	return S.m.ContainsKey(key)
}

// Remove - Removes the key from the set.
//
// It returns:
//   - removed is true if the key was present
func (S *HashSet[K]) Remove(key K) (removed bool) {
	_, removed = S.m.Remove(key)
	return
}

// Size - Returns the number of keys stored
func (S *HashSet[K]) Size() int {
	return S.m.Size()
}

// ForEach - Visits every key in the same deterministic order as the underlying map
//   - fn is called once per key, returning false stops the walk
func (S *HashSet[K]) ForEach(fn func(key K) bool) {
	S.m.ForEach(func(key K, _ struct{}) bool {
		return fn(key)
	})
}

// Keys - Returns all keys in the same deterministic order as ForEach
func (S *HashSet[K]) Keys() []K {
	return S.m.Keys()
}
