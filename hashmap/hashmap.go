package hashmap

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/stonegate/coreds/hashfunc"
	"github.com/stonegate/coreds/internal/conf"
	"github.com/stonegate/coreds/internal/hash"
	"github.com/stonegate/coreds/internal/utils"
)

// entry - One key/value pair stored in a bucket chain
type entry[K any, V any] struct {
	key   K
	value V
}

// HashMap - Associative container using separate chaining for collision
// resolution. Each bucket holds an ordered chain of entries; collisions are
// resolved by walking the chain comparing keys through the hash algorithm's
// Equal function, never by hash value alone.
//
// The bucket count is always a power of two which makes bucket selection a
// simple mask over the hash value. When the load factor (size / capacity)
// exceeds the configured threshold after an insert, the bucket slice grows by
// the growth factor, repeatedly if one step is not enough to get back under
// the threshold, and every entry is rehashed into the new buckets. That is
// the one O(n) operation in an otherwise amortized O(1) container. The table
// never shrinks.
//
// Iteration (ForEach, Keys, Stat) runs over buckets in index order and over
// each chain in insertion order, so two maps built by the same sequence of
// operations iterate identically.
type HashMap[K any, V any] struct {
	buckets       [][]entry[K, V]
	size          int
	resizes       int
	maxLoadFactor float64
	hashAlgorithm hashfunc.HashAlgorithm[K]
}

// New - Returns a new HashMap with default initial capacity and max load factor.
//   - hashAlgorithm supplies hashing and key equality, it must keep equality consistent with hashing (Equal(a,b) implies Hash(a) == Hash(b))
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is a normal Go error which should be nil if everything went ok
func New[K any, V any](hashAlgorithm hashfunc.HashAlgorithm[K]) (hashMap *HashMap[K, V], err error) {
	return NewWithConfig[K, V](hashAlgorithm, conf.DefaultInitialCapacity, conf.DefaultMaxLoadFactor)
}

// NewWithConfig - Returns a new HashMap with explicit capacity and load factor settings.
//   - hashAlgorithm supplies hashing and key equality
//   - initialCapacity is the requested number of buckets, it is rounded up to the nearest power of two
//   - maxLoadFactor is the size/capacity threshold that triggers a resize after an insert, must be between 0 and 1 (exclusive)
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is a normal Go error which should be nil if everything went ok
func NewWithConfig[K any, V any](
	hashAlgorithm hashfunc.HashAlgorithm[K],
	initialCapacity int,
	maxLoadFactor float64,
) (
	hashMap *HashMap[K, V],
	err error,
) {

	// Check if a hash algorithm was given
	if hashAlgorithm == nil {
		err = fmt.Errorf("hashAlgorithm can not be nil, it determines bucket selection and key equality")
		return
	}

	// Check if initialCapacity is valid
	if initialCapacity <= 0 {
		err = fmt.Errorf("initialCapacity must be a positive value higher than 0 (zero)")
		return
	}

	// Check if maxLoadFactor is valid
	if maxLoadFactor <= 0 || maxLoadFactor >= 1 {
		err = fmt.Errorf("maxLoadFactor must be a value between 0 and 1 (exclusive)")
		return
	}

	hashMap = newHashMap[K, V](hashAlgorithm, initialCapacity, maxLoadFactor)

	return
}

// NewString - Returns a new HashMap with string keys using the internal string
// hash algorithm and default settings.
func NewString[V any]() *HashMap[string, V] {
	return newHashMap[string, V](hash.NewStringHashAlgorithm(), conf.DefaultInitialCapacity, conf.DefaultMaxLoadFactor)
}

// NewInteger - Returns a new HashMap with integer keys of any width and
// signedness using the internal integer hash algorithm and default settings.
func NewInteger[K constraints.Integer, V any]() *HashMap[K, V] {
	return newHashMap[K, V](hash.NewIntegerHashAlgorithm[K](), conf.DefaultInitialCapacity, conf.DefaultMaxLoadFactor)
}

// NewBytes - Returns a new HashMap with byte slice keys using the internal
// bytes hash algorithm and default settings.
func NewBytes[V any]() *HashMap[[]byte, V] {
	return newHashMap[[]byte, V](hash.NewBytesHashAlgorithm(), conf.DefaultInitialCapacity, conf.DefaultMaxLoadFactor)
}

// newHashMap - Allocates the bucket slice, the capacity is rounded up to the
// nearest power of two and never below the configured minimum
func newHashMap[K any, V any](hashAlgorithm hashfunc.HashAlgorithm[K], initialCapacity int, maxLoadFactor float64) *HashMap[K, V] {
	capacity := utils.RoundUp2(initialCapacity)
	if capacity < conf.MinInitialCapacity {
		capacity = conf.MinInitialCapacity
	}

	return &HashMap[K, V]{
		buckets:       make([][]entry[K, V], capacity),
		maxLoadFactor: maxLoadFactor,
		hashAlgorithm: hashAlgorithm,
	}
}

// Put - Inserts a key/value pair, or overwrites the value if the key is
// already present. May trigger a resize, which leaves the map fully consistent
// before Put returns.
//   - key is the identifier of the entry
//   - value is the data to store under the key
//
// It returns:
//   - oldValue is the value that was overwritten, or the zero value if the key was not present
//   - existed is true if the key was already present
func (M *HashMap[K, V]) Put(key K, value V) (oldValue V, existed bool) {
	bucketNo := M.bucketNo(key)

	// Try to find an existing entry with matching key
	for i := range M.buckets[bucketNo] {
		if M.hashAlgorithm.Equal(key, M.buckets[bucketNo][i].key) {
			oldValue = M.buckets[bucketNo][i].value
			M.buckets[bucketNo][i].value = value
			existed = true
			return
		}
	}

	M.buckets[bucketNo] = append(M.buckets[bucketNo], entry[K, V]{key: key, value: value})
	M.size++

	// One doubling is not always enough for small load factor settings
	for float64(M.size) > float64(len(M.buckets))*M.maxLoadFactor {
		M.grow()
	}

	return
}

// Get - Gets the value stored under the given key.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the stored value if found, otherwise the zero value
//   - found is true if the key is present
func (M *HashMap[K, V]) Get(key K) (value V, found bool) {
	bucketNo := M.bucketNo(key)

	for i := range M.buckets[bucketNo] {
		if M.hashAlgorithm.Equal(key, M.buckets[bucketNo][i].key) {
			value = M.buckets[bucketNo][i].value
			found = true
			return
		}
	}

	return
}

// Remove - Removes the entry stored under the given key, if present.
// The remaining chain keeps its insertion order.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the removed value if found, otherwise the zero value
//   - found is true if the key was present
func (M *HashMap[K, V]) Remove(key K) (value V, found bool) {
	bucketNo := M.bucketNo(key)
	bucket := M.buckets[bucketNo]

	for i := range bucket {
		if M.hashAlgorithm.Equal(key, bucket[i].key) {
			value = bucket[i].value
			found = true

			// Shift the tail down and zero the vacated slot so the backing
			// array retains no key/value references
			copy(bucket[i:], bucket[i+1:])
			var zero entry[K, V]
			bucket[len(bucket)-1] = zero
			M.buckets[bucketNo] = bucket[:len(bucket)-1]
			M.size--
			return
		}
	}

	return
}

// ContainsKey - Returns true if the given key is present
func (M *HashMap[K, V]) ContainsKey(key K) bool {
	_, found := M.Get(key)
	return found
}

// Size - Returns the number of entries stored
func (M *HashMap[K, V]) Size() int {
	return M.size
}

// Capacity - Returns the current number of buckets
func (M *HashMap[K, V]) Capacity() int {
	return len(M.buckets)
}

// LoadFactor - Returns the current ratio of stored entries to bucket capacity
func (M *HashMap[K, V]) LoadFactor() float64 {
	return float64(M.size) / float64(len(M.buckets))
}

// ForEach - Visits every entry in deterministic order, buckets in index order
// and each chain in insertion order. The map must not be mutated during the walk.
//   - fn is called once per entry, returning false stops the walk
func (M *HashMap[K, V]) ForEach(fn func(key K, value V) bool) {
	for _, bucket := range M.buckets {
		for i := range bucket {
			if !fn(bucket[i].key, bucket[i].value) {
				return
			}
		}
	}
}

// Keys - Returns all keys in the same deterministic order as ForEach
func (M *HashMap[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, M.size)
	M.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})

	return
}

// Stat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - Resizes is the number of grow events since construction
//   - BucketDistribution is the number of entries stored in each bucket
type Stat struct {
	Records            int
	Resizes            int
	BucketDistribution []int
}

// Stat - Walks through the entire set of buckets and produces a Stat struct
// with information. For very large maps the BucketDistribution slice can be
// memory heavy (there will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length Capacity with number of entries per bucket, false will set Stat.BucketDistribution to nil
func (M *HashMap[K, V]) Stat(includeDistribution bool) (stat *Stat) {
	stat = &Stat{Resizes: M.resizes}

	if includeDistribution {
		stat.BucketDistribution = make([]int, len(M.buckets))
	}

	for i, bucket := range M.buckets {
		stat.Records += len(bucket)
		if includeDistribution {
			stat.BucketDistribution[i] = len(bucket)
		}
	}

	return
}

// bucketNo - Returns which bucket number the given key hashes to.
// The bucket count is a power of two so the hash is reduced with a mask.
func (M *HashMap[K, V]) bucketNo(key K) int {
	return int(M.hashAlgorithm.Hash(key) & uint64(len(M.buckets)-1))
}

// grow - Reallocates the bucket slice to the next capacity and rehashes every
// entry into it. Entries keep their relative chain order within the new
// buckets. The map is fully consistent when grow returns.
func (M *HashMap[K, V]) grow() {
	newBuckets := make([][]entry[K, V], len(M.buckets)*conf.GrowthFactor)
	mask := uint64(len(newBuckets) - 1)

	for _, bucket := range M.buckets {
		for _, e := range bucket {
			bucketNo := int(M.hashAlgorithm.Hash(e.key) & mask)
			newBuckets[bucketNo] = append(newBuckets[bucketNo], e)
		}
	}

	M.buckets = newBuckets
	M.resizes++
}
