package conf

// DefaultInitialCapacity - Number of buckets a hash map starts out with when
// no explicit capacity is given
const DefaultInitialCapacity int = 16

// MinInitialCapacity - Lowest bucket count a hash map will be created with,
// requested capacities below this are rounded up
const MinInitialCapacity int = 4

// DefaultMaxLoadFactor - Load factor threshold that triggers a resize after an insert
const DefaultMaxLoadFactor float64 = 0.75

// GrowthFactor - Multiplier applied to the bucket count on resize
const GrowthFactor int = 2

// TrieArenaInitialCapacity - Initial node capacity of a trie arena
const TrieArenaInitialCapacity int = 64
