package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringHashAlgorithm(t *testing.T) {
	t.Run("hashing is deterministic and consistent with equality", func(t *testing.T) {
		// Prepare
		h := NewStringHashAlgorithm()

		// Execute
		a := h.Hash("separate chaining")
		b := h.Hash("separate chaining")
		c := h.Hash("open addressing")

		// Check
		assert.Equal(t, a, b, "equal keys hash equal")
		assert.NotEqual(t, a, c, "different keys hash different")
		assert.True(t, h.Equal("separate chaining", "separate chaining"), "equal keys compare equal")
		assert.False(t, h.Equal("separate chaining", "open addressing"), "different keys compare different")
	})
}

func TestBytesHashAlgorithm(t *testing.T) {
	t.Run("equality covers both size and contents", func(t *testing.T) {
		// Prepare
		h := NewBytesHashAlgorithm()

		// Execute and Check
		assert.True(t, h.Equal([]byte{1, 2, 3}, []byte{1, 2, 3}), "equal slices compare equal")
		assert.False(t, h.Equal([]byte{1, 2, 3}, []byte{1, 2}), "different length compares different")
		assert.False(t, h.Equal([]byte{1, 2, 3}, []byte{1, 2, 4}), "different contents compare different")
		assert.Equal(t, h.Hash([]byte{1, 2, 3}), h.Hash([]byte{1, 2, 3}), "equal keys hash equal")
	})
}

func TestIntegerHashAlgorithm(t *testing.T) {
	t.Run("spreads sequential keys", func(t *testing.T) {
		// Prepare
		h := NewIntegerHashAlgorithm[int]()

		// Execute
		seen := make(map[uint64]bool)
		for i := 0; i < 1000; i++ {
			seen[h.Hash(i)] = true
		}

		// Check
		assert.Equal(t, 1000, len(seen), "no collisions over a small sequential range")
		assert.Equal(t, h.Hash(42), h.Hash(42), "hashing is deterministic")
		assert.True(t, h.Equal(42, 42), "equal keys compare equal")
		assert.False(t, h.Equal(42, 43), "different keys compare different")
	})

	t.Run("supports signed keys", func(t *testing.T) {
		// Prepare
		h := NewIntegerHashAlgorithm[int32]()

		// Execute and Check
		assert.NotEqual(t, h.Hash(-1), h.Hash(1), "sign participates in the hash")
	})
}
