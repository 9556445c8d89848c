package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundUp2(t *testing.T) {
	t.Run("rounds up to nearest exponent of 2", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, 1, RoundUp2(0), "correct value for 0")
		assert.Equal(t, 1, RoundUp2(1), "correct value for 1")
		assert.Equal(t, 16, RoundUp2(10), "correct value for 10")
		assert.Equal(t, 16, RoundUp2(16), "correct value for 16")
		assert.Equal(t, 32, RoundUp2(17), "correct value for 17")
	})

	t.Run("terminates and caps at the largest representable power of two", func(t *testing.T) {
		// Execute
		r := RoundUp2(math.MaxInt)

		// Check
		assert.Equal(t, math.MaxInt/2+1, r, "largest power of two returned")
	})
}

func TestIsPow2(t *testing.T) {
	t.Run("identifies powers of two", func(t *testing.T) {
		// Execute and Check
		assert.True(t, IsPow2(1), "1 is a power of two")
		assert.True(t, IsPow2(16), "16 is a power of two")
		assert.False(t, IsPow2(0), "0 is not a power of two")
		assert.False(t, IsPow2(12), "12 is not a power of two")
		assert.False(t, IsPow2(-4), "negative values are not powers of two")
	})
}
