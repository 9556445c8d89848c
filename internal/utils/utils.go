package utils

import "math"

// RoundUp2 - Rounds up the given value to the nearest exponent of 2 that can
// hold it, e.g. 10 becomes 16. Values less than 1 return 1. Values above the
// largest power of two representable in an int return that largest power.
func RoundUp2(a int) int {
	r := 1
	for r < a {
		if r > math.MaxInt>>1 {
			break
		}
		r <<= 1
	}

	return r
}

// IsPow2 - Returns true if a is a positive power of two
func IsPow2(a int) bool {
	return a > 0 && a&(a-1) == 0
}
