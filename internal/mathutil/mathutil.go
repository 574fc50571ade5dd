package mathutil

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns 1 for positive values, -1 for negative, 0 for zero.
func Sign[T constraints.Signed](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// BinaryDigits returns the number of bits needed to represent 'value',
// not counting the sign.
func BinaryDigits(value uint64) int {
	return bits.Len64(value)
}
