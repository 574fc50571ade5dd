package fixedpoint

import "fmt"

const (
	// float64 has 53 significand bits (52 stored plus the hidden bit),
	// normal exponents down to -1021 and up to 1024.
	float64Digits      = 53
	float64MinExponent = -1021
	float64MaxExponent = 1024
)

const (
	// MinWidth is the smallest legal bit width: the sign bit plus one
	// magnitude bit.
	MinWidth = 2
	// MaxWidth is the largest legal bit width. It is bounded by float64's
	// significand, plus one bit for the sign, so that every Value converts
	// to float64 exactly.
	MaxWidth = float64Digits + 1

	// MinPlace is the lowest legal place of the least significant bit.
	MinPlace = float64MinExponent - 1
	// MaxMSBPlace is the highest legal place of the most significant bit,
	// i.e. width+place never exceeds it.
	MaxMSBPlace = float64MaxExponent
)

// MaxSignificand returns the largest significand a width can hold:
// 2^(width-1) - 1.
func MaxSignificand(width int) int64 {
	return 1<<(width-1) - 1
}

// MinSignificand returns the smallest significand a width can hold.
// The range is symmetric: -2^(width-1) is excluded so that negation can
// never overflow.
func MinSignificand(width int) int64 {
	return -MaxSignificand(width)
}

// Clamp saturates v into the legal significand range of the given width.
// It panics if the width is illegal.
func Clamp(v int64, width int) int64 {
	checkWidth(width)
	if max := MaxSignificand(width); v > max {
		return max
	} else if v < -max {
		return -max
	}
	return v
}

// StorageBits returns the width, 32 or 64 bits, of the narrowest machine
// integer class that holds significands of the given width. The Value type
// always stores an int64; the mapping is provided for callers packing
// significands themselves.
func StorageBits(width int) int {
	checkWidth(width)
	if width > 32 {
		return 64
	}
	return 32
}

func checkWidth(width int) {
	if width < MinWidth || width > MaxWidth {
		panic(fmt.Sprintf("fixedpoint: width %d out of range [%d, %d]", width, MinWidth, MaxWidth))
	}
}

// checkShape is the run-time stand-in for a compile-time shape check:
// shapes are static in caller code, so violations are programmer errors.
func checkShape(width, place int) {
	checkWidth(width)
	if place < MinPlace || width+place > MaxMSBPlace {
		panic(fmt.Sprintf("fixedpoint: place %d out of range [%d, %d] for width %d",
			place, MinPlace, MaxMSBPlace-width, width))
	}
}
