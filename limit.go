package fixedpoint

import "math"

// ToSignificand converts a float64 into a significand at the given shape:
// f is rescaled by 2^-place, rounded to the nearest integer, and clamped
// into width's legal range.
//
// Rounding always ties to even. The Go runtime does not expose the
// floating-point rounding mode, so this conversion is pinned to the
// IEEE 754 default instead of following ambient state; it is therefore
// deterministic. NaN converts to 0, infinities clamp to the range extremes.
func ToSignificand(f float64, width, place int) int64 {
	checkShape(width, place)
	return clampFloat(math.RoundToEven(math.Ldexp(f, -place)), width)
}

// LimitPrecision rounds and clamps a float64 so that the result is exactly
// representable at the given shape, staying in the float domain throughout.
// It rounds like ToSignificand. NaN is returned as is.
func LimitPrecision(f float64, width, place int) float64 {
	checkShape(width, place)
	if math.IsNaN(f) {
		return f
	}
	sig := clampFloat(math.RoundToEven(math.Ldexp(f, -place)), width)
	return math.Ldexp(float64(sig), place)
}

// clampFloat saturates an integral float into width's significand range.
// Values in range convert exactly: the range never exceeds 2^53 - 1.
func clampFloat(f float64, width int) int64 {
	max := MaxSignificand(width)
	switch {
	case math.IsNaN(f):
		return 0
	case f > float64(max):
		return max
	case f < float64(-max):
		return -max
	}
	return int64(f)
}
