package fixedpoint

import "fmt"

// The adders below are combining steps for fold loops over Values sharing
// one place, e.g.:
//
//	acc := int64(0)
//	for _, v := range values {
//		acc = fixedpoint.ClampAdder(20, acc, v)
//	}
//	sum := fixedpoint.New(20, -8).SetSignificand(acc)
//
// The accumulator is a bare significand, not a Value: the four adders
// differ exactly in how they treat a sum outgrowing the accumulator width,
// which a Value by construction never represents. Keeping every increment
// at the accumulator's place is the caller's contract.

// SignificandAdder adds the increment's significand to the accumulator
// with a plain native int64 addition. Nothing is checked: a sum beyond 64
// bits wraps silently. This is the unchecked fast path; use one of the
// adders below when the sum can leave the accumulator's range.
func SignificandAdder(acc int64, inc Value) int64 {
	return acc + inc.Significand()
}

// IntAdder adds with a two's-complement adder of exactly width bits: the
// sum wraps around within [-2^(width-1), 2^(width-1)-1]. Unlike a Value
// significand, the result can be -2^(width-1), which SetSignificand would
// clamp. IntAdder panics if width cannot hold the increment.
func IntAdder(width int, acc int64, inc Value) int64 {
	checkAccumulatorWidth(width, inc)
	result := acc + inc.Significand()
	umask := MaxSignificand(width) // the width-1 magnitude bits
	if result&(umask+1) == 0 {
		return result & umask
	}
	return result | ^umask // sign extend, which is the wraparound
}

// ExactAdder adds with one guard bit and returns ErrRange when the true
// sum does not fit in width bits; it never truncates silently. Use it when
// overflow is believed impossible and must not pass unnoticed.
// ExactAdder panics if width cannot hold the increment.
func ExactAdder(width int, acc int64, inc Value) (int64, error) {
	checkAccumulatorWidth(width, inc)
	// The int64 sum is exact: width is at most MaxWidth, well below 63 bits.
	result := acc + inc.Significand()
	signMask := ^MaxSignificand(width)
	if b := result & signMask; b != 0 && b != signMask {
		return 0, fmt.Errorf("%d-bit accumulation: %w", width, ErrRange)
	}
	return result, nil
}

// ClampAdder adds with one guard bit and saturates the sum into width's
// legal significand range. If increments of both signs appear, a clamp in
// the middle of the fold leaves the final sum meaningless.
func ClampAdder(width int, acc int64, inc Value) int64 {
	checkAccumulatorWidth(width, inc)
	return Clamp(acc+inc.Significand(), width)
}

func checkAccumulatorWidth(width int, inc Value) {
	checkWidth(width)
	if width < inc.Width() {
		panic(fmt.Sprintf("fixedpoint: accumulator width %d narrower than increment width %d",
			width, inc.Width()))
	}
}
