package fixedpoint

// The eight rounding policies share one core: derive the result shape, add
// a policy bias to the significand, then floor-shift the dropped bits away.
// Go's >> on a signed integer is an arithmetic shift, which is exactly the
// floor division the core needs, for negative significands included.

type roundMode int

const (
	modeCeil roundMode = iota
	modeFloor
	modeTrunc
	modeHalfToEven
	modeHalfAwayFromZero
	modeHalfTowardZero
	modeHalfUp
	modeHalfDown
)

// roundShape derives the shape of a rounding result. A value already at
// least as fine as lsbPlace keeps its shape. Otherwise the result holds the
// integer part at lsbPlace plus the extra carry bits, and never goes below
// MinWidth.
func roundShape(w, p, extra, lsbPlace int) (width, place int) {
	if p >= lsbPlace {
		return w, p
	}
	if w+p <= 1+lsbPlace {
		return max(MinWidth, 1+extra), lsbPlace
	}
	return w + p + extra - lsbPlace, lsbPlace
}

func (v Value) round(extra, lsbPlace int, mode roundMode) Value {
	w, p := v.shape()
	width, place := roundShape(w, p, extra, lsbPlace)
	if place == p {
		// Already expressible at lsbPlace: identical significand, no extra
		// bit consumed.
		return makeValue(v.sig, width, place)
	}
	checkShape(width, place)
	shift := uint(place - p)
	if shift > 62 {
		// The bias constants below would overflow int64. Here every
		// magnitude bit is dropped, and for a legal shape the value lies
		// strictly below half of the result's resolution: shift > 62 with
		// width <= 54 forces w+p < place-1. Only the directed modes can
		// leave zero.
		var s int64
		switch mode {
		case modeCeil:
			if v.sig > 0 {
				s = 1
			}
		case modeFloor:
			if v.sig < 0 {
				s = -1
			}
		}
		return makeValue(s, width, place)
	}
	half := int64(1) << (shift - 1)
	var bias int64
	switch mode {
	case modeCeil:
		bias = 2*half - 1
	case modeFloor:
		bias = 0
	case modeTrunc:
		if v.sig < 0 {
			bias = 2*half - 1
		}
	case modeHalfToEven:
		bias = half - 1 + v.sig>>shift&1
	case modeHalfAwayFromZero:
		bias = half
		if v.sig < 0 {
			bias--
		}
	case modeHalfTowardZero:
		bias = half
		if v.sig >= 0 {
			bias--
		}
	case modeHalfUp:
		bias = half
	case modeHalfDown:
		bias = half - 1
	}
	return makeValue((v.sig+bias)>>shift, width, place)
}

// Ceil rounds toward +infinity: the smallest value expressible at lsbPlace
// that is not less than v. The result reserves one extra MSB bit for the
// possible carry. A value already at least as fine as lsbPlace is returned
// unchanged, with no extra bit. Pass lsbPlace 0 to round to integer; the
// same applies to all rounding functions below.
func (v Value) Ceil(lsbPlace int) Value {
	return v.round(1, lsbPlace, modeCeil)
}

// Floor rounds toward -infinity: the largest value expressible at lsbPlace
// that is not greater than v.
func (v Value) Floor(lsbPlace int) Value {
	return v.round(1, lsbPlace, modeFloor)
}

// Trunc rounds toward zero. Truncation can never grow the integer part, so
// no carry bit is reserved.
func (v Value) Trunc(lsbPlace int) Value {
	return v.round(0, lsbPlace, modeTrunc)
}

// RoundHalfToEven rounds to nearest; a value midway between two results
// goes to the one whose lowest kept bit is zero. This is the tie rule
// IEEE 754 recommends.
func (v Value) RoundHalfToEven(lsbPlace int) Value {
	return v.round(1, lsbPlace, modeHalfToEven)
}

// RoundHalfAwayFromZero rounds to nearest, ties away from zero.
func (v Value) RoundHalfAwayFromZero(lsbPlace int) Value {
	return v.round(1, lsbPlace, modeHalfAwayFromZero)
}

// RoundHalfTowardZero rounds to nearest, ties toward zero.
func (v Value) RoundHalfTowardZero(lsbPlace int) Value {
	return v.round(1, lsbPlace, modeHalfTowardZero)
}

// RoundHalfUp rounds to nearest, ties toward +infinity.
func (v Value) RoundHalfUp(lsbPlace int) Value {
	return v.round(1, lsbPlace, modeHalfUp)
}

// RoundHalfDown rounds to nearest, ties toward -infinity.
func (v Value) RoundHalfDown(lsbPlace int) Value {
	return v.round(1, lsbPlace, modeHalfDown)
}
