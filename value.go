// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixedpoint implements a binary fixed-point number that tracks its
// own precision. A Value is significand * 2^place, where the significand
// holds at most 'width' bits including the sign, and every arithmetic
// operation derives the result's width and place so that addition,
// subtraction, and multiplication are always exact. The only operations
// that can lose information are the explicit ones: construction from a
// float64, precision reduction, and rounding.
//
// Widths are capped at one bit more than float64's significand, so
// conversion to float64 is always exact.
package fixedpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/avdva/fixedpoint/internal/mathutil"
)

var (
	// ErrRange is returned when a significand or an accumulated sum does
	// not fit the requested width.
	ErrRange = errors.New("value out of range")
)

// Value is a fixed-point number: significand * 2^place.
//
//	For width = 8, place = -3:
//	Place#   4   3   2   1   0  -1  -2  -3
//	Weight  16   8   4   2   1  1/2 1/4 1/8
//	       +---+---+---+---+---+---+---+---+
//	       | S |   |   |   |   |   |   |   |
//	       +---+---+---+---+---+---+---+---+
//	                           ^
//	                     binary point
//	  S: sign bit. Maximum +15.875, minimum -15.875, resolution 0.125.
//
// |significand| never exceeds 2^(width-1)-1; the asymmetric extreme
// -2^(width-1) is excluded so that negation cannot overflow.
//
// The width and place of a Value never change once it is built; operations
// return new Values. The zero Value is the zero of shape (2, 0).
//
// There is no constructor from a plain integer: an integer argument would
// read ambiguously as either a significand or a logical value. Construct
// from a float64, or set the significand explicitly with SetSignificand.
type Value struct {
	sig   int64
	width int16
	place int16
}

func makeValue(sig int64, width, place int) Value {
	return Value{sig: sig, width: int16(width), place: int16(place)}
}

func (v Value) shape() (width, place int) {
	if v.width == 0 {
		return MinWidth, 0
	}
	return int(v.width), int(v.place)
}

// New returns the zero Value of the given shape.
// It panics if the shape is illegal: width outside [MinWidth, MaxWidth],
// place below MinPlace, or width+place above MaxMSBPlace.
func New(width, place int) Value {
	checkShape(width, place)
	return makeValue(0, width, place)
}

// FromFloat64 returns f rounded (ties to even, see ToSignificand) and
// clamped into the given shape. Finite values are never rejected:
// out-of-range values clamp to the shape's extremes and sub-resolution
// values round. Infinities and NaN produce an error.
func FromFloat64(width, place int, f float64) (Value, error) {
	checkShape(width, place)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, fmt.Errorf("bad float number")
	}
	return makeValue(ToSignificand(f, width, place), width, place), nil
}

// MustFromFloat64 is like FromFloat64, but panics on error.
func MustFromFloat64(width, place int, f float64) Value {
	v, err := FromFloat64(width, place, f)
	if err != nil {
		panic(err)
	}
	return v
}

// Significand returns the stored significand.
func (v Value) Significand() int64 {
	return v.sig
}

// Width returns the bit width of the significand, including the sign bit.
func (v Value) Width() int {
	w, _ := v.shape()
	return w
}

// Place returns the binary-point place: bit #n carries the weight 2^n.
func (v Value) Place() int {
	_, p := v.shape()
	return p
}

// SetSignificand returns a copy of v with the significand set to s,
// clamped into v's width.
func (v Value) SetSignificand(s int64) Value {
	w, p := v.shape()
	return makeValue(Clamp(s, w), w, p)
}

// SetSignificandFloat is SetSignificand for float64 sources, whose
// magnitude may exceed the int64 range. The fractional part is discarded
// toward zero before clamping.
func (v Value) SetSignificandFloat(s float64) Value {
	w, p := v.shape()
	return makeValue(clampFloat(math.Trunc(s), w), w, p)
}

// Float64 returns the value as a float64. The conversion is always exact:
// legal shapes fit float64's significand and exponent range by construction.
func (v Value) Float64() float64 {
	_, p := v.shape()
	return math.Ldexp(float64(v.sig), p)
}

// IsZero reports whether v is zero.
func (v Value) IsZero() bool {
	return v.sig == 0
}

// Sign returns 1 if v > 0, -1 if v < 0, 0 if v == 0.
func (v Value) Sign() int {
	return mathutil.Sign(v.sig)
}

// Widen converts v losslessly into a wider shape: one whose most
// significant place is at least v's and whose least significant place is
// at most v's. It panics if the target shape does not cover v's, since a
// conversion the other way could be inexact; narrow explicitly with
// ReduceDynamicRange or go through float64.
func (v Value) Widen(width, place int) Value {
	checkShape(width, place)
	w, p := v.shape()
	if place > p || width+place < w+p {
		panic(fmt.Sprintf("fixedpoint: shape (%d, %d) cannot hold every value of shape (%d, %d)",
			width, place, w, p))
	}
	return v.extend(width, place)
}

// extend is Widen for target shapes already known to be legal supersets.
func (v Value) extend(width, place int) Value {
	_, p := v.shape()
	return makeValue(v.sig<<uint(p-place), width, place)
}

// ReduceDynamicRange returns v with destWidth bits at the same place,
// clamping the significand when it does not fit. This is the one lossy
// fixed-to-fixed conversion. destWidth may also be wider than v's width.
func (v Value) ReduceDynamicRange(destWidth int) Value {
	_, p := v.shape()
	checkShape(destWidth, p)
	return makeValue(Clamp(v.sig, destWidth), destWidth, p)
}

// Exp2 returns v * 2^exp: the unchanged significand reinterpreted at
// place+exp, so the rescale is free and exact. It panics if the new place
// leaves the legal range.
func (v Value) Exp2(exp int) Value {
	w, p := v.shape()
	checkShape(w, p+exp)
	return makeValue(v.sig, w, p+exp)
}

// Neg returns -v at the same shape. It can never overflow: the significand
// range is symmetric.
func (v Value) Neg() Value {
	w, p := v.shape()
	return makeValue(-v.sig, w, p)
}

// Abs returns |v| at the same shape.
func (v Value) Abs() Value {
	w, p := v.shape()
	return makeValue(mathutil.Abs(v.sig), w, p)
}

// supersetShape returns the shape covering every value of both operand
// shapes at the finer of the two places, plus extra guard bits on the MSB
// side.
func supersetShape(w1, p1, w2, p2, extra int) (width, place int) {
	return max(w1+p1, w2+p2) - min(p1, p2) + extra, min(p1, p2)
}

// additionExtraBit returns 1 when a sum of the two shapes can carry past
// their combined range. It cannot when the magnitude bits of one shape lie
// entirely above the other's.
func additionExtraBit(w1, p1, w2, p2 int) int {
	if p1 >= w2+p2-1 || p2 >= w1+p1-1 {
		return 0
	}
	return 1
}

// Add returns v + other. The result's shape is derived to hold the exact
// sum of any two values of the operand shapes, so the addition itself never
// rounds and never clamps. Add panics if the derived shape leaves the legal
// range, the same way building such a shape directly would.
func (v Value) Add(other Value) Value {
	return v.addSig(other, 1)
}

// Sub returns v - other under the same shape derivation as Add.
func (v Value) Sub(other Value) Value {
	return v.addSig(other, -1)
}

func (v Value) addSig(other Value, sign int64) Value {
	w1, p1 := v.shape()
	w2, p2 := other.shape()
	width, place := supersetShape(w1, p1, w2, p2, additionExtraBit(w1, p1, w2, p2))
	checkShape(width, place)
	return makeValue(v.extend(width, place).sig+sign*other.extend(width, place).sig, width, place)
}

// Mul returns v * other: significands multiply, places add. The result
// width is w1+w2-1 - the two sign bits collapse into one - which always
// holds the exact product. Mul panics if the derived shape leaves the legal
// range.
func (v Value) Mul(other Value) Value {
	w1, p1 := v.shape()
	w2, p2 := other.shape()
	width, place := w1+w2-1, p1+p2
	checkShape(width, place)
	return makeValue(v.sig*other.sig, width, place)
}

// Cmp compares values of any two shapes.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
// Both operands extend losslessly into their superset shape, so the
// comparison is exact even when the shapes' ranges do not overlap. Cmp
// panics if the superset shape leaves the legal range.
func (v Value) Cmp(other Value) int {
	w1, p1 := v.shape()
	w2, p2 := other.shape()
	width, place := supersetShape(w1, p1, w2, p2, 0)
	checkShape(width, place)
	return mathutil.Sign(v.extend(width, place).sig - other.extend(width, place).sig)
}

// Eq returns true if both values represent the same number.
func (v Value) Eq(other Value) bool {
	return v.Cmp(other) == 0
}

// Ne returns true if the values represent different numbers.
func (v Value) Ne(other Value) bool {
	return v.Cmp(other) != 0
}

// Lt returns v < other.
func (v Value) Lt(other Value) bool {
	return v.Cmp(other) < 0
}

// Le returns v <= other.
func (v Value) Le(other Value) bool {
	return v.Cmp(other) <= 0
}

// Gt returns v > other.
func (v Value) Gt(other Value) bool {
	return v.Cmp(other) > 0
}

// Ge returns v >= other.
func (v Value) Ge(other Value) bool {
	return v.Cmp(other) >= 0
}

// Decimal returns the exact decimal representation of the value:
// every binary fixed-point number has a finite one, since
// sig * 2^p == sig * 5^-p * 10^p for negative p.
func (v Value) Decimal() decimal.Decimal {
	_, p := v.shape()
	sig := v.sig
	for sig != 0 && sig&1 == 0 && p < 0 {
		sig >>= 1
		p++
	}
	if sig == 0 {
		return decimal.Decimal{}
	}
	b := big.NewInt(sig)
	if p >= 0 {
		return decimal.NewFromBigInt(b.Lsh(b, uint(p)), 0)
	}
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-p)), nil)
	return decimal.NewFromBigInt(b.Mul(b, five), int32(p))
}

// String returns the exact decimal string of the value.
func (v Value) String() string {
	return v.Decimal().String()
}

// GoString returns a debug representation with the significand and shape.
func (v Value) GoString() string {
	w, p := v.shape()
	return v.String() + fmt.Sprintf(" {%v, %v, %v}", v.sig, w, p)
}

// MarshalJSON marshals the value as {"s":significand,"w":width,"p":place}.
func (v Value) MarshalJSON() ([]byte, error) {
	w, p := v.shape()
	return []byte(fmt.Sprintf(`{"s":%d,"w":%d,"p":%d}`, v.sig, w, p)), nil
}

// UnmarshalJSON unmarshals an {"s":…,"w":…,"p":…} object, validating the
// shape and the significand range.
func (v *Value) UnmarshalJSON(data []byte) error {
	d := struct {
		S int64 `json:"s"`
		W int   `json:"w"`
		P int   `json:"p"`
	}{}
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if d.W < MinWidth || d.W > MaxWidth || d.P < MinPlace || d.W+d.P > MaxMSBPlace {
		return fmt.Errorf("shape (%d, %d): %w", d.W, d.P, ErrRange)
	}
	if d.S > MaxSignificand(d.W) || d.S < MinSignificand(d.W) {
		return fmt.Errorf("significand %d for width %d: %w", d.S, d.W, ErrRange)
	}
	*v = makeValue(d.S, d.W, d.P)
	return nil
}
