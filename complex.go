package fixedpoint

import "encoding/json"

// Complex is a pair of fixed-point values. The common constructors give
// both parts one shape; parts of different shapes are representable and
// arise componentwise from arithmetic on heterogeneous operands.
//
// Like Value, a Complex has no constructor from plain integers.
type Complex struct {
	re, im Value
}

// NewComplex returns the complex zero whose parts have the given shape.
// It panics if the shape is illegal.
func NewComplex(width, place int) Complex {
	z := New(width, place)
	return Complex{re: z, im: z}
}

// ComplexFromValues builds a Complex from its parts, which keep their
// shapes.
func ComplexFromValues(re, im Value) Complex {
	return Complex{re: re, im: im}
}

// ComplexFromFloat64 rounds and clamps both parts into the given shape, in
// the manner of FromFloat64.
func ComplexFromFloat64(width, place int, re, im float64) (Complex, error) {
	r, err := FromFloat64(width, place, re)
	if err != nil {
		return Complex{}, err
	}
	i, err := FromFloat64(width, place, im)
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: r, im: i}, nil
}

// MustComplexFromFloat64 is like ComplexFromFloat64, but panics on error.
func MustComplexFromFloat64(width, place int, re, im float64) Complex {
	c, err := ComplexFromFloat64(width, place, re, im)
	if err != nil {
		panic(err)
	}
	return c
}

// Real returns the real part.
func (c Complex) Real() Value {
	return c.re
}

// Imag returns the imaginary part.
func (c Complex) Imag() Value {
	return c.im
}

// SetReal replaces the real part with val widened into the current real
// part's shape. It panics if val's shape is wider, like Value.Widen.
func (c *Complex) SetReal(val Value) {
	w, p := c.re.shape()
	c.re = val.Widen(w, p)
}

// SetImag replaces the imaginary part with val widened into the current
// imaginary part's shape. It panics if val's shape is wider.
func (c *Complex) SetImag(val Value) {
	w, p := c.im.shape()
	c.im = val.Widen(w, p)
}

// SetRealFloat64 rounds and clamps f into the real part's shape, in the
// manner of FromFloat64.
func (c *Complex) SetRealFloat64(f float64) error {
	w, p := c.re.shape()
	v, err := FromFloat64(w, p, f)
	if err != nil {
		return err
	}
	c.re = v
	return nil
}

// SetImagFloat64 rounds and clamps f into the imaginary part's shape.
func (c *Complex) SetImagFloat64(f float64) error {
	w, p := c.im.shape()
	v, err := FromFloat64(w, p, f)
	if err != nil {
		return err
	}
	c.im = v
	return nil
}

// apply lifts a Value operation to both parts.
func (c Complex) apply(f func(Value) Value) Complex {
	return Complex{re: f(c.re), im: f(c.im)}
}

// Widen converts both parts losslessly into the given shape. It panics if
// either part is wider.
func (c Complex) Widen(width, place int) Complex {
	return c.apply(func(v Value) Value { return v.Widen(width, place) })
}

// ReduceDynamicRange clamps both parts into destWidth at their places.
func (c Complex) ReduceDynamicRange(destWidth int) Complex {
	return c.apply(func(v Value) Value { return v.ReduceDynamicRange(destWidth) })
}

// Complex128 returns the value as a complex128. Both conversions are exact.
func (c Complex) Complex128() complex128 {
	return complex(c.re.Float64(), c.im.Float64())
}

// IsZero reports whether both parts are zero.
func (c Complex) IsZero() bool {
	return c.re.IsZero() && c.im.IsZero()
}

// Neg returns -c. Like Value.Neg, it can never overflow.
func (c Complex) Neg() Complex {
	return Complex{re: c.re.Neg(), im: c.im.Neg()}
}

// Add returns c + other componentwise; each part's shape derives
// independently, per Value.Add.
func (c Complex) Add(other Complex) Complex {
	return Complex{re: c.re.Add(other.re), im: c.im.Add(other.im)}
}

// Sub returns c - other componentwise.
func (c Complex) Sub(other Complex) Complex {
	return Complex{re: c.re.Sub(other.re), im: c.im.Sub(other.im)}
}

// Mul returns the complex product; the part shapes follow from the
// underlying multiply and add derivations.
func (c Complex) Mul(other Complex) Complex {
	return Complex{
		re: c.re.Mul(other.re).Sub(c.im.Mul(other.im)),
		im: c.re.Mul(other.im).Add(c.im.Mul(other.re)),
	}
}

// Eq returns true if both parts are equal.
func (c Complex) Eq(other Complex) bool {
	return c.re.Eq(other.re) && c.im.Eq(other.im)
}

// Ne returns true if the values differ in either part.
func (c Complex) Ne(other Complex) bool {
	return !c.Eq(other)
}

// Norm returns re^2 + im^2.
func (c Complex) Norm() Value {
	return c.re.Mul(c.re).Add(c.im.Mul(c.im))
}

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{re: c.re, im: c.im.Neg()}
}

// MultI returns c * i, a rotation of 90 degrees: (re, im) -> (-im, re).
// A rotation of -90 degrees is c.MultI().Neg().
func (c Complex) MultI() Complex {
	return Complex{re: c.im.Neg(), im: c.re}
}

// Inphase returns re*ref.re + im*ref.im: the real part of c * ref.Conj().
func (c Complex) Inphase(ref Complex) Value {
	return c.re.Mul(ref.re).Add(c.im.Mul(ref.im))
}

// Quadrature returns im*ref.re - re*ref.im: the imaginary part of
// c * ref.Conj().
func (c Complex) Quadrature(ref Complex) Value {
	return c.im.Mul(ref.re).Sub(c.re.Mul(ref.im))
}

// Ceil applies Value.Ceil to both parts.
func (c Complex) Ceil(lsbPlace int) Complex {
	return c.apply(func(v Value) Value { return v.Ceil(lsbPlace) })
}

// Floor applies Value.Floor to both parts.
func (c Complex) Floor(lsbPlace int) Complex {
	return c.apply(func(v Value) Value { return v.Floor(lsbPlace) })
}

// Trunc applies Value.Trunc to both parts.
func (c Complex) Trunc(lsbPlace int) Complex {
	return c.apply(func(v Value) Value { return v.Trunc(lsbPlace) })
}

// RoundHalfToEven applies Value.RoundHalfToEven to both parts.
func (c Complex) RoundHalfToEven(lsbPlace int) Complex {
	return c.apply(func(v Value) Value { return v.RoundHalfToEven(lsbPlace) })
}

// RoundHalfAwayFromZero applies Value.RoundHalfAwayFromZero to both parts.
func (c Complex) RoundHalfAwayFromZero(lsbPlace int) Complex {
	return c.apply(func(v Value) Value { return v.RoundHalfAwayFromZero(lsbPlace) })
}

// RoundHalfTowardZero applies Value.RoundHalfTowardZero to both parts.
func (c Complex) RoundHalfTowardZero(lsbPlace int) Complex {
	return c.apply(func(v Value) Value { return v.RoundHalfTowardZero(lsbPlace) })
}

// RoundHalfUp applies Value.RoundHalfUp to both parts.
func (c Complex) RoundHalfUp(lsbPlace int) Complex {
	return c.apply(func(v Value) Value { return v.RoundHalfUp(lsbPlace) })
}

// RoundHalfDown applies Value.RoundHalfDown to both parts.
func (c Complex) RoundHalfDown(lsbPlace int) Complex {
	return c.apply(func(v Value) Value { return v.RoundHalfDown(lsbPlace) })
}

// String formats the value as re+imi with exact decimal parts.
func (c Complex) String() string {
	if c.im.Sign() < 0 {
		return c.re.String() + c.im.String() + "i"
	}
	return c.re.String() + "+" + c.im.String() + "i"
}

type complexJSON struct {
	Re Value `json:"re"`
	Im Value `json:"im"`
}

// MarshalJSON marshals both parts as {"re":…,"im":…}.
func (c Complex) MarshalJSON() ([]byte, error) {
	return json.Marshal(complexJSON{Re: c.re, Im: c.im})
}

// UnmarshalJSON unmarshals an {"re":…,"im":…} object of two values.
func (c *Complex) UnmarshalJSON(data []byte) error {
	var d complexJSON
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	c.re, c.im = d.Re, d.Im
	return nil
}

// Real returns the real part of x.
func Real(x Complex) Value {
	return x.Real()
}

// Imag returns the imaginary part of x.
func Imag(x Complex) Value {
	return x.Imag()
}

// Norm returns the norm of x.
func Norm(x Complex) Value {
	return x.Norm()
}
