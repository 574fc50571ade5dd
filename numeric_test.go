package fixedpoint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func inc12(sig int64) Value {
	return New(12, 0).SetSignificand(sig)
}

func TestSignificandAdder(t *testing.T) {
	a := assert.New(t)
	a.Equal(int64(2050), SignificandAdder(2000, inc12(50)))
	a.Equal(int64(-2090), SignificandAdder(-2040, inc12(-50)))
	a.Equal(int64(0), SignificandAdder(2047, inc12(-2047)))
}

func TestIntAdder(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		acc      int64
		inc      int64
		expected int64
	}{
		{2000, 50, -2046}, // wraps past 2047
		{-2040, -50, 2006},
		{2047, 1, -2048},
		{-2048, -1, 2047},
		{1000, 500, 1500},
		{-2047, 2047, 0},
		{0, 0, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.expected, IntAdder(12, test.acc, inc12(test.inc)))
		})
	}
	a.Panics(func() { IntAdder(1, 0, inc12(1)) })
	a.Panics(func() { IntAdder(8, 0, inc12(1)) })
}

func TestExactAdder(t *testing.T) {
	a := assert.New(t)
	sum, err := ExactAdder(12, 2000, inc12(50))
	a.Error(err)
	a.True(errors.Is(err, ErrRange))
	a.Equal(int64(0), sum)

	sum, err = ExactAdder(12, 1000, inc12(500))
	a.NoError(err)
	a.Equal(int64(1500), sum)

	sum, err = ExactAdder(12, 2047, inc12(-2047))
	a.NoError(err)
	a.Equal(int64(0), sum)

	_, err = ExactAdder(12, -2040, inc12(-50))
	a.True(errors.Is(err, ErrRange))

	a.Panics(func() { ExactAdder(8, 0, inc12(1)) })
}

func TestClampAdder(t *testing.T) {
	a := assert.New(t)
	a.Equal(int64(2047), ClampAdder(12, 2000, inc12(50)))
	a.Equal(int64(-2047), ClampAdder(12, -2040, inc12(-50)))
	a.Equal(int64(1500), ClampAdder(12, 1000, inc12(500)))
	// A clamp mid-fold sticks even after opposite increments.
	acc := ClampAdder(12, 2000, inc12(100))
	acc = ClampAdder(12, acc, inc12(-100))
	a.Equal(int64(1947), acc)
	a.Panics(func() { ClampAdder(8, 0, inc12(1)) })
}

func TestAdderFold(t *testing.T) {
	a := assert.New(t)
	values := make([]Value, 100)
	want := int64(0)
	for i := range values {
		sig := int64(i - 50)
		values[i] = New(12, -4).SetSignificand(sig)
		want += sig
	}
	var plain, wrapped, clamped, exact int64
	var err error
	for _, v := range values {
		plain = SignificandAdder(plain, v)
		wrapped = IntAdder(20, wrapped, v)
		clamped = ClampAdder(20, clamped, v)
		exact, err = ExactAdder(20, exact, v)
		a.NoError(err)
	}
	a.Equal(want, plain)
	a.Equal(want, wrapped)
	a.Equal(want, clamped)
	a.Equal(want, exact)
	sum := New(20, -4).SetSignificand(exact)
	a.Equal(float64(want)/16, sum.Float64())
}
