package fixed

import (
	"math"

	"github.com/calebcase/fixray/integer"
	"github.com/calebcase/fixray/limb"
)

var (
	// Bounds for the prescaling in Sqrt: 2^15 and 2^23.
	sqrtShift2 = func() integer.Int32 {
		b := integer.From(128)
		b.ShiftLeft(1)

		return b
	}()

	sqrtShift1 = func() integer.Int32 {
		b := integer.From(128)
		b.ShiftLeft(2)

		return b
	}()
)

// Sqrt sets x to the square root of x. It panics with integer.ErrDomain if x
// is negative.
//
// The root of the scaled value is sqrt(x) * 2^8, so the result has to be
// scaled up by 2^8 again. Small values are shifted left before the integer
// root instead of multiplied after it, which keeps their low bits:
//
//  raw < 2^15: sqrt(raw << 16)
//  raw < 2^23: sqrt(raw << 8) * 2^4
//  otherwise:  sqrt(raw) * 2^8
func (x *Number) Sqrt() {
	if x.raw.IsNegative() {
		panic(integer.ErrDomain.New("square root of %v", *x))
	}

	switch {
	case x.raw.Less(sqrtShift2):
		x.raw.ShiftLeft(2)
		x.raw.Sqrt()
	case x.raw.Less(sqrtShift1):
		x.raw.ShiftLeft(1)
		x.raw.Sqrt()
		x.raw.Mul(integer.From(16))
	default:
		x.raw.Sqrt()
		x.raw.Mul(integer.From(256))
	}
}

// Tan sets x to the tangent of x (in radians). The tangent is computed with
// the host float and quantized back with FromFloat64.
func (x *Number) Tan() {
	*x = FromFloat64(math.Tan(x.Float64()))
}

// FromFloat64 quantizes f, truncating toward zero. The fraction is kept to
// 15 bits, so the result has a resolution of 2^-15 and its lowest raw bit is
// always clear. It panics with integer.ErrDomain if f is not in
// [-32768, 32768).
func FromFloat64(f float64) Number {
	if math.IsNaN(f) || f < -32768 || f >= 32768 {
		panic(integer.ErrDomain.New("%v out of range", f))
	}

	ip := math.Trunc(f)

	n := From(int16(ip))

	// The fraction is quantized to 15 bits so it fits an int16, then doubled.
	frac := integer.From(int16((f - ip) * (1 << 15)))
	frac.Mul(integer.From(2))

	n.raw.Add(frac)

	return n
}

// Float64 converts x to a host float. The conversion is exact.
func (x Number) Float64() float64 {
	return float64(x.raw.Int32()) / float64(scale.Int32())
}

// Int16 returns the integer part of x, truncated toward zero.
func (x Number) Int16() int16 {
	r := x.raw
	r.ShiftRight(FracLimbs)

	l := r.Limbs()

	return limb.LeftShift(l[1], 8) | l[0]
}

// Frac16 returns the fractional part of |x| scaled to [0, 2^15).
func (x Number) Frac16() int16 {
	r := x.raw
	r.Abs()

	l := r.Limbs()

	return limb.LeftShift(l[1], 7) | limb.ArithRightShift(l[0], 1)
}

// Floor returns the greatest integer not greater than x.
func (x Number) Floor() Number {
	l := x.raw.Limbs()
	for k := 0; k < FracLimbs; k++ {
		l[k] = 0
	}

	return Number{raw: integer.FromLimbs(l)}
}
