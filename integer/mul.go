package integer

import (
	"github.com/calebcase/fixray/limb"
)

// Mul sets x to x*y. It panics with ErrOverflow if the product does not fit.
func (x *Int32) Mul(y Int32) {
	x.MulShift(y, 0)
}

// MulShift sets x to x*y shifted right by whole limbs. The product is formed
// at double width, so only the shifted result has to fit in 32 bits; the
// magnitude is truncated, so the result rounds toward zero.
//
// MulShift panics with ErrOverflow if any digit of the product above the
// shifted window is non-zero or the shifted magnitude does not fit the sign.
func (x *Int32) MulShift(y Int32, limbs int) {
	checkShift(limbs)

	neg := x.IsNegative() != y.IsNegative()

	a, b := *x, y
	a.Abs()
	b.Abs()

	w := digit.Mul(
		radix.Split(a.parts[:], digit),
		radix.Split(b.parts[:], digit),
	)

	lo := limbs * digitsPerLimb
	hi := lo + Limbs*digitsPerLimb

	for i := hi; i < len(w); i++ {
		if w[i] != 0 {
			panic(ErrOverflow.New(
				"multiplying %v by %v (right shift %d limbs): product digits %v",
				*x,
				y,
				limbs,
				[]int16(w),
			))
		}
	}

	m := radix.Join(w[lo:hi], digit)
	if !fits(m, neg) {
		panic(ErrOverflow.New(
			"multiplying %v by %v (right shift %d limbs): magnitude %v exceeds 31 bits",
			*x,
			y,
			limbs,
			[]int16(m),
		))
	}

	x.setMagnitude(m, neg)
}

// fits reports whether the magnitude m can be stored with the given sign.
// Only a negative result may use the sign bit, and only as -2^31.
func fits(m limb.Vector, neg bool) bool {
	if !radix.IsNegative(m) {
		return true
	}

	if !neg {
		return false
	}

	for _, l := range m[:len(m)-1] {
		if l != 0 {
			return false
		}
	}

	return m[len(m)-1] == radix.Sign()
}

func (x *Int32) setMagnitude(m limb.Vector, neg bool) {
	copy(x.parts[:], m)

	if neg {
		x.Neg()
	}

	x.validate()
}
