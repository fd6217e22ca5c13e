package integer

import (
	"github.com/calebcase/fixray/limb"
)

// Div sets x to x/y truncated toward zero. It panics with ErrDivideByZero if
// y is zero.
func (x *Int32) Div(y Int32) {
	x.ShiftDiv(0, y)
}

// ShiftDiv sets x to (x shifted left by whole limbs)/y, truncated toward
// zero. The shifted dividend is formed at double width so no bits are lost
// before dividing.
//
// ShiftDiv panics with ErrDivideByZero if y is zero and with ErrOverflow if
// the quotient does not fit in 32 bits.
func (x *Int32) ShiftDiv(limbs int, y Int32) {
	checkShift(limbs)

	if y.IsZero() {
		panic(ErrDivideByZero.New(
			"dividing %v by %v (left shift %d limbs)",
			*x,
			y,
			limbs,
		))
	}

	neg := x.IsNegative() != y.IsNegative()

	a, b := *x, y
	a.Abs()
	b.Abs()

	u := make(limb.Vector, 2*Limbs)
	copy(u[limbs:], a.parts[:])

	q := digit.Div(
		radix.Split(u, digit),
		radix.Split(b.parts[:], digit),
	)

	hi := Limbs * digitsPerLimb

	for i := hi; i < len(q); i++ {
		if q[i] != 0 {
			panic(ErrOverflow.New(
				"dividing %v by %v (left shift %d limbs): quotient digits %v",
				*x,
				y,
				limbs,
				[]int16(q),
			))
		}
	}

	m := radix.Join(q[:hi], digit)
	if !fits(m, neg) {
		panic(ErrOverflow.New(
			"dividing %v by %v (left shift %d limbs): magnitude %v exceeds 31 bits",
			*x,
			y,
			limbs,
			[]int16(m),
		))
	}

	x.setMagnitude(m, neg)
}
