package fixed

import (
	"fmt"
	"io"
	"strconv"

	"github.com/calebcase/fixray/integer"
	"github.com/zeebo/errs"
)

// Error is the class of fixed point errors that are not arithmetic failures.
var Error = errs.Class("fixed")

// FracLimbs is the number of limbs holding the fraction.
const FracLimbs = 2

// Number is a Q16.16 fixed point number. The zero value is 0. Like
// integer.Int32, a Number is a value: arithmetic methods modify the receiver
// and never the operand.
type Number struct {
	raw integer.Int32
}

var (
	scale = func() integer.Int32 {
		s := integer.From(256)
		s.Mul(integer.From(256))

		return s
	}()

	pi = func() Number {
		x := integer.From(561)
		x.Mul(integer.From(367))

		return Number{raw: x}
	}()
)

// Scale returns the scale factor, 2^16.
func Scale() integer.Int32 {
	return scale
}

// Pi returns π to the resolution of a Number (205887 / 2^16).
func Pi() Number {
	return pi
}

// From returns i as a Number.
func From(i int16) Number {
	raw := integer.From(i)
	raw.ShiftLeft(FracLimbs)

	return Number{raw: raw}
}

// FromFraction returns num/den.
func FromFraction(num, den int16) Number {
	n := From(num)
	n.Div(From(den))

	return n
}

// FromRaw returns the Number whose scaled representation is raw.
func FromRaw(raw integer.Int32) Number {
	return Number{raw: raw}
}

// Raw returns the scaled representation of x.
func (x Number) Raw() integer.Int32 {
	return x.raw
}

// Add sets x to x+y.
func (x *Number) Add(y Number) {
	x.raw.Add(y.raw)
}

// Sub sets x to x-y.
func (x *Number) Sub(y Number) {
	x.raw.Sub(y.raw)
}

// Mul sets x to x*y, truncated toward zero. A zero operand yields zero
// without running the multiplication.
func (x *Number) Mul(y Number) {
	if x.raw.IsZero() || y.raw.IsZero() {
		x.raw.Zero()

		return
	}

	x.raw.MulShift(y.raw, FracLimbs)
}

// Div sets x to x/y, truncated toward zero. It panics with
// integer.ErrDivideByZero if y is zero, including when x is zero.
func (x *Number) Div(y Number) {
	if y.raw.IsZero() {
		panic(integer.ErrDivideByZero.New("dividing %v by zero", *x))
	}

	if x.raw.IsZero() {
		return
	}

	x.raw.ShiftDiv(FracLimbs, y.raw)
}

// Neg sets x to -x.
func (x *Number) Neg() {
	x.raw.Neg()
}

// Abs sets x to |x|.
func (x *Number) Abs() {
	x.raw.Abs()
}

// IsZero reports whether x == 0.
func (x Number) IsZero() bool {
	return x.raw.IsZero()
}

// IsNegative reports whether x < 0.
func (x Number) IsNegative() bool {
	return x.raw.IsNegative()
}

// IsPositive reports whether x > 0.
func (x Number) IsPositive() bool {
	return x.raw.IsPositive()
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Number) Cmp(y Number) int {
	return x.raw.Cmp(y.raw)
}

// Less reports whether x < y.
func (x Number) Less(y Number) bool {
	return x.raw.Less(y.raw)
}

// String returns the shortest decimal form of x.
func (x Number) String() string {
	return strconv.FormatFloat(x.Float64(), 'f', -1, 64)
}

// Format implements fmt.Formatter. The %+v verb includes the scaled value.
func (x Number) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+'):
		fmt.Fprintf(f, "Number[%s (%d)]", x.String(), x.raw.Int32())
	case verb == 's' || verb == 'v':
		_, _ = io.WriteString(f, x.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), x.Float64())
	}
}

// MarshalBinary implements encoding.BinaryMarshaler using the encoding of
// the scaled integer.
func (x Number) MarshalBinary() (data []byte, err error) {
	return x.raw.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Number) UnmarshalBinary(data []byte) (err error) {
	return x.raw.UnmarshalBinary(data)
}
