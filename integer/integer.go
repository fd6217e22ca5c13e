package integer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/calebcase/fixray/limb"
)

// Limbs is the number of 8-bit limbs in an Int32.
const Limbs = 4

var (
	radix = limb.Byte
	digit = limb.Nibble

	// digitsPerLimb is the number of multiply/divide digits in a limb.
	digitsPerLimb = int(radix.Bits() / digit.Bits())
)

// Int32 is a signed 32-bit two's complement integer stored as limbs, least
// significant first. The zero value is 0. Int32 values are copied, never
// shared; arithmetic methods modify the receiver and leave the operand alone.
type Int32 struct {
	parts [Limbs]int16
}

// From returns i sign extended into an Int32.
func From(i int16) (x Int32) {
	radix.Load(x.parts[:], i)

	return x
}

// FromLimbs returns the Int32 with the given limbs, least significant first.
// Every limb must be in [0, 255].
func FromLimbs(parts [Limbs]int16) Int32 {
	x := Int32{parts: parts}
	x.validate()

	return x
}

// FromInt32 converts a host integer. It is meant for tooling and tests; the
// arithmetic never needs it.
func FromInt32(i int32) (x Int32) {
	u := uint32(i)

	for k := range x.parts {
		x.parts[k] = int16(u >> (8 * uint(k)) & 0xFF)
	}

	return x
}

// Limbs returns the limbs of x, least significant first.
func (x Int32) Limbs() [Limbs]int16 {
	return x.parts
}

// Int32 converts x to a host integer.
func (x Int32) Int32() int32 {
	var u uint32

	for k := len(x.parts) - 1; k >= 0; k-- {
		u = u<<8 | uint32(x.parts[k])
	}

	return int32(u)
}

// Add sets x to x+y. The sum wraps at 32 bits.
func (x *Int32) Add(y Int32) {
	radix.Add(x.parts[:], y.parts[:])
}

// Sub sets x to x-y. The difference wraps at 32 bits.
func (x *Int32) Sub(y Int32) {
	radix.Sub(x.parts[:], y.parts[:])
}

// Neg sets x to -x.
func (x *Int32) Neg() {
	radix.Negate(x.parts[:])
}

// Abs sets x to |x|.
func (x *Int32) Abs() {
	if x.IsNegative() {
		x.Neg()
	}
}

// Zero sets x to 0.
func (x *Int32) Zero() {
	x.parts = [Limbs]int16{}
}

// IsZero reports whether x == 0.
func (x Int32) IsZero() bool {
	return radix.IsZero(x.parts[:])
}

// IsNegative reports whether x < 0.
func (x Int32) IsNegative() bool {
	return radix.IsNegative(x.parts[:])
}

// IsPositive reports whether x > 0.
func (x Int32) IsPositive() bool {
	return !x.IsZero() && !x.IsNegative()
}

// IsEven reports whether x is divisible by two.
func (x Int32) IsEven() bool {
	return x.parts[0]&1 == 0
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
//
// Values of the same sign are compared by the sign of their difference.
// Values of different sign are ordered by sign alone, because their
// difference may not fit.
func (x Int32) Cmp(y Int32) int {
	xn, yn := x.IsNegative(), y.IsNegative()

	switch {
	case xn && !yn:
		return -1
	case !xn && yn:
		return 1
	}

	d := x
	d.Sub(y)

	switch {
	case d.IsZero():
		return 0
	case d.IsNegative():
		return -1
	default:
		return 1
	}
}

// Less reports whether x < y.
func (x Int32) Less(y Int32) bool {
	return x.Cmp(y) < 0
}

// ShiftLeft shifts x left by whole limbs, filling with zero limbs. Limbs
// shifted past the top are lost.
func (x *Int32) ShiftLeft(limbs int) {
	checkShift(limbs)

	if limbs == 0 {
		return
	}

	for k := Limbs - 1; k >= 0; k-- {
		if k >= limbs {
			x.parts[k] = x.parts[k-limbs]
		} else {
			x.parts[k] = 0
		}
	}

	x.validate()
}

// ShiftRight shifts x right by whole limbs, truncating toward zero.
func (x *Int32) ShiftRight(limbs int) {
	checkShift(limbs)

	if limbs == 0 {
		return
	}

	neg := x.IsNegative()
	if neg {
		x.Neg()
	}

	for k := 0; k < Limbs; k++ {
		if k+limbs < Limbs {
			x.parts[k] = x.parts[k+limbs]
		} else {
			x.parts[k] = 0
		}
	}

	if neg {
		x.Neg()
	}

	x.validate()
}

// String returns the decimal form of x.
func (x Int32) String() string {
	return strconv.FormatInt(int64(x.Int32()), 10)
}

// Format implements fmt.Formatter. The %+v verb includes the limbs.
func (x Int32) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+'):
		fmt.Fprintf(f, "Int32[%d (%d, %d, %d, %d)]",
			x.Int32(),
			x.parts[0],
			x.parts[1],
			x.parts[2],
			x.parts[3],
		)
	case verb == 's' || verb == 'v':
		_, _ = io.WriteString(f, x.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), x.Int32())
	}
}

func (x Int32) validate() {
	radix.Validate(x.parts[:])
}

func checkShift(limbs int) {
	if limbs < 0 || limbs >= Limbs {
		panic(Error.New("invalid limb shift: %d", limbs))
	}
}
