package limb

import (
	"github.com/zeebo/errs"
)

// Error is the class of limb errors.
var Error = errs.Class("limb")

// ErrInvariant is raised (by panic) when a limb leaves its radix range.
var ErrInvariant = errs.Class("limb invariant")

// ErrDivideByZero is raised (by panic) when Div is given a zero divisor.
var ErrDivideByZero = errs.Class("divide by zero")

// Radix is the width of a limb in bits. A limb of a Radix holds values in
// [0, Base()-1].
type Radix struct {
	bits int16
}

// Predefined radices.
var (
	Nibble = Radix{bits: 4}
	Byte   = Radix{bits: 8}
)

// NewRadix returns the radix for limbs that are bits wide. Limbs must leave
// room for a carry inside a signed 16-bit host, so bits is limited to 1..8.
func NewRadix(bits int16) (r Radix, err error) {
	if bits < 1 || bits > 8 {
		return r, Error.New("invalid radix width: %d bits", bits)
	}

	return Radix{bits: bits}, nil
}

// Bits returns the limb width.
func (r Radix) Bits() int16 {
	return r.bits
}

// Base returns the number of distinct limb values.
func (r Radix) Base() int16 {
	return LeftShift(1, r.bits)
}

// Mask returns Base()-1.
func (r Radix) Mask() int16 {
	return r.Base() - 1
}

// Sign returns the value of the top bit of a limb.
func (r Radix) Sign() int16 {
	return LeftShift(1, r.bits-1)
}

// digitSafe reports whether products of two digits plus carries stay inside
// the signed 16-bit range.
func (r Radix) digitSafe() bool {
	return r.bits >= 1 && r.bits <= 7
}
