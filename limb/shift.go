package limb

// ArithRightShift returns x shifted right by n bits with two's complement
// semantics: negative values round toward negative infinity. It only halves
// and compares, one bit position per iteration.
func ArithRightShift(x, n int16) int16 {
	if x == 0 || n <= 0 {
		return x
	}

	r := x

	for i := int16(0); i < n; i++ {
		// -1 is a fixed point.
		if r == -1 {
			return r
		}

		half := r / 2
		if r < 0 && half+half != r {
			half--
		}

		r = half
	}

	return r
}

// LeftShift returns x shifted left by n bits by repeated doubling. Bits
// shifted past the top of the int16 are lost.
func LeftShift(x, n int16) int16 {
	r := x

	for i := int16(0); i < n; i++ {
		r += r
	}

	return r
}

// Nlz returns the number of leading zero bits of x when viewed as a digit that
// is bits wide. Nlz(0, bits) is bits.
func Nlz(x, bits int16) int16 {
	var r int16

	for shift := bits - 1; shift >= 0; shift-- {
		if ArithRightShift(x, shift) != 0 {
			break
		}

		r++
	}

	return r
}
