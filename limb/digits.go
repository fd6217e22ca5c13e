package limb

// Mul returns the product of the non-negative digit vectors u and v as a
// vector of len(u)+len(v) digits. It is schoolbook long multiplication: every
// digit product plus the running carry stays inside the signed 16-bit range
// because r is at most 7 bits wide.
func (r Radix) Mul(u, v Vector) Vector {
	r.mustDigits()
	r.Validate(u)
	r.Validate(v)

	mask := r.Mask()

	w := make(Vector, len(u)+len(v))

	for j := range v {
		var k int16

		vj := v[j]

		for i := range u {
			t := u[i]*vj + w[i+j] + k
			w[i+j] = t & mask
			k = ArithRightShift(t, r.bits)
		}

		w[j+len(u)] = k
	}

	return w
}

// Div returns the quotient of the non-negative digit vectors u / v as a
// vector of len(u) digits, truncated toward zero. The divisor is normalized
// and each quotient digit is estimated from the top two digits of the
// remaining dividend (Knuth, TAOCP vol. 2, 4.3.1, Algorithm D).
//
// Div panics with ErrDivideByZero if v is zero.
func (r Radix) Div(u, v Vector) Vector {
	r.mustDigits()
	r.Validate(u)
	r.Validate(v)

	n := len(v)
	for n > 0 && v[n-1] == 0 {
		n--
	}

	if n == 0 {
		panic(ErrDivideByZero.New("dividing %v by zero", []int16(u)))
	}

	m := len(u)
	q := make(Vector, m)

	if m < n {
		return q
	}

	base := r.Base()
	mask := r.Mask()

	if n == 1 {
		// Rolling remainder.
		var k int16

		d := v[0]

		for j := m - 1; j >= 0; j-- {
			val := k*base + u[j]
			q[j] = val / d
			k = val - q[j]*d
		}

		return q
	}

	// Shift the divisor so the high bit of its leading digit is set, and the
	// dividend by the same amount.
	s := Nlz(v[n-1], r.bits)

	vn := make(Vector, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = (LeftShift(v[i], s) | ArithRightShift(v[i-1], r.bits-s)) & mask
	}
	vn[0] = LeftShift(v[0], s) & mask

	un := make(Vector, m+1)
	un[m] = ArithRightShift(u[m-1], r.bits-s)
	for i := m - 1; i > 0; i-- {
		un[i] = (LeftShift(u[i], s) | ArithRightShift(u[i-1], r.bits-s)) & mask
	}
	un[0] = LeftShift(u[0], s) & mask

	for j := m - n; j >= 0; j-- {
		// Estimate q[j] and correct it downward while it overshoots.
		val := un[j+n]*base + un[j+n-1]
		qhat := val / vn[n-1]
		rhat := val - qhat*vn[n-1]

		for qhat >= base || qhat*vn[n-2] > base*rhat+un[j+n-2] {
			qhat--
			rhat += vn[n-1]

			if rhat >= base {
				break
			}
		}

		// Multiply and subtract. Digits wrap; the borrow is tracked in k.
		var k int16

		for i := 0; i < n; i++ {
			p := qhat * vn[i]
			t := un[i+j] - k - (p & mask)
			un[i+j] = t & mask
			k = ArithRightShift(p, r.bits) - ArithRightShift(t, r.bits)
		}

		t := un[j+n] - k
		un[j+n] = t

		q[j] = qhat

		if t < 0 {
			// Subtracted too much; add one divisor back.
			q[j]--
			k = 0

			for i := 0; i < n; i++ {
				t := un[i+j] + vn[i] + k
				un[i+j] = t & mask
				k = ArithRightShift(t, r.bits)
			}

			un[j+n] += k
		}
	}

	return q
}

func (r Radix) mustDigits() {
	if !r.digitSafe() {
		panic(Error.New("%d bit digits overflow a 16-bit host", r.bits))
	}
}
