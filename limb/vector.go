package limb

// Vector is a two's complement integer stored as limbs, least significant
// first. The radix of the limbs is not stored; every operation takes it from
// the Radix it is called on.
type Vector []int16

// Clone returns a copy of v that does not share storage with it.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)

	return c
}

// Validate panics with ErrInvariant if any limb of v is outside
// [0, r.Base()-1].
func (r Radix) Validate(v Vector) {
	mask := r.Mask()

	for i, l := range v {
		if l < 0 || l > mask {
			panic(ErrInvariant.New(
				"limb %d out of range [0, %d]: %v",
				i,
				mask,
				[]int16(v),
			))
		}
	}
}

// Load stores x into v, sign extended across every limb.
func (r Radix) Load(v Vector, x int16) {
	mask := r.Mask()

	for i := range v {
		v[i] = x & mask
		x = ArithRightShift(x, r.bits)
	}

	r.Validate(v)
}

// IsZero reports whether every limb of v is zero.
func (r Radix) IsZero(v Vector) bool {
	for _, l := range v {
		if l != 0 {
			return false
		}
	}

	return true
}

// IsNegative reports whether the sign bit of the top limb of v is set.
func (r Radix) IsNegative(v Vector) bool {
	if len(v) == 0 {
		return false
	}

	return v[len(v)-1]&r.Sign() != 0
}

// AddLimb adds c, a value in [0, r.Base()-1], to v and propagates the carry.
// A carry out of the top limb is dropped.
func (r Radix) AddLimb(v Vector, c int16) {
	if len(v) == 0 {
		return
	}

	base := r.Base()

	v[0] += c

	for i := range v {
		if v[i] < base {
			break
		}

		v[i] -= base
		if i+1 < len(v) {
			v[i+1]++
		}
	}

	r.Validate(v)
}

// Negate replaces v with its two's complement negation.
func (r Radix) Negate(v Vector) {
	mask := r.Mask()

	for i := range v {
		v[i] = ^v[i] & mask
	}

	r.AddLimb(v, 1)
}

// Add adds src to dst in place. The sum wraps at the width of the vector.
func (r Radix) Add(dst, src Vector) {
	if len(dst) != len(src) {
		panic(Error.New("length mismatch: %d != %d", len(dst), len(src)))
	}

	base := r.Base()

	for i := range dst {
		dst[i] += src[i]
	}

	for i := range dst {
		if dst[i] >= base {
			dst[i] -= base
			if i+1 < len(dst) {
				dst[i+1]++
			}
		}
	}

	r.Validate(dst)
}

// Sub subtracts src from dst in place by adding its negation.
func (r Radix) Sub(dst, src Vector) {
	neg := src.Clone()
	r.Negate(neg)
	r.Add(dst, neg)
}

// Split re-expresses v, stored in radix r, as digits of the narrower radix to.
// The width of r must be a multiple of the width of to.
func (r Radix) Split(v Vector, to Radix) Vector {
	per := r.per(to)
	mask := to.Mask()

	out := make(Vector, len(v)*int(per))

	for i, l := range v {
		for k := int16(0); k < per; k++ {
			out[i*int(per)+int(k)] = ArithRightShift(l, k*to.bits) & mask
		}
	}

	return out
}

// Join is the inverse of Split: it packs digits of radix from into limbs of
// radix r. Missing high digits are treated as zero.
func (r Radix) Join(v Vector, from Radix) Vector {
	per := int(r.per(from))

	out := make(Vector, (len(v)+per-1)/per)

	for i := range out {
		var l int16

		for k := 0; k < per && i*per+k < len(v); k++ {
			l |= LeftShift(v[i*per+k], int16(k)*from.bits)
		}

		out[i] = l
	}

	r.Validate(out)

	return out
}

func (r Radix) per(narrow Radix) int16 {
	if narrow.bits > r.bits || r.bits%narrow.bits != 0 {
		panic(Error.New(
			"cannot split %d bit limbs into %d bit digits",
			r.bits,
			narrow.bits,
		))
	}

	return r.bits / narrow.bits
}
