package integer

import (
	"github.com/calebcase/fixray/limb"
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The encoding is the magnitude shifted left one bit with the sign in the
// trailing bit, big-endian, with leading zero bytes dropped:
//
//  +1  -> 0b0000_0010
//  -1  -> 0b0000_0011
//  +63 -> 0b0111_1110
//
// Zero encodes as a single zero byte. The most negative value needs five
// bytes.
func (x Int32) MarshalBinary() (data []byte, err error) {
	neg := x.IsNegative()

	m := x
	m.Abs()

	data = make([]byte, Limbs+1)

	var carry int16

	for k := 0; k < Limbs; k++ {
		l := m.parts[k]
		data[Limbs-k] = byte((limb.LeftShift(l, 1) | carry) & 0xFF)
		carry = limb.ArithRightShift(l, 7)
	}

	data[0] = byte(carry)

	if neg {
		data[Limbs] |= 1
	}

	for len(data) > 1 && data[0] == 0 {
		data = data[1:]
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int32) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 || len(data) > Limbs+1 {
		return Error.New("invalid encoded length: %d", len(data))
	}

	var buf [Limbs + 1]int16

	off := len(buf) - len(data)
	for i, b := range data {
		buf[off+i] = int16(b)
	}

	neg := buf[Limbs]&1 == 1

	if limb.ArithRightShift(buf[0], 1) != 0 {
		return Error.New("encoded value exceeds 32 bits: %08b", data)
	}

	m := make(limb.Vector, Limbs)
	carry := limb.LeftShift(buf[0]&1, 7)

	for i := 1; i < len(buf); i++ {
		m[Limbs-i] = limb.ArithRightShift(buf[i], 1) | carry
		carry = limb.LeftShift(buf[i]&1, 7)
	}

	if !fits(m, neg) {
		return Error.New("encoded magnitude exceeds 31 bits: %08b", data)
	}

	x.setMagnitude(m, neg)

	return nil
}
