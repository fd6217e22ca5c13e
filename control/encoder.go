package control

import (
	"io"
	"math/big"
)

// Encoder writes control blocks.
type Encoder interface {
	// Data writes a data field using the smallest block that holds it.
	Data(data []byte) (err error)

	// Unbound writes an unbounded container holding whatever fn writes.
	Unbound(fn func(Encoder) error) (err error)

	// Skip writes a skip of amount fields.
	Skip(amount uint64) (err error)

	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(bs ...byte) (err error) {
	_, err = e.w.Write(bs)

	return Error.Wrap(err)
}

func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write(Data.Prefix | data[0])
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write(Data1.Prefix|data[0], data[1])
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write(Data2.Prefix|data[0], data[1], data[2])
	case size <= 64:
		return e.write(append([]byte{DataSize.Prefix | byte(size-1)}, data...)...)
	}

	// Sizes are indexed from 1.
	sb := new(big.Int).SetUint64(uint64(size - 1)).Bytes()
	if len(sb) > int(DataSizeSize.Mask)+1 {
		return Error.New("unimplemented: size=%d", size)
	}

	err = e.write(append([]byte{DataSizeSize.Prefix | byte(len(sb)-1)}, sb...)...)
	if err != nil {
		return err
	}

	return e.write(data...)
}

func (e *encoder) Unbound(fn func(Encoder) error) (err error) {
	err = e.write(Unbounded.Prefix)
	if err != nil {
		return err
	}

	err = fn(e)
	if err != nil {
		return err
	}

	return e.write(End.Prefix)
}

func (e *encoder) Skip(amount uint64) (err error) {
	if amount == 0 {
		return Error.New("invalid: amount=0")
	}

	ab := new(big.Int).SetUint64(amount - 1).Bytes()
	if len(ab) == 0 {
		ab = []byte{0b_0000_0000}
	}

	if len(ab) > int(SkipSize.Mask)+1 {
		return Error.New("invalid: amount=%d len=%d", amount, len(ab))
	}

	return e.write(append([]byte{SkipSize.Prefix | byte(len(ab)-1)}, ab...)...)
}

func (e *encoder) Empty() (err error) {
	return e.write(Empty.Prefix)
}

func (e *encoder) Null() (err error) {
	return e.write(Null.Prefix)
}
