package control

import (
	"encoding/binary"
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks one field at a time.
type Decoder interface {
	// Next moves to the next field. It returns false at the end of the
	// input or on error; check Err to tell them apart.
	Next() (ok bool)
	Err() (err error)

	// Seek moves the reading position to the end of the current field.
	Seek() (err error)

	Type() Type
	Depth() int
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
	Amount() (_ uint64, err error)

	// Enter moves into the current Unbounded container so that Next reads
	// the fields inside it instead of skipping past them.
	Enter() (err error)
}

type decoder struct {
	r io.Reader

	consumed uint64
	depth    int

	value    [1]byte
	t        Type
	finished bool

	size   uint64
	data   []byte
	amount uint64

	err error
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

func (d *decoder) read(n uint64) (bs []byte, err error) {
	bs = make([]byte, n)

	_, err = io.ReadFull(d.r, bs)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	d.consumed += n

	return bs, nil
}

func (d *decoder) Seek() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.finished || d.consumed == 0 {
		return nil
	}

	switch d.t {
	case Data1, Data2, DataSize, DataSizeSize:
		_, err = d.Data()
	case SkipSize:
		_, err = d.Amount()
	case Unbounded:
		// Read fields until the matching end is found.
		target := d.depth - 1
		d.finished = true

		found := false
		for d.Next() {
			if d.t == End && d.depth == target {
				found = true

				break
			}
		}

		err = d.err
		if err == nil && !found {
			err = Error.New("unterminated container at depth %d", target+1)
		}
	default:
		d.finished = true
	}

	return err
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished {
		if d.Seek() != nil {
			return false
		}
	}

	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = nil
	d.amount = 0
	d.finished = false

	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.err = Error.Wrap(err)
		}

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	case Unbounded:
		d.depth++
	case End:
		if d.depth == 0 {
			d.err = Error.New("unexpected container end (not in a container)")

			return false
		}

		d.depth--
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Depth() int {
	return d.depth
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSize, SkipSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case DataSizeSize:
		sizeBytes, err := d.read(uint64(d.value[0]&d.t.Mask) + 1)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads the data bytes of the field. If the field does not contain data
// it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	switch d.t {
	case Data, Data1, Data2, DataSize, DataSizeSize:
	default:
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case Data1, Data2:
		rest, err := d.read(size - 1)
		if err != nil {
			return nil, err
		}

		d.data = append([]byte{d.value[0] & d.t.Mask}, rest...)
	case DataSize, DataSizeSize:
		d.data, err = d.read(size)
		if err != nil {
			return nil, err
		}
	}

	d.finished = true

	return d.data, nil
}

func (d *decoder) Enter() (err error) {
	if d.t != Unbounded {
		d.err = oops.Trace(ErrInvalidOperation)

		return d.err
	}

	d.finished = true

	return nil
}

// Amount returns the skip amount. If the current field type is not SkipSize,
// then it returns 0 and ErrInvalidOperation.
func (d *decoder) Amount() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.amount = 0
			d.err = err
		}
	}()

	if d.t != SkipSize {
		return 0, oops.Trace(ErrInvalidOperation)
	}

	if d.amount != 0 {
		return d.amount, nil
	}

	size, err := d.Size()
	if err != nil {
		return 0, err
	}

	amountBytes, err := d.read(size)
	if err != nil {
		return 0, err
	}

	padBytes := make([]byte, 8-len(amountBytes))
	amountBytes = append(padBytes, amountBytes...)

	d.amount = binary.BigEndian.Uint64(amountBytes) + 1
	d.finished = true

	return d.amount, nil
}
