package render

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/pierrec/lz4"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixray/control"
	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/integer"
)

var magic = []byte("fixray")

// WriteFrame writes f to w as an LZ4 compressed frame stream.
func WriteFrame(w io.Writer, f *Frame) (err error) {
	defer Error.WrapP(&err)

	zw := lz4.NewWriter(w)
	defer func() {
		err = errs.Combine(err, zw.Close())
	}()

	enc := control.NewEncoder(zw)

	err = enc.Data(magic)
	if err != nil {
		return err
	}

	for _, v := range []int16{f.Width, f.Height} {
		data, err := integer.From(v).MarshalBinary()
		if err != nil {
			return err
		}

		err = enc.Data(data)
		if err != nil {
			return err
		}
	}

	for y := int16(0); y < f.Height; y++ {
		err = enc.Unbound(func(enc control.Encoder) error {
			return writeRow(enc, f.Row(y))
		})
		if err != nil {
			return err
		}
	}

	return enc.Null()
}

func writeRow(enc control.Encoder, row []fixed.Number) (err error) {
	var black uint64

	for _, v := range row {
		if v.IsZero() {
			black++

			continue
		}

		if black > 0 {
			err = enc.Skip(black)
			if err != nil {
				return err
			}

			black = 0
		}

		data, err := v.MarshalBinary()
		if err != nil {
			return err
		}

		err = enc.Data(data)
		if err != nil {
			return err
		}
	}

	if black > 0 {
		return enc.Skip(black)
	}

	return nil
}

// ReadFrame reads a frame written by WriteFrame.
func ReadFrame(r io.Reader) (f *Frame, err error) {
	defer Error.WrapP(&err)

	d := control.NewDecoder(lz4.NewReader(r))

	data, err := readData(d)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(data, magic) {
		return nil, Error.New("not a frame stream: %q", data)
	}

	var size [2]int16

	for i := range size {
		data, err := readData(d)
		if err != nil {
			return nil, err
		}

		var v integer.Int32

		err = v.UnmarshalBinary(data)
		if err != nil {
			return nil, err
		}

		n := v.Int32()
		if n <= 0 || n > 1<<15-1 {
			return nil, Error.New("invalid frame size: %d", n)
		}

		size[i] = int16(n)
	}

	f = NewFrame(size[0], size[1])

	for y := int16(0); y < f.Height; y++ {
		if !d.Next() {
			return nil, errs.Combine(Error.New("missing row %d", y), d.Err())
		}

		if d.Type() != control.Unbounded {
			return nil, Error.New("row %d: unexpected %s", y, d.Type())
		}

		err = d.Enter()
		if err != nil {
			return nil, err
		}

		err = readRow(d, f.Row(y))
		if err != nil {
			return nil, Error.New("row %d: %v", y, err)
		}
	}

	if !d.Next() || d.Type() != control.Null {
		return nil, errs.Combine(Error.New("missing end of frame"), d.Err())
	}

	if d.Next() {
		return nil, Error.New("unexpected %s after end of frame", d.Type())
	}

	err = d.Err()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func readData(d control.Decoder) (data []byte, err error) {
	if !d.Next() {
		return nil, errs.Combine(Error.New("unexpected end of stream"), d.Err())
	}

	return d.Data()
}

func readRow(d control.Decoder, row []fixed.Number) (err error) {
	depth := d.Depth()
	x := 0

	for d.Next() {
		switch d.Type() {
		case control.End:
			if d.Depth() != depth-1 {
				return Error.New("unexpected end at depth %d", d.Depth())
			}

			if x != len(row) {
				return Error.New("%d of %d pixels", x, len(row))
			}

			return nil
		case control.SkipSize:
			amount, err := d.Amount()
			if err != nil {
				return err
			}

			if amount > uint64(len(row)-x) {
				return Error.New("skip of %d past end of row", amount)
			}

			x += int(amount)
		case control.Data, control.Data1, control.Data2, control.DataSize:
			if x >= len(row) {
				return Error.New("too many pixels")
			}

			data, err := d.Data()
			if err != nil {
				return err
			}

			err = row[x].UnmarshalBinary(data)
			if err != nil {
				return err
			}

			x++
		default:
			return Error.New("unexpected %s", d.Type())
		}
	}

	return errs.Combine(Error.New("unterminated row"), d.Err())
}

// WritePNG writes img to w as a PNG.
func WritePNG(w io.Writer, img image.Image) (err error) {
	return Error.Wrap(png.Encode(w, img))
}
