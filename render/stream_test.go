package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixray/control"
	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/integer"
)

func sample() *Frame {
	f := NewFrame(5, 3)
	f.Set(0, 0, fixed.From(1))
	f.Set(3, 0, fixed.FromFraction(-1, 2))
	f.Set(4, 1, fixed.FromRaw(integer.FromInt32(-1<<31)))
	f.Set(1, 2, fixed.FromRaw(integer.FromInt32(1)))
	f.Set(2, 2, fixed.FromRaw(integer.FromInt32(1<<31-1)))
	f.Set(3, 2, fixed.Pi())

	return f
}

// stream writes a hand built frame stream.
func stream(t *testing.T, fn func(enc control.Encoder) error) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	zw := lz4.NewWriter(buf)
	require.NoError(t, fn(control.NewEncoder(zw)))
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func header(enc control.Encoder, w, h int16) error {
	err := enc.Data(magic)
	if err != nil {
		return err
	}

	for _, v := range []int16{w, h} {
		data, err := integer.From(v).MarshalBinary()
		if err != nil {
			return err
		}

		err = enc.Data(data)
		if err != nil {
			return err
		}
	}

	return nil
}

func TestFrameStream(t *testing.T) {
	for _, f := range []*Frame{
		sample(),
		NewFrame(1, 1),
		NewFrame(300, 2),
		uniform(64, 1, fixed.FromFraction(1, 3)),
	} {
		buf := &bytes.Buffer{}
		require.NoError(t, WriteFrame(buf, f))

		t.Logf("%dx%d: %d bytes", f.Width, f.Height, buf.Len())

		g, err := ReadFrame(buf)
		require.NoError(t, err)
		require.Equal(t, f, g)
	}
}

func TestFrameStreamBlocks(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteFrame(buf, sample()))

	d := control.NewDecoder(lz4.NewReader(buf))

	var abbrs []string
	for d.Next() {
		if d.Type() == control.Unbounded {
			require.NoError(t, d.Enter())
		}

		abbrs = append(abbrs, d.Type().Abbr)
	}
	require.NoError(t, d.Err())

	dd := control.Data.Abbr
	d2 := control.Data2.Abbr
	ds := control.DataSize.Abbr
	sz := control.SkipSize.Abbr
	cu := control.Unbounded.Abbr
	ce := control.End.Abbr

	want := []string{
		ds, dd, dd,
		// 1, skip 2, -1/2, skip 1.
		cu, d2, sz, d2, sz, ce,
		// skip 4, min.
		cu, sz, ds, ce,
		// skip 1, 1, max, pi, skip 1.
		cu, sz, dd, ds, d2, sz, ce,
		control.Null.Abbr,
	}

	require.Equal(t, want, abbrs, spew.Sdump(abbrs))
}

func TestReadFrameInvalid(t *testing.T) {
	valid := &bytes.Buffer{}
	require.NoError(t, WriteFrame(valid, sample()))

	type TC struct {
		Name  string
		Input []byte
	}

	tcs := []TC{
		{"empty", nil},
		{"not lz4", []byte("fixray")},
		{"truncated", valid.Bytes()[:valid.Len()/2]},
		{"magic", stream(t, func(enc control.Encoder) error {
			return enc.Data([]byte("pixray"))
		})},
		{"size", stream(t, func(enc control.Encoder) error {
			return header(enc, 0, 1)
		})},
		{"missing row", stream(t, func(enc control.Encoder) error {
			err := header(enc, 1, 2)
			if err != nil {
				return err
			}

			err = enc.Unbound(func(enc control.Encoder) error {
				return enc.Skip(1)
			})
			if err != nil {
				return err
			}

			return enc.Null()
		})},
		{"short row", stream(t, func(enc control.Encoder) error {
			err := header(enc, 2, 1)
			if err != nil {
				return err
			}

			err = enc.Unbound(func(enc control.Encoder) error {
				return enc.Skip(1)
			})
			if err != nil {
				return err
			}

			return enc.Null()
		})},
		{"long row", stream(t, func(enc control.Encoder) error {
			err := header(enc, 1, 1)
			if err != nil {
				return err
			}

			err = enc.Unbound(func(enc control.Encoder) error {
				err := enc.Data([]byte{0b_0000_0010})
				if err != nil {
					return err
				}

				return enc.Data([]byte{0b_0000_0010})
			})
			if err != nil {
				return err
			}

			return enc.Null()
		})},
		{"long skip", stream(t, func(enc control.Encoder) error {
			err := header(enc, 1, 1)
			if err != nil {
				return err
			}

			err = enc.Unbound(func(enc control.Encoder) error {
				return enc.Skip(2)
			})
			if err != nil {
				return err
			}

			return enc.Null()
		})},
		{"nested", stream(t, func(enc control.Encoder) error {
			err := header(enc, 1, 1)
			if err != nil {
				return err
			}

			err = enc.Unbound(func(enc control.Encoder) error {
				return enc.Unbound(func(enc control.Encoder) error {
					return enc.Skip(1)
				})
			})
			if err != nil {
				return err
			}

			return enc.Null()
		})},
		{"no end", stream(t, func(enc control.Encoder) error {
			err := header(enc, 1, 1)
			if err != nil {
				return err
			}

			return enc.Unbound(func(enc control.Encoder) error {
				return enc.Skip(1)
			})
		})},
		{"trailing", stream(t, func(enc control.Encoder) error {
			err := header(enc, 1, 1)
			if err != nil {
				return err
			}

			err = enc.Unbound(func(enc control.Encoder) error {
				return enc.Skip(1)
			})
			if err != nil {
				return err
			}

			err = enc.Null()
			if err != nil {
				return err
			}

			return enc.Empty()
		})},
		{"bad pixel", stream(t, func(enc control.Encoder) error {
			err := header(enc, 1, 1)
			if err != nil {
				return err
			}

			err = enc.Unbound(func(enc control.Encoder) error {
				return enc.Data([]byte{1, 2, 3, 4, 5, 6})
			})
			if err != nil {
				return err
			}

			return enc.Null()
		})},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := ReadFrame(bytes.NewReader(tc.Input))
			require.Error(t, err)
			require.True(t, Error.Has(err), "%v", err)
		})
	}
}

func TestWritePNG(t *testing.T) {
	img, err := Develop(sample(), DevelopOptions{})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, WritePNG(buf, img))

	got, err := png.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), got.Bounds())

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			r, _, _, _ := got.At(x, y).RGBA()
			require.Equal(t, uint32(img.GrayAt(x, y).Y)*0x101, r, "(%d, %d)", x, y)
		}
	}
}
