package render

import (
	"image"
	"image/color"

	"github.com/calebcase/fixray/fixed"
	"github.com/calebcase/fixray/integer"
)

// Target receives developed pixels. *image.Gray is a Target.
type Target interface {
	Bounds() image.Rectangle
	SetGray(x, y int, c color.Gray)
}

var _ Target = (*image.Gray)(nil)

// DevelopOptions controls Develop.
type DevelopOptions struct {
	// Dither reduces the image to black and white with Floyd-Steinberg error
	// diffusion.
	Dither bool
}

// Develop returns the gray image of f.
func Develop(f *Frame, opts DevelopOptions) (img *image.Gray, err error) {
	img = image.NewGray(image.Rect(0, 0, int(f.Width), int(f.Height)))

	err = DevelopTo(img, f, opts)
	if err != nil {
		return nil, err
	}

	return img, nil
}

var (
	one     = fixed.From(1)
	half    = fixed.FromFraction(1, 2)
	sixteen = fixed.From(16)
)

// DevelopTo writes f to the top left corner of t.
//
// Each intensity is gamma corrected with a square root. Without dithering
// the result is quantized to 256 levels, clamped to [0, 1]. With dithering
// each pixel becomes black or white at the 1/2 threshold and the
// quantization error is pushed to the unvisited neighbors:
//
//	      *   7
//	  3   5   1      (sixteenths)
func DevelopTo(t Target, f *Frame, opts DevelopOptions) (err error) {
	defer Error.WrapP(&err)
	defer integer.Recover(&err)

	b := t.Bounds()
	if b.Dx() < int(f.Width) || b.Dy() < int(f.Height) {
		return Error.New("target %v smaller than %dx%d frame", b, f.Width, f.Height)
	}

	cur := make([]fixed.Number, f.Width)
	next := make([]fixed.Number, f.Width)

	for y := int16(0); y < f.Height; y++ {
		for x := int16(0); x < f.Width; x++ {
			v := gamma(f.At(x, y))

			if opts.Dither {
				v.Add(cur[x])

				var out fixed.Number
				if v.Cmp(half) >= 0 {
					out = one
				}

				qe := v
				qe.Sub(out)
				qe.Div(sixteen)

				diffuse(cur, int(x)+1, qe, 7)
				diffuse(next, int(x)-1, qe, 3)
				diffuse(next, int(x), qe, 5)
				diffuse(next, int(x)+1, qe, 1)

				v = out
			}

			t.SetGray(b.Min.X+int(x), b.Min.Y+int(y), Gray(v))
		}

		cur, next = next, cur
		clear(next)
	}

	return nil
}

func gamma(v fixed.Number) fixed.Number {
	if !v.IsPositive() {
		return fixed.Number{}
	}

	v.Sqrt()

	return v
}

func diffuse(row []fixed.Number, x int, qe fixed.Number, weight int16) {
	if x < 0 || x >= len(row) {
		return
	}

	qe.Mul(fixed.From(weight))
	row[x].Add(qe)
}

// Gray quantizes an intensity in [0, 1] to 8 bits. Values outside the range
// are clamped.
func Gray(v fixed.Number) color.Gray {
	switch {
	case !v.IsPositive():
		return color.Gray{Y: 0}
	case !v.Less(one):
		return color.Gray{Y: 255}
	}

	return color.Gray{Y: uint8(v.Frac16() >> 7)}
}
