package render

import (
	"fmt"

	"github.com/calebcase/fixray/fixed"
)

// Frame is a rendered image of linear intensities, row major with the top
// row first.
type Frame struct {
	Width  int16
	Height int16
	Pixels []fixed.Number
}

// NewFrame returns a black frame.
func NewFrame(width, height int16) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]fixed.Number, int(width)*int(height)),
	}
}

func (f *Frame) index(x, y int16) int {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		panic(fmt.Sprintf("render: pixel (%d, %d) outside %dx%d frame", x, y, f.Width, f.Height))
	}

	return int(y)*int(f.Width) + int(x)
}

// At returns the intensity at (x, y).
func (f *Frame) At(x, y int16) fixed.Number {
	return f.Pixels[f.index(x, y)]
}

// Set sets the intensity at (x, y).
func (f *Frame) Set(x, y int16, v fixed.Number) {
	f.Pixels[f.index(x, y)] = v
}

// Row returns the pixels of row y.
func (f *Frame) Row(y int16) []fixed.Number {
	i := f.index(0, y)

	return f.Pixels[i : i+int(f.Width)]
}
