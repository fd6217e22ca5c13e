//go:build cgo

package view

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a desktop window displaying img at the given integer scale. It
// blocks until the window is closed or Escape is pressed.
func Show(title string, img image.Image, scale int) error {
	if scale < 1 {
		scale = 1
	}

	b := img.Bounds()

	w := &window{
		src:    img,
		width:  b.Dx(),
		height: b.Dy(),
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.width*scale, w.height*scale)
	ebiten.SetTPS(30)

	return Error.Wrap(ebiten.RunGame(w))
}

type window struct {
	src    image.Image
	img    *ebiten.Image
	width  int
	height int
}

func (w *window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImageFromImage(w.src)
	}

	screen.DrawImage(w.img, nil)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
