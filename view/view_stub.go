//go:build !cgo

package view

import "image"

// Show reports that window mode is unavailable without cgo.
func Show(title string, img image.Image, scale int) error {
	return Error.New("window mode requires cgo (build with CGO_ENABLED=1)")
}
