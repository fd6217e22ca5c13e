// Package render shades scenes into frames of linear intensities and develops
// frames into 8-bit gray images.
//
// Rendering and developing are separate steps. A Frame holds the light
// reaching each pixel before gamma correction, so it can be stored with
// WriteFrame and developed later with different options.
//
// Frame Stream
//
// WriteFrame stores a frame as an LZ4 stream of control blocks:
//
//	Data "fixray"          magic
//	Data width             integer.Int32 binary form
//	Data height
//	Unbounded              one container per row, top row first
//	  Data pixel           fixed.Number binary form
//	  Skip n               n black pixels
//	End
//	...
//	Null                   end of frame
//
// A row holds exactly width pixels.
package render
