// Package raster provides the in-memory pixel buffer shared by every other
// package in the module.
//
// An Image is a fixed-size grid of 8-bit RGB pixels stored in a single flat
// slice. Pixels are addressed by (x, y) where x is the column and y is the row,
// with (0,0) at the top-left corner.
//
// # Coordinate System
//
//   - X: horizontal position, valid range 0 to width-1
//   - Y: vertical position, valid range 0 to height-1
//
// # Memory Layout
//
// Pix holds three bytes per pixel in row-major order, so the red channel of
// pixel (x, y) lives at Pix[(y*width+x)*3]. PixOffset computes that index.
// The layout mirrors image.NRGBA without the alpha byte.
//
// # Error Handling
//
// Accessors validate their arguments and never clamp silently:
//   - Coordinates outside the grid return *BoundsError
//   - Channel values outside [0,255] return *ValueError
//
// Both error types match ErrInvariant with errors.Is, which lets callers tell
// a broken pixel-level contract apart from recoverable I/O or parse failures.
package raster
