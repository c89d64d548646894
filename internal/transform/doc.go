// Package transform implements the closed catalog of pixel transformations.
//
// Every transformation is a Func: it reads a source image and returns a newly
// allocated image of the same dimensions. The source is never modified.
//
// # Catalog
//
// The catalog maps command names to transformations:
//   - "red-component", "green-component", "blue-component": replicate one channel
//   - "value-component": max(R,G,B) in every channel
//   - "intensity-component": (R+G+B)/3 with integer division
//   - "luma-component": 0.2126R + 0.7152G + 0.0722B, truncated
//   - "blur": 3x3 Gaussian-like kernel
//   - "sharpen": 5x5 kernel
//   - "grayscale": luma coefficients applied as a color matrix
//   - "sepia": classic sepia color matrix
//
// Brighten takes a parameter and so lives outside the table; call
// Brighten(delta) to obtain its Func.
//
// # Numeric Rules
//
// Intermediate sums are computed in float64, truncated toward zero, then
// clamped to [0,255].
//
// # Edge Handling
//
// Kernel taps that fall outside the image are skipped. The remaining weights
// are not renormalized, so a blurred uniform image is darker at its borders
// than in its interior.
package transform
