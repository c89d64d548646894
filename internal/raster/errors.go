package raster

import (
	"errors"
	"fmt"
)

// ErrInvariant is matched by every error that reports a violated pixel buffer
// contract: an out-of-range coordinate or channel value.
var ErrInvariant = errors.New("raster invariant violated")

// BoundsError reports a coordinate outside the image grid.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("coordinates (%d,%d) outside image bounds %dx%d", e.X, e.Y, e.Width, e.Height)
}

// Is reports whether target is ErrInvariant.
func (e *BoundsError) Is(target error) bool {
	return target == ErrInvariant
}

// ValueError reports a channel or dimension value outside its legal range.
//
// Field names the offending quantity ("red", "green", "blue", "width" or
// "height").
type ValueError struct {
	Field string
	Value int
}

func (e *ValueError) Error() string {
	switch e.Field {
	case "width", "height":
		if e.Value < 0 {
			return fmt.Sprintf("%s must be non-negative, got %d", e.Field, e.Value)
		}
		return fmt.Sprintf("%s %d too large for image buffer", e.Field, e.Value)
	}
	return fmt.Sprintf("%s value %d outside range 0-255", e.Field, e.Value)
}

// Is reports whether target is ErrInvariant.
func (e *ValueError) Is(target error) bool {
	return target == ErrInvariant
}
