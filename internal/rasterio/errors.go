package rasterio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports P3 content that cannot be parsed.
	ErrMalformed = errors.New("malformed ppm data")

	// ErrUnsupportedFormat reports a path whose extension no codec handles.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// IOError describes a failed load or save.
type IOError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
