package raster

import "math"

// MaxChannel is the largest value a single color channel may hold.
const MaxChannel = 255

// Pixel is a single RGB sample with 8-bit channels.
type Pixel struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
}

// NewPixel validates the three channel values and returns the pixel.
//
// Returns *ValueError naming the first channel outside [0,255]. Values are
// never clamped.
func NewPixel(r, g, b int) (Pixel, error) {
	if err := checkChannel("red", r); err != nil {
		return Pixel{}, err
	}
	if err := checkChannel("green", g); err != nil {
		return Pixel{}, err
	}
	if err := checkChannel("blue", b); err != nil {
		return Pixel{}, err
	}
	return Pixel{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func checkChannel(name string, v int) error {
	if v < 0 || v > MaxChannel {
		return &ValueError{Field: name, Value: v}
	}
	return nil
}

// Image is a fixed-size RGB pixel buffer.
//
// Dimensions are set at construction and never change. The zero value is a
// valid 0x0 image.
//
// Image is not safe for concurrent mutation. Concurrent reads are fine, which
// is what the transform package relies on when it processes row bands in
// parallel.
type Image struct {
	// Pix holds the pixels in row-major order, three bytes (R, G, B) each.
	Pix []uint8

	width  int
	height int
}

// New allocates a black image of the given dimensions.
//
// Parameters:
//   - width: Number of columns. Must be >= 0.
//   - height: Number of rows. Must be >= 0.
//
// Returns:
//   - *Image: A zero-filled buffer.
//   - error: *ValueError if either dimension is negative, or if the buffer
//     size width*height*3 does not fit in an int.
func New(width, height int) (*Image, error) {
	if width < 0 {
		return nil, &ValueError{Field: "width", Value: width}
	}
	if height < 0 {
		return nil, &ValueError{Field: "height", Value: height}
	}
	if width > 0 && height > math.MaxInt/3/width {
		return nil, &ValueError{Field: "height", Value: height}
	}
	return &Image{
		Pix:    make([]uint8, width*height*3),
		width:  width,
		height: height,
	}, nil
}

// MustNew is like New but panics on negative dimensions. Intended for
// dimensions copied from an existing Image.
func MustNew(width, height int) *Image {
	img, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return img
}

// Width returns the number of columns.
func (m *Image) Width() int { return m.width }

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// InBounds reports whether (x, y) addresses a pixel of the image.
func (m *Image) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// PixOffset returns the index of the red byte of pixel (x, y) in Pix.
// The caller must ensure the coordinate is in bounds.
func (m *Image) PixOffset(x, y int) int {
	return (y*m.width + x) * 3
}

func (m *Image) check(x, y int) error {
	if !m.InBounds(x, y) {
		return &BoundsError{X: x, Y: y, Width: m.width, Height: m.height}
	}
	return nil
}

// Red returns the red channel of pixel (x, y).
func (m *Image) Red(x, y int) (int, error) {
	if err := m.check(x, y); err != nil {
		return 0, err
	}
	return int(m.Pix[m.PixOffset(x, y)]), nil
}

// Green returns the green channel of pixel (x, y).
func (m *Image) Green(x, y int) (int, error) {
	if err := m.check(x, y); err != nil {
		return 0, err
	}
	return int(m.Pix[m.PixOffset(x, y)+1]), nil
}

// Blue returns the blue channel of pixel (x, y).
func (m *Image) Blue(x, y int) (int, error) {
	if err := m.check(x, y); err != nil {
		return 0, err
	}
	return int(m.Pix[m.PixOffset(x, y)+2]), nil
}

// At returns the pixel at (x, y).
func (m *Image) At(x, y int) (Pixel, error) {
	if err := m.check(x, y); err != nil {
		return Pixel{}, err
	}
	i := m.PixOffset(x, y)
	return Pixel{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2]}, nil
}

// SetPixel overwrites the three channels of pixel (x, y).
//
// Bounds are checked before channel values, so an out-of-range coordinate
// always reports *BoundsError. On error the image is left unchanged.
func (m *Image) SetPixel(x, y, r, g, b int) error {
	if err := m.check(x, y); err != nil {
		return err
	}
	p, err := NewPixel(r, g, b)
	if err != nil {
		return err
	}
	i := m.PixOffset(x, y)
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = p.R, p.G, p.B
	return nil
}

// Clone returns a deep copy.
func (m *Image) Clone() *Image {
	pix := make([]uint8, len(m.Pix))
	copy(pix, m.Pix)
	return &Image{Pix: pix, width: m.width, height: m.height}
}

// Equal reports whether both images have the same dimensions and pixels.
func (m *Image) Equal(o *Image) bool {
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i := range m.Pix {
		if m.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// Mean returns the per-channel average over all pixels, truncated toward
// zero. An empty image yields a black pixel.
func (m *Image) Mean() Pixel {
	n := m.width * m.height
	if n == 0 {
		return Pixel{}
	}
	var r, g, b int
	for i := 0; i < len(m.Pix); i += 3 {
		r += int(m.Pix[i])
		g += int(m.Pix[i+1])
		b += int(m.Pix[i+2])
	}
	return Pixel{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}
