package rasterio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironsheep/image-script/internal/raster"
)

const ppmMagic = "P3"

// DecodePPM reads a plain-text P3 image.
//
// Lines starting with '#' are ignored wherever they appear. The maximum
// channel value must be between 1 and 255; channel values are not rescaled
// and must themselves lie in [0,255].
//
// Parameters:
//   - r: The P3 text stream.
//
// Returns:
//   - *raster.Image: The decoded image.
//   - error: Wraps ErrMalformed for a bad header, a header whose dimensions
//     exceed the pixel data that follows, or a non-integer token. Wraps
//     *raster.ValueError for an out-of-range channel.
func DecodePPM(r io.Reader) (*raster.Image, error) {
	tokens, err := ppmTokens(r)
	if err != nil {
		return nil, err
	}
	next := 0
	readInt := func(what string) (int, error) {
		if next >= len(tokens) {
			return 0, fmt.Errorf("%w: missing %s", ErrMalformed, what)
		}
		v, err := strconv.Atoi(tokens[next])
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformed, what, tokens[next])
		}
		next++
		return v, nil
	}

	if len(tokens) == 0 || tokens[0] != ppmMagic {
		return nil, fmt.Errorf("%w: expected magic %s", ErrMalformed, ppmMagic)
	}
	next++

	width, err := readInt("width")
	if err != nil {
		return nil, err
	}
	height, err := readInt("height")
	if err != nil {
		return nil, err
	}
	maxValue, err := readInt("max value")
	if err != nil {
		return nil, err
	}
	if maxValue < 1 || maxValue > raster.MaxChannel {
		return nil, fmt.Errorf("%w: max value %d outside range 1-255", ErrMalformed, maxValue)
	}

	if width > 0 && height > (len(tokens)-next)/3/width {
		return nil, fmt.Errorf("%w: %dx%d header but only %d values follow", ErrMalformed, width, height, len(tokens)-next)
	}

	img, err := raster.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, err := readInt("pixel data")
			if err != nil {
				return nil, err
			}
			g, err := readInt("pixel data")
			if err != nil {
				return nil, err
			}
			b, err := readInt("pixel data")
			if err != nil {
				return nil, err
			}
			if err := img.SetPixel(x, y, r, g, b); err != nil {
				return nil, fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
		}
	}
	return img, nil
}

// ppmTokens splits the non-comment lines of r into whitespace-separated
// tokens.
func ppmTokens(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// EncodePPM writes img as plain-text P3 with a maximum value of 255.
func EncodePPM(w io.Writer, img *raster.Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", ppmMagic, img.Width(), img.Height(), raster.MaxChannel)

	buf := make([]byte, 0, 16)
	for y := 0; y < img.Height(); y++ {
		i := img.PixOffset(0, y)
		for x := 0; x < img.Width(); x++ {
			for c := 0; c < 3; c++ {
				buf = strconv.AppendInt(buf[:0], int64(img.Pix[i+c]), 10)
				buf = append(buf, ' ')
				bw.Write(buf)
			}
			i += 3
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
