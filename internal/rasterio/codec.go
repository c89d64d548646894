package rasterio

import (
	"errors"
	"image"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/image-script/internal/raster"
)

// DefaultJPEGQuality is used when a Codec has no quality set.
const DefaultJPEGQuality = 95

// Codec loads and saves images, choosing the format from the path.
//
// The zero value is usable: it writes JPEG at DefaultJPEGQuality and logs
// through the logrus standard logger.
type Codec struct {
	// JPEGQuality is the encoder quality for .jpg/.jpeg output, 1-100.
	JPEGQuality int

	// Log receives debug records for every load and save. Nil means the
	// logrus standard logger.
	Log logrus.FieldLogger
}

func (c *Codec) logger() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

// IsPPM reports whether path is handled by the P3 codec: its last three
// characters are "ppm" in any case.
func IsPPM(path string) bool {
	return len(path) >= 3 && strings.EqualFold(path[len(path)-3:], "ppm")
}

// Load reads the image at path.
//
// Parameters:
//   - path: File to read. A path ending in "ppm" (any case) is parsed as
//     plain-text P3; anything else is decoded by content through imaging.
//
// Returns:
//   - *raster.Image: The decoded pixels, alpha dropped.
//   - error: *IOError on any failure. No partial image is ever returned.
//
// # Errors
//
//   - Wraps fs errors if the file cannot be opened
//   - Wraps ErrMalformed for bad P3 content
//   - Wraps ErrUnsupportedFormat if no registered decoder recognizes the data
func (c *Codec) Load(path string) (*raster.Image, error) {
	start := time.Now()

	var img *raster.Image
	var err error
	format := "ppm"
	if IsPPM(path) {
		img, err = loadPPM(path)
	} else {
		format = "codec"
		img, err = loadCodec(path)
	}
	if err != nil {
		return nil, &IOError{Op: "load", Path: path, Err: err}
	}

	c.logger().WithFields(logrus.Fields{
		"path":    path,
		"format":  format,
		"width":   img.Width(),
		"height":  img.Height(),
		"elapsed": time.Since(start),
	}).Debug("image loaded")
	return img, nil
}

// Save writes img to path, creating or truncating the file.
//
// Parameters:
//   - path: Destination file. The extension selects the encoder: "ppm" for
//     P3, otherwise jpg/jpeg/png/gif/bmp/tif/tiff.
//   - img: The image to write.
//
// Returns:
//   - error: *IOError on any failure. An unknown extension wraps
//     ErrUnsupportedFormat and nothing is written; a failed P3 write removes
//     the incomplete file.
func (c *Codec) Save(path string, img *raster.Image) error {
	var err error
	if IsPPM(path) {
		err = savePPM(path, img)
	} else {
		err = c.saveCodec(path, img)
	}
	if err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}

	c.logger().WithFields(logrus.Fields{
		"path":   path,
		"width":  img.Width(),
		"height": img.Height(),
	}).Debug("image saved")
	return nil
}

func loadPPM(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePPM(f)
}

// encodePPM is replaced in tests to simulate write failures.
var encodePPM = EncodePPM

// savePPM writes img to path. A file left incomplete by a failed write is
// removed.
func savePPM(path string, img *raster.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = encodePPM(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func loadCodec(path string) (*raster.Image, error) {
	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, errors.Join(ErrUnsupportedFormat, err)
		}
		return nil, err
	}
	return FromImage(src), nil
}

func (c *Codec) saveCodec(path string, img *raster.Image) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return ErrUnsupportedFormat
	}
	quality := c.JPEGQuality
	if quality == 0 {
		quality = DefaultJPEGQuality
	}
	return imaging.Save(ToNRGBA(img), path, imaging.JPEGQuality(quality))
}

// FromImage converts any decoded image to a raster.Image. Colors are taken
// non-premultiplied and the alpha channel is dropped.
func FromImage(src image.Image) *raster.Image {
	nrgba := imaging.Clone(src)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	dst := raster.MustNew(w, h)
	for y := 0; y < h; y++ {
		si := y * nrgba.Stride
		di := dst.PixOffset(0, y)
		for x := 0; x < w; x++ {
			dst.Pix[di], dst.Pix[di+1], dst.Pix[di+2] = nrgba.Pix[si], nrgba.Pix[si+1], nrgba.Pix[si+2]
			si += 4
			di += 3
		}
	}
	return dst
}

// ToNRGBA converts img to a fully opaque *image.NRGBA anchored at (0,0).
func ToNRGBA(img *raster.Image) *image.NRGBA {
	w, h := img.Width(), img.Height()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := img.PixOffset(0, y)
		di := y * dst.Stride
		for x := 0; x < w; x++ {
			dst.Pix[di], dst.Pix[di+1], dst.Pix[di+2], dst.Pix[di+3] = img.Pix[si], img.Pix[si+1], img.Pix[si+2], 0xff
			si += 3
			di += 4
		}
	}
	return dst
}
