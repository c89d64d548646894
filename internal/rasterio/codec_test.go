package rasterio

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/ironsheep/image-script/internal/raster"
)

// createTestPNG writes a PNG with a red top row and a semi-transparent blue
// bottom row, returning its path inside a per-test directory.
func createTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for x := 0; x < 3; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{255, 0, 0, 255})
		img.SetNRGBA(x, 1, color.NRGBA{0, 0, 200, 128})
	}

	path := filepath.Join(t.TempDir(), "pattern.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func newCodec() (*Codec, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return &Codec{Log: log}, hook
}

func TestIsPPM(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"koala.ppm", true},
		{"KOALA.PPM", true},
		{"dir/photo.Ppm", true},
		{"ppm", true},
		{"koala.png", false},
		{"koala.jpeg", false},
		{"pm", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPPM(tt.path); got != tt.want {
			t.Errorf("IsPPM(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCodec_LoadPNG(t *testing.T) {
	c, hook := newCodec()
	path := createTestPNG(t)

	img, err := c.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("got %dx%d, want 3x2", img.Width(), img.Height())
	}
	if p, _ := img.At(1, 0); p != (raster.Pixel{R: 255}) {
		t.Errorf("top row = %+v, want red", p)
	}
	// Non-premultiplied: alpha is dropped without darkening the color
	if p, _ := img.At(2, 1); p != (raster.Pixel{B: 200}) {
		t.Errorf("bottom row = %+v, want (0,0,200)", p)
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Message != "image loaded" {
		t.Fatalf("expected an \"image loaded\" log entry, got %+v", entry)
	}
	if entry.Data["path"] != path {
		t.Errorf("logged path = %v, want %s", entry.Data["path"], path)
	}
}

func TestCodec_SaveAndLoad(t *testing.T) {
	c, _ := newCodec()
	img, _ := raster.New(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetPixel(x, y, x*60, y*100, 17)
		}
	}

	dir := t.TempDir()
	for _, name := range []string{"out.ppm", "out.png", "out.bmp", "OUT.PPM"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := c.Save(path, img); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := c.Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !got.Equal(img) {
				t.Error("lossless round trip changed the image")
			}
		})
	}
}

func TestCodec_SaveJPEG(t *testing.T) {
	c := &Codec{JPEGQuality: 90, Log: logrus.New()}
	img, _ := raster.New(8, 8)
	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := c.Save(path, img); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := c.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Width() != 8 || got.Height() != 8 {
		t.Errorf("got %dx%d, want 8x8", got.Width(), got.Height())
	}
}

func TestCodec_LoadMissing(t *testing.T) {
	c, _ := newCodec()
	for _, path := range []string{"/nonexistent/a.png", "/nonexistent/a.ppm"} {
		img, err := c.Load(path)
		if img != nil {
			t.Errorf("%s: no image should be returned", path)
		}
		var ioe *IOError
		if !errors.As(err, &ioe) {
			t.Fatalf("%s: expected *IOError, got %v", path, err)
		}
		if ioe.Op != "load" || ioe.Path != path {
			t.Errorf("IOError = %+v", ioe)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("%s: expected fs.ErrNotExist, got %v", path, err)
		}
	}
}

func TestCodec_LoadGarbage(t *testing.T) {
	c, _ := newCodec()
	path := filepath.Join(t.TempDir(), "garbage.png")
	os.WriteFile(path, []byte("not an image"), 0o644)

	_, err := c.Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestCodec_LoadMalformedPPM(t *testing.T) {
	c, _ := newCodec()
	path := filepath.Join(t.TempDir(), "bad.ppm")
	os.WriteFile(path, []byte("P3\n2 2\n255\n1 2 3\n"), 0o644)

	_, err := c.Load(path)
	var ioe *IOError
	if !errors.As(err, &ioe) {
		t.Fatalf("expected *IOError, got %v", err)
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestCodec_SaveUnsupported(t *testing.T) {
	c, _ := newCodec()
	img, _ := raster.New(1, 1)
	path := filepath.Join(t.TempDir(), "out.xyz")

	err := c.Save(path, img)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("no file should be created for an unsupported format")
	}
}

func TestCodec_SaveUnwritable(t *testing.T) {
	c, _ := newCodec()
	img, _ := raster.New(1, 1)
	err := c.Save("/nonexistent/dir/out.ppm", img)
	var ioe *IOError
	if !errors.As(err, &ioe) || ioe.Op != "save" {
		t.Errorf("expected save *IOError, got %v", err)
	}
}

func TestCodec_SavePPMRemovesPartialFile(t *testing.T) {
	c, _ := newCodec()
	img, _ := raster.New(2, 2)
	path := filepath.Join(t.TempDir(), "partial.ppm")

	errDiskFull := errors.New("disk full")
	encodePPM = func(w io.Writer, img *raster.Image) error {
		io.WriteString(w, "P3\n2 2\n")
		return errDiskFull
	}
	t.Cleanup(func() { encodePPM = EncodePPM })

	err := c.Save(path, img)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected the write error, got %v", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("partial file should be removed, stat returned %v", statErr)
	}
}

func TestToNRGBA(t *testing.T) {
	img, _ := raster.New(2, 1)
	img.SetPixel(1, 0, 1, 2, 3)
	out := ToNRGBA(img)
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{1, 2, 3, 255}) {
		t.Errorf("NRGBAAt(1,0) = %+v", got)
	}
	if got := out.NRGBAAt(0, 0); got.A != 255 {
		t.Errorf("alpha = %d, want 255", got.A)
	}
}
