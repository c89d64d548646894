package rasterio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ironsheep/image-script/internal/raster"
)

func TestDecodePPM(t *testing.T) {
	input := `P3
# created by hand
2 2
# max value next
255
255 0 0   0 255 0
0 0 255   10 20 30
`
	img, err := DecodePPM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodePPM failed: %v", err)
	}
	if img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("got %dx%d, want 2x2", img.Width(), img.Height())
	}

	tests := []struct {
		x, y int
		want raster.Pixel
	}{
		{0, 0, raster.Pixel{R: 255}},
		{1, 0, raster.Pixel{G: 255}},
		{0, 1, raster.Pixel{B: 255}},
		{1, 1, raster.Pixel{R: 10, G: 20, B: 30}},
	}
	for _, tt := range tests {
		got, _ := img.At(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("(%d,%d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecodePPM_FreeFormWhitespace(t *testing.T) {
	input := "P3 3 1 255 1 2 3 4 5 6\n7\n8\n9"
	img, err := DecodePPM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodePPM failed: %v", err)
	}
	p, _ := img.At(2, 0)
	if p != (raster.Pixel{R: 7, G: 8, B: 9}) {
		t.Errorf("(2,0) = %+v", p)
	}
}

func TestDecodePPM_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool // expect raster.ErrInvariant instead of ErrMalformed
	}{
		{"empty", "", false},
		{"wrong magic", "P6\n1 1\n255\n0 0 0\n", false},
		{"non-integer width", "P3\nx 1\n255\n0 0 0\n", false},
		{"missing height", "P3\n1\n", false},
		{"zero max value", "P3\n1 1\n0\n0 0 0\n", false},
		{"max value too large", "P3\n1 1\n65535\n0 0 0\n", false},
		{"negative width", "P3\n-1 1\n255\n", false},
		{"truncated pixels", "P3\n2 1\n255\n1 2 3 4 5\n", false},
		{"size overflows", "P3\n2147483648 2147483648\n255\n0 0 0\n", false},
		{"huge height", "P3\n1 9223372036854775807\n255\n0 0 0\n", false},
		{"non-integer pixel", "P3\n1 1\n255\n1 two 3\n", false},
		{"channel out of range", "P3\n1 1\n255\n1 2 300\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodePPM(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if img != nil {
				t.Error("no image should be returned on error")
			}
			if tt.invalid {
				if !errors.Is(err, raster.ErrInvariant) {
					t.Errorf("expected raster.ErrInvariant, got %v", err)
				}
			} else if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestEncodePPM_Exact(t *testing.T) {
	img, _ := raster.New(2, 2)
	img.SetPixel(0, 0, 255, 0, 0)
	img.SetPixel(1, 0, 0, 255, 0)
	img.SetPixel(0, 1, 0, 0, 255)
	img.SetPixel(1, 1, 10, 20, 30)

	var buf bytes.Buffer
	if err := EncodePPM(&buf, img); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}
	want := "P3\n2 2\n255\n255 0 0 0 255 0 \n0 0 255 10 20 30 \n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodePPM_Empty(t *testing.T) {
	img, _ := raster.New(0, 0)
	var buf bytes.Buffer
	if err := EncodePPM(&buf, img); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "P3\n0 0\n255\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestPPM_RoundTrip(t *testing.T) {
	img, _ := raster.New(5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			img.SetPixel(x, y, x*50, y*100, (x+y)*20)
		}
	}

	var buf bytes.Buffer
	if err := EncodePPM(&buf, img); err != nil {
		t.Fatal(err)
	}
	got, err := DecodePPM(&buf)
	if err != nil {
		t.Fatalf("DecodePPM failed: %v", err)
	}
	if !got.Equal(img) {
		t.Error("round trip changed the image")
	}
}
