package transform

import "github.com/ironsheep/image-script/internal/raster"

// Luma coefficients (Rec. 709).
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// channel replicates channel c (0 red, 1 green, 2 blue) into all three
// output channels.
func channel(c int) Func {
	return func(src *raster.Image) *raster.Image {
		return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
			v := [3]uint8{r, g, b}[c]
			return v, v, v
		})
	}
}

func value(src *raster.Image) *raster.Image {
	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		v := max(r, g, b)
		return v, v, v
	})
}

func intensity(src *raster.Image) *raster.Image {
	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		v := uint8((int(r) + int(g) + int(b)) / 3)
		return v, v, v
	})
}

func luma(src *raster.Image) *raster.Image {
	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		v := clamp(lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b))
		return v, v, v
	})
}

// Brighten returns a transformation that adds delta to every channel and
// clamps the result. A negative delta darkens.
func Brighten(delta int) Func {
	return func(src *raster.Image) *raster.Image {
		return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
			return clampInt(int(r) + delta), clampInt(int(g) + delta), clampInt(int(b) + delta)
		})
	}
}
