package transform

import "github.com/ironsheep/image-script/internal/raster"

// colorMatrix maps an input (R,G,B) column vector to an output one.
// Row i holds the coefficients of output channel i.
type colorMatrix [3][3]float64

var sepiaMatrix = colorMatrix{
	{0.393, 0.769, 0.189},
	{0.349, 0.686, 0.168},
	{0.272, 0.534, 0.131},
}

var grayscaleMatrix = colorMatrix{
	{lumaR, lumaG, lumaB},
	{lumaR, lumaG, lumaB},
	{lumaR, lumaG, lumaB},
}

func (m colorMatrix) apply(src *raster.Image) *raster.Image {
	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		fr, fg, fb := float64(r), float64(g), float64(b)
		var out [3]uint8
		for i, row := range m {
			out[i] = clamp(row[0]*fr + row[1]*fg + row[2]*fb)
		}
		return out[0], out[1], out[2]
	})
}

func sepia(src *raster.Image) *raster.Image {
	return sepiaMatrix.apply(src)
}

func grayscale(src *raster.Image) *raster.Image {
	return grayscaleMatrix.apply(src)
}
