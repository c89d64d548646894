package transform

import (
	"github.com/anthonynsimon/bild/convolution"

	"github.com/ironsheep/image-script/internal/raster"
)

var blurKernel = &convolution.Kernel{
	Matrix: []float64{
		1.0 / 16, 1.0 / 8, 1.0 / 16,
		1.0 / 8, 1.0 / 4, 1.0 / 8,
		1.0 / 16, 1.0 / 8, 1.0 / 16,
	},
	Width:  3,
	Height: 3,
}

var sharpenKernel = &convolution.Kernel{
	Matrix: []float64{
		-1.0 / 8, -1.0 / 8, -1.0 / 8, -1.0 / 8, -1.0 / 8,
		-1.0 / 8, 1.0 / 4, 1.0 / 4, 1.0 / 4, -1.0 / 8,
		-1.0 / 8, 1.0 / 4, 1.0, 1.0 / 4, -1.0 / 8,
		-1.0 / 8, 1.0 / 4, 1.0 / 4, 1.0 / 4, -1.0 / 8,
		-1.0 / 8, -1.0 / 8, -1.0 / 8, -1.0 / 8, -1.0 / 8,
	},
	Width:  5,
	Height: 5,
}

func blur(src *raster.Image) *raster.Image {
	return convolve(src, blurKernel)
}

func sharpen(src *raster.Image) *raster.Image {
	return convolve(src, sharpenKernel)
}

// convolve applies an odd-sized kernel centred on each pixel. Taps whose
// source coordinate lies outside the image contribute nothing.
//
// The kernels used here are symmetric, so correlation and convolution
// coincide and the kernel is not flipped.
func convolve(src *raster.Image, k convolution.Matrix) *raster.Image {
	kw, kh := k.MaxX(), k.MaxY()
	rx, ry := kw/2, kh/2
	w, h := src.Width(), src.Height()

	return mapRows(src, func(src, dst *raster.Image, y int) {
		for x := 0; x < w; x++ {
			var sr, sg, sb float64
			for ky := 0; ky < kh; ky++ {
				sy := y + ky - ry
				if sy < 0 || sy >= h {
					continue
				}
				for kx := 0; kx < kw; kx++ {
					sx := x + kx - rx
					if sx < 0 || sx >= w {
						continue
					}
					weight := k.At(kx, ky)
					i := src.PixOffset(sx, sy)
					sr += weight * float64(src.Pix[i])
					sg += weight * float64(src.Pix[i+1])
					sb += weight * float64(src.Pix[i+2])
				}
			}
			o := dst.PixOffset(x, y)
			dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2] = clamp(sr), clamp(sg), clamp(sb)
		}
	})
}
