package transform

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/image-script/internal/raster"
)

// bandRows is the number of rows one goroutine fills. Images shorter than
// this stay on a single goroutine.
const bandRows = 16

// rowFunc fills row y of dst using only reads from src.
type rowFunc func(src, dst *raster.Image, y int)

// mapRows allocates the output image and fills it band by band, with at most
// GOMAXPROCS bands in flight. Each band owns a disjoint set of rows in dst, so
// no locking is needed. A panic in fn is re-raised on the calling goroutine.
func mapRows(src *raster.Image, fn rowFunc) *raster.Image {
	dst := raster.MustNew(src.Width(), src.Height())
	h := src.Height()
	if h == 0 || src.Width() == 0 {
		return dst
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < h; start += bandRows {
		start, end := start, min(start+bandRows, h)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("rows %d-%d: %v", start, end-1, r)
				}
			}()
			for y := start; y < end; y++ {
				fn(src, dst, y)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
	return dst
}

// mapPixels applies fn to every pixel independently.
func mapPixels(src *raster.Image, fn func(r, g, b uint8) (uint8, uint8, uint8)) *raster.Image {
	return mapRows(src, func(src, dst *raster.Image, y int) {
		i := src.PixOffset(0, y)
		end := i + src.Width()*3
		for ; i < end; i += 3 {
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = fn(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		}
	})
}
