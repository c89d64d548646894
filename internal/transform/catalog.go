package transform

import (
	"sort"

	"github.com/ironsheep/image-script/internal/raster"
)

// Func is a pure image transformation. Implementations must not modify src
// and must return an image with the same width and height.
type Func func(src *raster.Image) *raster.Image

// Catalog names.
const (
	RedComponent       = "red-component"
	GreenComponent     = "green-component"
	BlueComponent      = "blue-component"
	ValueComponent     = "value-component"
	IntensityComponent = "intensity-component"
	LumaComponent      = "luma-component"
	Blur               = "blur"
	Sharpen            = "sharpen"
	Grayscale          = "grayscale"
	Sepia              = "sepia"
)

var catalog = map[string]Func{
	RedComponent:       channel(0),
	GreenComponent:     channel(1),
	BlueComponent:      channel(2),
	ValueComponent:     value,
	IntensityComponent: intensity,
	LumaComponent:      luma,
	Blur:               blur,
	Sharpen:            sharpen,
	Grayscale:          grayscale,
	Sepia:              sepia,
}

// Lookup returns the transformation registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := catalog[name]
	return fn, ok
}

// Names returns the catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// clamp truncates v toward zero and limits it to [0,255].
func clamp(v float64) uint8 {
	return clampInt(int(v))
}

func clampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > raster.MaxChannel {
		return raster.MaxChannel
	}
	return uint8(v)
}
