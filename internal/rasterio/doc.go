// Package rasterio reads and writes raster.Image values on disk.
//
// The format is chosen from the last three characters of the path, compared
// case-insensitively:
//   - "ppm": the plain-text P3 portable pixmap format, handled here
//   - anything else: delegated to github.com/disintegration/imaging, which
//     covers PNG, JPEG, GIF, BMP and TIFF. WebP files can be read but not
//     written.
//
// # P3 Format
//
// Reading drops every line whose first character is '#', then reads
// whitespace-separated tokens: the magic "P3", width, height, maximum channel
// value, and width*height RGB triples in row-major order from the top-left.
//
// Writing always produces:
//
//	P3
//	<width> <height>
//	255
//	r g b r g b ... (one line per row, each value followed by a space)
//
// # Error Handling
//
// Every failure is returned as *IOError carrying the operation and path. The
// wrapped cause can be inspected with errors.Is: ErrMalformed for bad P3
// content, ErrUnsupportedFormat for unknown extensions, raster.ErrInvariant
// for channel values out of range, and fs errors such as fs.ErrNotExist.
package rasterio
