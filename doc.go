/*
Package txt2img renders text into raster images using a fixed-height bitmap
font.

The pipeline is

	text → Normalize → Compose → Scale → Colorize → imageutil.SaveImage

Every stage except the final write is pure and allocates its own buffers, so
a Renderer (and the package-level DefaultTable) can be shared freely between
goroutines.

The built-in font has glyphs of seven rows and variable width. Uppercase
letters reuse the lowercase shapes. Characters without a glyph are drawn
with the '?' glyph.
*/
package txt2img

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// ErrInvalidArgument is wrapped by every validation failure of this package:
// bad scale factors, malformed colors, negative spacing and glyph tables
// with inconsistent row counts.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// tracer writes to trace with key 'txt2img'
func tracer() tracing.Trace {
	return tracing.Select("txt2img")
}
