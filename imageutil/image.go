// Package imageutil encodes and decodes the raster images produced by
// txt2img. It chooses the encoder from the file extension and keeps the
// directory creation as a separate step from the write.
package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// ToRGBA converts any image.Image to an *image.RGBA anchored at the
// origin. An *image.RGBA already anchored there is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// SameRGB reports whether two images have equal size and equal red,
// green and blue values everywhere. Alpha is ignored.
func SameRGB(a, b image.Image) bool {
	ra, rb := ToRGBA(a), ToRGBA(b)
	if ra.Bounds() != rb.Bounds() {
		return false
	}
	for y := 0; y < ra.Bounds().Dy(); y++ {
		for x := 0; x < ra.Bounds().Dx(); x++ {
			ca, cb := ra.RGBAAt(x, y), rb.RGBAAt(x, y)
			if ca.R != cb.R || ca.G != cb.G || ca.B != cb.B {
				return false
			}
		}
	}
	return true
}
