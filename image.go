package txt2img

import (
	"image"
	"image/color"
)

// PixelBuffer is a dense RGB raster, three bytes per pixel, row-major.
// It implements image.Image, so it can be handed to any encoder.
type PixelBuffer struct {
	width, height int
	Pix           []uint8
}

// NewPixelBuffer returns a black width×height buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Colorize paints m: set cells become fg, clear cells bg. The buffer has
// m.Cols columns and m.Rows rows.
func Colorize(m *Matrix, fg, bg RGB) *PixelBuffer {
	buf := NewPixelBuffer(m.Cols, m.Rows)
	for i, v := range m.Cells {
		c := bg
		if v == 1 {
			c = fg
		}
		buf.Pix[3*i] = c.R
		buf.Pix[3*i+1] = c.G
		buf.Pix[3*i+2] = c.B
	}
	return buf
}

// Width returns the number of columns.
func (p *PixelBuffer) Width() int {
	return p.width
}

// Height returns the number of rows.
func (p *PixelBuffer) Height() int {
	return p.height
}

// RGBAt returns the pixel at column x, row y.
func (p *PixelBuffer) RGBAt(x, y int) RGB {
	i := 3 * (y*p.width + x)
	return RGB{p.Pix[i], p.Pix[i+1], p.Pix[i+2]}
}

// ColorModel implements image.Image.
func (p *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// At implements image.Image.
func (p *PixelBuffer) At(x, y int) color.Color {
	if !image.Pt(x, y).In(p.Bounds()) {
		return color.RGBA{}
	}
	return p.RGBAt(x, y).ToColor()
}

// ToRGBA copies the buffer into an opaque *image.RGBA.
func (p *PixelBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(p.Bounds())
	for i, j := 0, 0; i < len(p.Pix); i, j = i+3, j+4 {
		img.Pix[j] = p.Pix[i]
		img.Pix[j+1] = p.Pix[i+1]
		img.Pix[j+2] = p.Pix[i+2]
		img.Pix[j+3] = 255
	}
	return img
}
