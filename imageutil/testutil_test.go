package imageutil

import (
	"image"
	"image/color"
	"math"
)

// createColorBarsImage creates a color bars test pattern.
func createColorBarsImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	colors := []color.RGBA{
		{255, 255, 255, 255}, // White
		{255, 255, 0, 255},   // Yellow
		{0, 255, 255, 255},   // Cyan
		{0, 255, 0, 255},     // Green
		{255, 0, 255, 255},   // Magenta
		{255, 0, 0, 255},     // Red
		{0, 0, 255, 255},     // Blue
		{0, 0, 0, 255},       // Black
	}

	barWidth := width / len(colors)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := x / barWidth
			if colorIdx >= len(colors) {
				colorIdx = len(colors) - 1
			}
			img.SetRGBA(x, y, colors[colorIdx])
		}
	}
	return img
}

// calculateMSE calculates the mean squared error between two images
// over the red, green and blue channels.
func calculateMSE(img1, img2 *image.RGBA) float64 {
	if img1.Bounds().Size() != img2.Bounds().Size() {
		return math.MaxFloat64
	}

	width, height := img1.Bounds().Dx(), img1.Bounds().Dy()
	var sumSq float64
	count := float64(width * height * 3) // 3 channels

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1 := img1.RGBAAt(x, y)
			c2 := img2.RGBAAt(x, y)
			dr := float64(c1.R) - float64(c2.R)
			dg := float64(c1.G) - float64(c2.G)
			db := float64(c1.B) - float64(c2.B)
			sumSq += dr*dr + dg*dg + db*db
		}
	}

	return sumSq / count
}
