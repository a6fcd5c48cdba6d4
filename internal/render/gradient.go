package render

import (
	"image"
	"image/color"
)

// GradientColor returns the background colour of row y in a canvas of the
// given height. Channels are computed in floating point and truncated to
// integers, matching int(51 + t*51) and friends exactly.
func GradientColor(y, size int) color.RGBA {
	t := 0.0
	if size > 0 {
		t = float64(y) / float64(size)
	}
	return color.RGBA{
		R: channel(51 + t*(102-51)),
		G: channel(102 - t*(102-51)),
		B: channel(204 - t*(204-178)),
		A: 0xFF,
	}
}

func channel(v float64) uint8 {
	n := int(v)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// FillGradient paints the vertical gradient over the whole canvas, one
// colour per row.
func FillGradient(canvas *image.RGBA) {
	b := canvas.Bounds()
	size := b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		c := GradientColor(y-b.Min.Y, size)
		row := canvas.Pix[canvas.PixOffset(b.Min.X, y):canvas.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}
