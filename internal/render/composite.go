package render

import (
	"image"
	"image/draw"
)

// CompositeAt alpha-blends glyph onto dst with the glyph's top-left corner
// at (x, y). Parts falling outside dst are clipped.
func CompositeAt(dst draw.Image, glyph image.Image, x, y int) {
	gb := glyph.Bounds()
	target := image.Rect(x, y, x+gb.Dx(), y+gb.Dy())
	draw.Draw(dst, target, glyph, gb.Min, draw.Over)
}
