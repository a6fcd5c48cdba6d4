package render

import "image/color"

// Palette of the icon. The gradient endpoints are the row-0 and
// fraction-1 values of GradientColor; the frame colours are the only
// colours a frame glyph ever holds.
var (
	GradientTop    = color.RGBA{R: 51, G: 102, B: 204, A: 0xFF}
	GradientBottom = color.RGBA{R: 102, G: 51, B: 178, A: 0xFF}

	FrameBorder = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // white
	PhotoArea   = color.RGBA{R: 76, G: 76, B: 76, A: 0xFF}       // dark gray
	Mountain    = color.RGBA{R: 128, G: 128, B: 128, A: 0xFF}    // mid gray
	Sun         = color.RGBA{R: 178, G: 178, B: 178, A: 0xFF}    // light gray
)

// Placement of one frame glyph on the canvas. OffsetX/OffsetY are
// multiplied by the frame width/height and subtracted from the canvas
// centre; Centered ignores them and centres the frame exactly.
type Placement struct {
	Degrees  float64
	OffsetX  float64
	OffsetY  float64
	Centered bool
}

// Frames lists the glyphs in compositing order: the two tilted copies
// first, then the upright one on top.
var Frames = []Placement{
	{Degrees: -8, OffsetX: 0.2, OffsetY: 0.15},
	{Degrees: 6, OffsetX: 0.1, OffsetY: 0.1},
	{Degrees: 0, Centered: true},
}
