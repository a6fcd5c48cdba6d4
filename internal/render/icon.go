// Package render draws the Slidey application icon: a vertical
// blue-to-purple gradient under three overlapping photo frames.
//
// Rendering is pure. The same size always yields the same pixels, and
// every pixel of the returned canvas is opaque so image/png writes it as
// 8-bit RGB.
package render

import "image"

// Icon renders a size×size icon.
func Icon(size int) *image.RGBA {
	if size < 0 {
		size = 0
	}
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	FillGradient(canvas)

	g := GeometryFor(size)
	for _, p := range Frames {
		origin := g.FrameOrigin(p)
		CompositeAt(canvas, FrameGlyph(g, p.Degrees), origin.X-GlyphPadding, origin.Y-GlyphPadding)
	}
	return canvas
}
