package render

import "image"

// FrameGlyph draws one photo frame into its own transparent buffer and,
// for a non-zero angle, rotates the buffer about its centre.
func FrameGlyph(g Geometry, degrees float64) *image.RGBA {
	return Rotate(drawFrame(g), degrees)
}

// drawFrame paints border, photo area, mountain and sun, in that order.
func drawFrame(g Geometry) *image.RGBA {
	glyph := image.NewRGBA(g.GlyphBounds())
	fillRect(glyph, g.Border(), FrameBorder)
	fillRect(glyph, g.Photo(), PhotoArea)
	fillPolygon(glyph, g.MountainVertices(), Mountain)
	x, y, radius := g.SunBox()
	fillCircle(glyph, x, y, radius, Sun)
	return glyph
}
