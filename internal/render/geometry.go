package render

import (
	"image"

	"github.com/slidey/slidey-icons/internal/render/layout"
)

// GlyphPadding is the transparent margin around the frame inside a glyph buffer.
const GlyphPadding = 10

// Geometry holds the frame dimensions derived from an icon size.
type Geometry struct {
	Size           int
	FrameWidth     int
	FrameHeight    int
	FrameThickness int
}

// GeometryFor derives the frame geometry for a size×size icon.
// All values are truncated toward zero; thickness never drops below 2.
func GeometryFor(size int) Geometry {
	frameWidth := int(float64(size) * 0.5)
	frameHeight := int(float64(frameWidth) * 0.75)
	thickness := max(2, int(float64(size)*0.02))
	return Geometry{
		Size:           size,
		FrameWidth:     frameWidth,
		FrameHeight:    frameHeight,
		FrameThickness: thickness,
	}
}

// GlyphBounds is the rectangle of a frame glyph buffer.
func (g Geometry) GlyphBounds() image.Rectangle {
	return image.Rect(0, 0, g.FrameWidth+2*GlyphPadding, g.FrameHeight+2*GlyphPadding)
}

// Border is the white frame rectangle. Both corners at (10,10) and
// (10+w,10+h) are filled.
func (g Geometry) Border() image.Rectangle {
	return image.Rect(GlyphPadding, GlyphPadding, GlyphPadding+g.FrameWidth+1, GlyphPadding+g.FrameHeight+1)
}

// Photo is the dark interior, the border inset by the frame thickness.
func (g Geometry) Photo() image.Rectangle {
	return layout.Inset(g.Border(), g.FrameThickness)
}

// Interior returns the origin and extent used to place the mountain and
// the sun. The extent excludes the inclusive far edge of Photo.
func (g Geometry) Interior() (x, y, w, h float64) {
	origin := float64(GlyphPadding + g.FrameThickness)
	return origin, origin,
		float64(g.FrameWidth - 2*g.FrameThickness),
		float64(g.FrameHeight - 2*g.FrameThickness)
}

// mountainShape holds the silhouette vertices as fractions of the interior.
var mountainShape = [][2]float64{
	{0, 1.0},
	{0.3, 0.4},
	{0.5, 0.7},
	{0.7, 0.5},
	{1.0, 1.0},
}

// MountainVertices returns the silhouette polygon in glyph coordinates.
func (g Geometry) MountainVertices() [][2]float64 {
	x, y, w, h := g.Interior()
	out := make([][2]float64, len(mountainShape))
	for i, v := range mountainShape {
		out[i] = [2]float64{x + w*v[0], y + h*v[1]}
	}
	return out
}

// SunBox returns the top-left corner of the sun's bounding box in glyph
// coordinates and its radius.
func (g Geometry) SunBox() (x, y float64, radius int) {
	ix, iy, w, h := g.Interior()
	radius = int(w * 0.12)
	return ix + w*0.75 - float64(radius), iy + h*0.25 - float64(radius), radius
}

// FrameOrigin returns where the frame's top-left corner (glyph point
// (10,10)) lands on the canvas for the given placement.
func (g Geometry) FrameOrigin(p Placement) image.Point {
	center := g.Size / 2
	if p.Centered {
		return image.Pt(center-g.FrameWidth/2, center-g.FrameHeight/2)
	}
	return image.Pt(
		int(float64(center)-float64(g.FrameWidth)*p.OffsetX),
		int(float64(center)-float64(g.FrameHeight)*p.OffsetY),
	)
}
