package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so that four segments
// approximate a circle.
const kappa = 0.5522847498

// fillRect fills r with c, clipped to dst.
func fillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetRGBA(x, y, c)
		}
	}
}

// fillPolygon fills the closed polygon through pts. Vertices are pixel
// centres, so (0,0) is the middle of the top-left pixel. Every pixel the
// outline touches is filled, vertices included.
func fillPolygon(dst *image.RGBA, pts [][2]float64, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	z := newRasterizer(dst)
	z.MoveTo(float32(pts[0][0]+0.5), float32(pts[0][1]+0.5))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]+0.5), float32(p[1]+0.5))
	}
	z.ClosePath()
	fillCoverage(dst, z, c)
	for _, p := range pts {
		setPixel(dst, p[0], p[1], c)
	}
}

// fillCircle fills the circle whose bounding box has its top-left pixel
// at (x, y) and spans 2*radius+1 pixels on each axis.
func fillCircle(dst *image.RGBA, x, y float64, radius int, c color.RGBA) {
	if radius < 0 {
		return
	}
	r := float64(radius) + 0.5
	cx := x + r
	cy := y + r
	k := r * kappa

	z := newRasterizer(dst)
	z.MoveTo(f32(cx+r), f32(cy))
	z.CubeTo(f32(cx+r), f32(cy+k), f32(cx+k), f32(cy+r), f32(cx), f32(cy+r))
	z.CubeTo(f32(cx-k), f32(cy+r), f32(cx-r), f32(cy+k), f32(cx-r), f32(cy))
	z.CubeTo(f32(cx-r), f32(cy-k), f32(cx-k), f32(cy-r), f32(cx), f32(cy-r))
	z.CubeTo(f32(cx+k), f32(cy-r), f32(cx+r), f32(cy-k), f32(cx+r), f32(cy))
	z.ClosePath()
	fillCoverage(dst, z, c)
	setPixel(dst, x+float64(radius), y+float64(radius), c)
}

// setPixel paints the pixel at (x, y) given in pixel-centre coordinates.
func setPixel(dst *image.RGBA, x, y float64, c color.RGBA) {
	p := image.Pt(int(math.Floor(x+0.5)), int(math.Floor(y+0.5)))
	if p.In(dst.Bounds()) {
		dst.SetRGBA(p.X, p.Y, c)
	}
}

func newRasterizer(dst *image.RGBA) *vector.Rasterizer {
	b := dst.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

// fillCoverage rasterises the path into a coverage mask and paints c on
// every pixel with any coverage, so boundary pixels belong to the shape
// and shapes thinner than a pixel still show. Pixels are either left alone
// or set to c, never blended.
func fillCoverage(dst *image.RGBA, z *vector.Rasterizer, c color.RGBA) {
	b := dst.Bounds()
	mask := image.NewAlpha(b)
	z.Draw(mask, b, image.Opaque, image.Point{})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A != 0 {
				dst.SetRGBA(x, y, c)
			}
		}
	}
}

func f32(v float64) float32 { return float32(v) }
