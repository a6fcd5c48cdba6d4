package render

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rotate turns src counter-clockwise by degrees about its centre and
// returns a buffer of the same size. Pixels that no source pixel maps to
// are transparent. Sampling is nearest-neighbour so no new colours are
// introduced. A zero angle returns src itself.
func Rotate(src *image.RGBA, degrees float64) *image.RGBA {
	if degrees == 0 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(b)
	xdraw.NearestNeighbor.Transform(dst, rotation(b, degrees), src, b, xdraw.Src, nil)
	return dst
}

// rotation maps source coordinates to destination coordinates for a
// counter-clockwise turn (y grows downward) about the centre of b.
func rotation(b image.Rectangle, degrees float64) f64.Aff3 {
	theta := -degrees * math.Pi / 180
	c := math.Cos(theta)
	s := math.Sin(theta)
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	return f64.Aff3{
		c, -s, cx - c*cx + s*cy,
		s, c, cy - s*cx - c*cy,
	}
}
