package preview

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Fit returns the largest rectangle with src's aspect ratio that fits
// centred inside dst.
func Fit(dst image.Rectangle, src image.Rectangle) image.Rectangle {
	if src.Empty() || dst.Empty() {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}
	w := dst.Dx()
	h := src.Dy() * w / src.Dx()
	if h > dst.Dy() {
		h = dst.Dy()
		w = src.Dx() * h / src.Dy()
	}
	x := dst.Min.X + (dst.Dx()-w)/2
	y := dst.Min.Y + (dst.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// Blit clears dst to the sheet background and draws src letterboxed into
// it with nearest-neighbour scaling.
func Blit(dst draw.Image, src image.Image) {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, image.NewUniform(Background), image.Point{}, draw.Src)
	xdraw.NearestNeighbor.Scale(dst, Fit(bounds, src.Bounds()), src, src.Bounds(), xdraw.Src, nil)
}
