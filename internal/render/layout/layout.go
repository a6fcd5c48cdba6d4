// Package layout holds rectangle arithmetic shared by the frame glyph and
// the preview sheet.
package layout

import "image"

// Inset shrinks rect by paddingPx on all sides. An axis narrower than
// twice the padding collapses to zero width at its centre, so a frame too
// small for its border has an empty interior.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	rect = Normalize(rect)
	if paddingPx <= 0 {
		return rect
	}
	minX, maxX := insetAxis(rect.Min.X, rect.Max.X, paddingPx)
	minY, maxY := insetAxis(rect.Min.Y, rect.Max.Y, paddingPx)
	return image.Rectangle{Min: image.Pt(minX, minY), Max: image.Pt(maxX, maxY)}
}

func insetAxis(lo, hi, padding int) (int, int) {
	if hi-lo <= 2*padding {
		mid := lo + (hi-lo)/2
		return mid, mid
	}
	return lo + padding, hi - padding
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	topHeightPx = clamp(topHeightPx, 0, rect.Dy())
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// Grid splits rect into cols×rows equal cells, row by row. Leftover pixels
// from uneven division go to the last column and row.
func Grid(rect image.Rectangle, cols, rows int) []image.Rectangle {
	rect = Normalize(rect)
	if cols <= 0 || rows <= 0 {
		return nil
	}
	cellW := rect.Dx() / cols
	cellH := rect.Dy() / rows
	cells := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		y0 := rect.Min.Y + row*cellH
		y1 := y0 + cellH
		if row == rows-1 {
			y1 = rect.Max.Y
		}
		for col := 0; col < cols; col++ {
			x0 := rect.Min.X + col*cellW
			x1 := x0 + cellW
			if col == cols-1 {
				x1 = rect.Max.X
			}
			cells = append(cells, image.Rect(x0, y0, x1, y1))
		}
	}
	return cells
}

// AnchorTopLeft returns a rectangle of size (widthPx,heightPx) placed in the top-left of rect.
func AnchorTopLeft(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx = clamp(widthPx, 0, rect.Dx())
	heightPx = clamp(heightPx, 0, rect.Dy())
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+widthPx, rect.Min.Y+heightPx)
}

// CenterSquare returns the largest square that fits into rect, centred on both axes.
func CenterSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := min(rect.Dx(), rect.Dy())
	sq := AnchorTopLeft(rect, size, size)
	return sq.Add(image.Pt((rect.Dx()-size)/2, (rect.Dy()-size)/2))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
