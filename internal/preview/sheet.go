// Package preview lays rendered icons out on a labelled contact sheet and
// can show that sheet on a Linux framebuffer.
package preview

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/slidey/slidey-icons/internal/render/layout"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

var (
	Background = color.RGBA{R: 0xF2, G: 0xF2, B: 0xF5, A: 0xFF}
	Foreground = color.RGBA{R: 0x22, G: 0x22, B: 0x2A, A: 0xFF}
)

const (
	defaultColumns  = 5
	defaultCellSize = 192
	titleHeight     = 64
	labelHeight     = 22
	cellPadding     = 8
)

// Item is one icon on the sheet.
type Item struct {
	Label string
	Image image.Image
}

// Sheet arranges icons on a grid of equal square cells below a title band.
type Sheet struct {
	Title    string
	Columns  int
	CellSize int
	Logger   Logger
}

func NewSheet(title string) *Sheet {
	return &Sheet{Title: title, Columns: defaultColumns, CellSize: defaultCellSize}
}

// Dimensions returns the grid shape and pixel bounds for n items.
func (s *Sheet) Dimensions(n int) (cols, rows int, bounds image.Rectangle) {
	cols = s.Columns
	if cols <= 0 {
		cols = defaultColumns
	}
	if n < cols {
		cols = max(n, 1)
	}
	rows = max((n+cols-1)/cols, 1)
	cell := s.cellSize()
	return cols, rows, image.Rect(0, 0, cols*cell, titleHeight+rows*cell)
}

func (s *Sheet) cellSize() int {
	if s.CellSize <= 0 {
		return defaultCellSize
	}
	return s.CellSize
}

// Render draws the sheet. Icons larger than their slot are downscaled
// smoothly; smaller ones are enlarged with nearest-neighbour sampling so
// individual pixels stay visible.
func (s *Sheet) Render(items []Item) *image.RGBA {
	cols, rows, bounds := s.Dimensions(len(items))
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, image.NewUniform(Background), image.Point{}, draw.Src)

	header, body := layout.SplitHorizontal(bounds, titleHeight)
	if s.Title != "" {
		drawTitle(canvas, header, s.Title, 28, Foreground, s.Logger)
	}

	face := labelFace(13, s.Logger)
	cells := layout.Grid(body, cols, rows)
	for i, item := range items {
		inner := layout.Inset(cells[i], cellPadding)
		iconArea, labelArea := layout.SplitHorizontal(inner, inner.Dy()-labelHeight)
		if item.Image != nil {
			placeIcon(canvas, layout.CenterSquare(iconArea), item.Image)
		}
		drawLabel(canvas, labelArea, item.Label, Foreground, face)
	}
	logInfo(s.Logger, "sheet rendered, %d items, %dx%d", len(items), bounds.Dx(), bounds.Dy())
	return canvas
}

func placeIcon(dst *image.RGBA, slot image.Rectangle, src image.Image) {
	sb := src.Bounds()
	if sb.Dx() <= slot.Dx() && sb.Dy() <= slot.Dy() {
		xdraw.NearestNeighbor.Scale(dst, slot, src, sb, xdraw.Over, nil)
		return
	}
	xdraw.CatmullRom.Scale(dst, slot, src, sb, xdraw.Over, nil)
}

func logInfo(logger Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.Infof("preview", format, args...)
	}
}

func logError(logger Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf("preview", format, args...)
	}
}
