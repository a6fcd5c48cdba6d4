package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestFrameGlyphBounds(t *testing.T) {
	for _, size := range []int{16, 128, 1024} {
		g := GeometryFor(size)
		glyph := FrameGlyph(g, -8)
		want := image.Rect(0, 0, g.FrameWidth+20, g.FrameHeight+20)
		if glyph.Bounds() != want {
			t.Errorf("size %d: glyph bounds %v, want %v", size, glyph.Bounds(), want)
		}
	}
}

func TestFrameGlyphZeroRotationIsUnrotated(t *testing.T) {
	g := GeometryFor(256)
	if !bytes.Equal(FrameGlyph(g, 0).Pix, drawFrame(g).Pix) {
		t.Fatal("rotation 0 changed the glyph")
	}
}

func TestFrameGlyphOnlyPaletteColors(t *testing.T) {
	allowed := map[color.RGBA]bool{
		{}:          true,
		FrameBorder: true,
		PhotoArea:   true,
		Mountain:    true,
		Sun:         true,
	}
	g := GeometryFor(512)
	for _, deg := range []float64{0, -8, 6} {
		glyph := FrameGlyph(g, deg)
		b := glyph.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if c := glyph.RGBAAt(x, y); !allowed[c] {
					t.Fatalf("rotation %v: pixel (%d,%d) = %v", deg, x, y, c)
				}
			}
		}
	}
}

func TestFrameGlyphLayers(t *testing.T) {
	g := GeometryFor(512)
	glyph := drawFrame(g)

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"padding", 0, 0, color.RGBA{}},
		{"border top-left", 10, 10, FrameBorder},
		{"border bottom-right", 10 + 256, 10 + 192, FrameBorder},
		{"outside border", 10 + 257, 10 + 193, color.RGBA{}},
		{"photo top-left", 20, 20, PhotoArea},
		{"photo centre", 138, 106, PhotoArea},
		{"mountain base", 138, 190, Mountain},
		{"mountain peak", 20 + 71, 20 + 80, Mountain},
		{"sun centre", 169 + 28, 35 + 28, Sun},
	}
	for _, tt := range tests {
		if got := glyph.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFrameGlyphRotatedCornersTransparent(t *testing.T) {
	g := GeometryFor(512)
	glyph := FrameGlyph(g, 6)
	b := glyph.Bounds()
	corners := []image.Point{
		{b.Min.X, b.Min.Y},
		{b.Max.X - 1, b.Min.Y},
		{b.Min.X, b.Max.Y - 1},
		{b.Max.X - 1, b.Max.Y - 1},
	}
	for _, p := range corners {
		if c := glyph.RGBAAt(p.X, p.Y); c.A != 0 {
			t.Errorf("corner %v = %v, want transparent", p, c)
		}
	}
	cx, cy := b.Dx()/2, b.Dy()/2
	if c := glyph.RGBAAt(cx, cy); c.A != 0xFF {
		t.Errorf("centre = %v, want opaque", c)
	}
}

func countColor(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestFrameGlyphSmallSizeKeepsShapes(t *testing.T) {
	for _, size := range []int{16, 32, 64} {
		glyph := drawFrame(GeometryFor(size))
		if n := countColor(glyph, Mountain); n == 0 {
			t.Errorf("size %d: no mountain pixels", size)
		}
		if n := countColor(glyph, Sun); n == 0 {
			t.Errorf("size %d: no sun pixels", size)
		}
	}
}

func TestFrameGlyphMountainReachesPhotoBottom(t *testing.T) {
	for _, size := range []int{16, 32, 64, 128, 512, 1024} {
		g := GeometryFor(size)
		glyph := drawFrame(g)
		photo := g.Photo()
		bottom := photo.Max.Y - 1
		ix, _, iw, _ := g.Interior()

		base := image.Pt(int(ix), bottom)
		if got := glyph.RGBAAt(base.X, base.Y); got != Mountain {
			t.Errorf("size %d: base vertex %v = %v, want mountain", size, base, got)
		}
		if size < 64 {
			continue
		}
		mid := image.Pt(int(ix+iw/2), bottom)
		if got := glyph.RGBAAt(mid.X, mid.Y); got != Mountain {
			t.Errorf("size %d: bottom row %v = %v, want mountain", size, mid, got)
		}
	}
}
