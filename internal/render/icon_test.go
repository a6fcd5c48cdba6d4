package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
)

func TestIconDimensions(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 2, 16, 17, 32, 100, 512} {
		img := Icon(size)
		want := max(size, 0)
		if got := img.Bounds(); got != image.Rect(0, 0, want, want) {
			t.Errorf("Icon(%d) bounds = %v", size, got)
		}
	}
}

func TestIconDeterministic(t *testing.T) {
	for _, size := range []int{16, 128, 333} {
		a := Icon(size)
		b := Icon(size)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("Icon(%d) differs between calls", size)
		}
	}
}

func TestIconFullyOpaque(t *testing.T) {
	img := Icon(64)
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xFF {
			t.Fatalf("pixel %d has alpha %d", i/4, img.Pix[i])
		}
	}
}

func TestIconEncodesAsRGBPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Icon(32)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	raw := buf.Bytes()
	// IHDR: bit depth at byte 24, colour type at byte 25.
	if raw[24] != 8 || raw[25] != 2 {
		t.Fatalf("bit depth %d colour type %d, want 8-bit truecolor (2)", raw[24], raw[25])
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 32 || decoded.Bounds().Dy() != 32 {
		t.Fatalf("decoded bounds = %v", decoded.Bounds())
	}
}

func TestIconSmallTopLeftIsGradient(t *testing.T) {
	img := Icon(16)
	if got := img.RGBAAt(0, 0); got != GradientTop {
		t.Fatalf("pixel (0,0) = %v, want %v", got, GradientTop)
	}
}

func TestIconCenterIsUprightPhotoArea(t *testing.T) {
	img := Icon(512)
	got := img.RGBAAt(256, 256)
	frameColors := []color.RGBA{FrameBorder, PhotoArea, Mountain, Sun}
	found := false
	for _, c := range frameColors {
		if got == c {
			found = true
		}
	}
	if !found {
		t.Fatalf("centre pixel %v is not a frame colour", got)
	}
	if got != PhotoArea {
		t.Fatalf("centre pixel %v, want photo area %v", got, PhotoArea)
	}
}

func TestGradientColorRows(t *testing.T) {
	tests := []struct {
		y, size int
		want    color.RGBA
	}{
		{0, 16, color.RGBA{51, 102, 204, 255}},
		{8, 16, color.RGBA{76, 76, 191, 255}},
		{15, 16, color.RGBA{98, 54, 179, 255}},
		{1023, 1024, color.RGBA{101, 51, 178, 255}},
	}
	for _, tt := range tests {
		if got := GradientColor(tt.y, tt.size); got != tt.want {
			t.Errorf("GradientColor(%d, %d) = %v, want %v", tt.y, tt.size, got, tt.want)
		}
	}
}

func TestFillGradientEndpointsAndMonotonic(t *testing.T) {
	top := [3]float64{51, 102, 204}
	bottom := [3]float64{102, 0, 178}
	for _, size := range []int{8, 16, 100, 1024} {
		canvas := image.NewRGBA(image.Rect(0, 0, size, size))
		FillGradient(canvas)

		first := rowAverage(canvas, 0)
		last := rowAverage(canvas, size-1)
		if distance(first, top) >= distance(first, bottom) {
			t.Errorf("size %d: top row %v not closer to top colour", size, first)
		}
		if distance(last, bottom) >= distance(last, top) {
			t.Errorf("size %d: bottom row %v not closer to bottom colour", size, last)
		}

		prev := canvas.RGBAAt(0, 0)
		for y := 1; y < size; y++ {
			c := canvas.RGBAAt(size-1, y)
			if c.R < prev.R || c.G > prev.G || c.B > prev.B {
				t.Fatalf("size %d: row %d %v not monotonic after %v", size, y, c, prev)
			}
			prev = c
		}
	}
}

func rowAverage(img *image.RGBA, y int) [3]float64 {
	var sum [3]float64
	w := img.Bounds().Dx()
	for x := 0; x < w; x++ {
		c := img.RGBAAt(x, y)
		sum[0] += float64(c.R)
		sum[1] += float64(c.G)
		sum[2] += float64(c.B)
	}
	for i := range sum {
		sum[i] /= float64(w)
	}
	return sum
}

func distance(a, b [3]float64) float64 {
	var d float64
	for i := range a {
		d += (a[i] - b[i]) * (a[i] - b[i])
	}
	return math.Sqrt(d)
}

func TestGeometryFor(t *testing.T) {
	tests := []struct {
		size int
		want Geometry
	}{
		{16, Geometry{Size: 16, FrameWidth: 8, FrameHeight: 6, FrameThickness: 2}},
		{64, Geometry{Size: 64, FrameWidth: 32, FrameHeight: 24, FrameThickness: 2}},
		{512, Geometry{Size: 512, FrameWidth: 256, FrameHeight: 192, FrameThickness: 10}},
		{1024, Geometry{Size: 1024, FrameWidth: 512, FrameHeight: 384, FrameThickness: 20}},
	}
	for _, tt := range tests {
		if got := GeometryFor(tt.size); got != tt.want {
			t.Errorf("GeometryFor(%d) = %+v, want %+v", tt.size, got, tt.want)
		}
	}
}

func TestGeometryProportional(t *testing.T) {
	sizes := []int{128, 256, 300, 512, 1000, 1024}
	ratio := func(v, size int) float64 { return float64(v) / float64(size) }
	for _, s1 := range sizes {
		for _, s2 := range sizes {
			g1, g2 := GeometryFor(s1), GeometryFor(s2)
			tol := 2/float64(s1) + 2/float64(s2)
			checks := []struct {
				name   string
				v1, v2 int
			}{
				{"width", g1.FrameWidth, g2.FrameWidth},
				{"height", g1.FrameHeight, g2.FrameHeight},
				{"thickness", g1.FrameThickness, g2.FrameThickness},
			}
			for _, c := range checks {
				if d := math.Abs(ratio(c.v1, s1) - ratio(c.v2, s2)); d > tol {
					t.Errorf("%s ratio differs between %d and %d by %f", c.name, s1, s2, d)
				}
			}
		}
	}
}

func TestGeometryThicknessFloor(t *testing.T) {
	for _, size := range []int{1, 16, 99} {
		if got := GeometryFor(size).FrameThickness; got != 2 {
			t.Errorf("GeometryFor(%d).FrameThickness = %d, want 2", size, got)
		}
	}
}

func TestGeometryPhotoInsideBorder(t *testing.T) {
	for _, size := range []int{0, 1, 4, 8, 16, 512} {
		g := GeometryFor(size)
		if photo := g.Photo(); !photo.In(g.Border()) {
			t.Errorf("GeometryFor(%d): photo %v escapes border %v", size, photo, g.Border())
		}
	}
}

func TestFrameOrigins(t *testing.T) {
	g := GeometryFor(512)
	want := []image.Point{
		image.Pt(204, 227),
		image.Pt(230, 236),
		image.Pt(128, 160),
	}
	for i, p := range Frames {
		if got := g.FrameOrigin(p); got != want[i] {
			t.Errorf("frame %d origin = %v, want %v", i, got, want[i])
		}
	}
}
