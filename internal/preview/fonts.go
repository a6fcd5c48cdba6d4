package preview

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelFace loads Go Regular at sizePt, falling back to the built-in
// bitmap face.
func labelFace(sizePt float64, logger Logger) font.Face {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		logError(logger, "font parse failed, using basicfont: %v", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: sizePt, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		logError(logger, "font face create failed, using basicfont: %v", err)
		return basicfont.Face7x13
	}
	return face
}

// drawLabel centres text horizontally in rect with its ascent at rect's top.
func drawLabel(dst *image.RGBA, rect image.Rectangle, text string, fg color.Color, face font.Face) {
	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: face}
	width := drawer.MeasureString(text).Ceil()
	x := rect.Min.X + (rect.Dx()-width)/2
	baseline := rect.Min.Y + face.Metrics().Ascent.Ceil()
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}

// drawTitle renders the sheet heading with freetype, centred in rect.
// It falls back to drawLabel with the bitmap face if the font is unusable.
func drawTitle(dst *image.RGBA, rect image.Rectangle, text string, sizePt float64, fg color.Color, logger Logger) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		logError(logger, "truetype parse failed: %v", err)
		drawLabel(dst, rect, text, fg, basicfont.Face7x13)
		return
	}

	face := truetype.NewFace(tt, &truetype.Options{Size: sizePt, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()
	width := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(tt)
	ctx.SetFontSize(sizePt)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(rect)
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(fg))

	x := rect.Min.X + (rect.Dx()-width)/2
	baseline := rect.Min.Y + (rect.Dy()-textHeight)/2 + metrics.Ascent.Ceil()
	if _, err := ctx.DrawString(text, freetype.Pt(x, baseline)); err != nil {
		logError(logger, "title draw failed: %v", err)
	}
}
