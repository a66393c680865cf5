//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GridPainter uploads a CellBuffer into an image scaled up by the block
// size, then draws the queued text on top.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	face font.Face
}

// NewGridPainter allocates a painter for a buffer of w×h cells.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), face: basicfont.Face7x13}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws cells onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells *CellBuffer) {
	cols, rows := cells.Size()
	if cols != gp.w || rows != gp.h {
		return
	}
	fillRGBA(gp.buf, cells.Cells())
	gp.img.ReplacePixels(gp.buf)

	scale := float64(cells.Block())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(gp.img, op)

	for _, span := range cells.Texts() {
		gp.drawText(dst, span)
	}
}

// drawText scales the 13px bitmap face to the requested size with (X, Y) as
// the top-left corner of the text.
func (gp *GridPainter) drawText(dst *ebiten.Image, span TextSpan) {
	const faceHeight = 13.0
	scale := float64(span.Size) / faceHeight
	if scale <= 0 {
		scale = 1
	}
	ascent := float64(gp.face.Metrics().Ascent.Ceil())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, ascent)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(span.X), float64(span.Y))
	op.ColorM.Scale(float64(span.Color.R)/255.0, float64(span.Color.G)/255.0, float64(span.Color.B)/255.0, float64(span.Color.A)/255.0)
	text.DrawWithOptions(dst, span.Text, gp.face, op)
}
