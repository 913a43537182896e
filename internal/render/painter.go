//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a Buffer into an ebiten image and draws it.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	dirty bool
}

// NewGridPainter returns a painter with no image allocated yet.
func NewGridPainter() *GridPainter {
	return &GridPainter{dirty: true}
}

// Invalidate makes the next Blit upload the buffer again.
func (gp *GridPainter) Invalidate() { gp.dirty = true }

// Blit uploads buf when it changed and draws it onto dst, scaled by
// 1/deviceScale so a buffer rendered in physical pixels covers the logical
// layout.
func (gp *GridPainter) Blit(dst *ebiten.Image, buf *Buffer, deviceScale float64) {
	w, h := buf.Width(), buf.Height()
	if w <= 0 || h <= 0 {
		return
	}
	if gp.img == nil || gp.w != w || gp.h != h {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.img = ebiten.NewImage(w, h)
		gp.w, gp.h = w, h
		gp.dirty = true
	}
	if gp.dirty {
		gp.img.WritePixels(buf.Pix())
		gp.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	if deviceScale > 0 && deviceScale != 1 {
		op.GeoM.Scale(1/deviceScale, 1/deviceScale)
	}
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
