package gridview

import (
	"errors"
	"fmt"
	"image"
)

// ErrNoSurface is returned by Snapshot when no pixel buffer is allocated.
var ErrNoSurface = errors.New("gridview: no surface allocated")

// Snapshot is a copy of the pixel buffer. Pix holds non-premultiplied RGBA
// bytes, Stride bytes per row.
type Snapshot struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

// Snapshot copies the current buffer for an external encoder.
func (v *GridView) Snapshot() (Snapshot, error) {
	if v.buf == nil || len(v.buf.Pix()) == 0 {
		return Snapshot{}, fmt.Errorf("snapshot %dx%d: %w", v.state.viewWidth, v.state.viewHeight, ErrNoSurface)
	}
	pix := make([]byte, len(v.buf.Pix()))
	copy(pix, v.buf.Pix())
	return Snapshot{
		Pix:    pix,
		Width:  v.buf.Width(),
		Height: v.buf.Height(),
		Stride: v.buf.Stride(),
	}, nil
}

// Image wraps the snapshot bytes without copying.
func (s Snapshot) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    s.Pix,
		Stride: s.Stride,
		Rect:   image.Rect(0, 0, s.Width, s.Height),
	}
}
