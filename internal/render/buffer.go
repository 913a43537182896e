package render

import (
	"encoding/binary"

	"cellgrid/internal/core"
)

// Channels is the number of bytes per pixel.
const Channels = 4

// Buffer owns the RGBA bytes of the grid view. All writes go through FillRun,
// which refuses runs that would fall outside the buffer.
type Buffer struct {
	w, h int
	pix  []byte
}

// NewBuffer allocates a w*h RGBA buffer.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Resize sets the dimensions, reallocating only when the byte size changes.
// It reports whether a new backing array was allocated.
func (b *Buffer) Resize(w, h int) bool {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.w, b.h = w, h
	size := w * h * Channels
	if len(b.pix) == size && b.pix != nil {
		return false
	}
	b.pix = make([]byte, size)
	return true
}

// Width returns the width in pixels.
func (b *Buffer) Width() int { return b.w }

// Height returns the height in pixels.
func (b *Buffer) Height() int { return b.h }

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int { return b.w * Channels }

// Pixels returns the number of pixels in the buffer.
func (b *Buffer) Pixels() int { return b.w * b.h }

// Pix exposes the raw bytes for read-only use by image sinks.
func (b *Buffer) Pix() []byte { return b.pix }

// FillRun writes count pixels of c starting at pixel offset. A run that
// does not fit entirely inside the buffer is skipped and false is returned.
func (b *Buffer) FillRun(offset, count int, c core.Color) bool {
	if count <= 0 || offset < 0 || offset+count > b.w*b.h {
		return false
	}
	start := offset * Channels
	end := start + count*Channels
	binary.LittleEndian.PutUint32(b.pix[start:], uint32(c))
	// Double the filled prefix until the run is covered.
	for filled := start + Channels; filled < end; {
		filled += copy(b.pix[filled:end], b.pix[start:filled])
	}
	return true
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c core.Color) {
	b.FillRun(0, b.w*b.h, c)
}

// At returns the packed color of pixel (x, y); false when out of range.
func (b *Buffer) At(x, y int) (core.Color, bool) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return 0, false
	}
	i := (y*b.w + x) * Channels
	return core.Color(binary.LittleEndian.Uint32(b.pix[i:])), true
}
