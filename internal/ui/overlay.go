//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws status lines over the top-left of the grid view. H toggles it.
type Overlay struct {
	lines   func() []string
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay returns a visible overlay that shows whatever lines returns
// each frame.
func NewOverlay(lines func() []string) *Overlay {
	o := &Overlay{lines: lines, visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o != nil && o.visible }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the lines on a translucent backdrop.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.Visible() || o.lines == nil {
		return
	}
	lines := o.lines()
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		width = max(width, text.BoundString(face, l).Dx())
	}
	height := len(lines)*overlayLineHeight + overlayPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*overlayPadding), float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 150})
	screen.DrawImage(o.pixel, op)

	for i, l := range lines {
		y := overlayPadding + (i+1)*overlayLineHeight - 4
		text.Draw(screen, l, face, overlayPadding, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

const (
	overlayPadding    = 6
	overlayLineHeight = 16
)
