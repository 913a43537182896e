//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"cellgrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the grid view.
type HUD struct {
	src      core.ParameterSource
	controls *Controls
	width    int
	title    string

	panel        *ebiten.Image
	lastHeight   int
	panelOffsetX int
	rows         []hudRow
	status       []string

	pixel *ebiten.Image
}

type hudRow struct {
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a panel of the given width for src.
func NewHUD(src core.ParameterSource, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	if title == "" {
		title = "Controls"
	}
	h := &HUD{src: src, controls: NewControls(src), width: width, title: title}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.layoutControls()
	return h
}

// Width returns the panel width in logical pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetStatus replaces the lines printed at the foot of the panel.
func (h *HUD) SetStatus(st Status) {
	if h == nil {
		return
	}
	h.status = st.Lines()
}

// Update refreshes the displayed values and handles clicks on the panel,
// which starts at panelOffsetX. It reports whether a click was consumed.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.src == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.controls.Refresh(h.src.Parameters())
	return h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawStatus(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleInput() bool {
	if len(h.rows) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i, row := range h.rows {
		if pointInRect(px, my, row.minusRect) {
			h.controls.Adjust(i, -1)
			return true
		}
		if pointInRect(px, my, row.plusRect) {
			h.controls.Adjust(i, 1)
			return true
		}
	}
	return true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	states := h.controls.States()
	if len(states) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i, state := range states {
		row := h.rows[i]
		labelY := row.top + labelBaseline
		text.Draw(h.panel, state.Control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.HasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.Value)
		valueX := row.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.Value, face, valueX, labelY, valueColor)

		h.drawButton(row.minusRect, "-", h.controls.CanAdjust(i, -1))
		h.drawButton(row.plusRect, "+", h.controls.CanAdjust(i, 1))
	}
}

func (h *HUD) drawStatus(height int) {
	face := basicfont.Face7x13
	y := height - panelPadding - (len(h.status)-1)*statusSpacing
	// Keep the status clear of the control rows.
	if n := len(h.rows); n > 0 {
		y = max(y, controlsTop+n*lineHeight+statusSpacing)
	}
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 150, G: 180, B: 160, A: 255})
		y += statusSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	h.rows = make([]hudRow, len(h.controls.States()))
	for i := range h.rows {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.rows[i] = hudRow{top: top, minusRect: minusRect, plusRect: plusRect}
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	statusSpacing  = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
