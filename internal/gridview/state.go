package gridview

import (
	"cellgrid/internal/core"
	"cellgrid/internal/render"
)

// Params are the inputs of a reconfiguration. Sizes are logical unless
// Scaled is set, in which case they are already in buffer pixels of a
// scaler with the same Scaling flag.
type Params struct {
	ViewWidth     int
	ViewHeight    int
	CellSize      int
	CellPadding   int
	Shape         render.Shape
	Fade          float32
	RoundedRadius float32
	Shading       bool
	Background    core.Color
	Transparency  uint8
	Scaling       bool
	Scaled        bool
}

// ViewportState is the immutable description of the viewport in buffer
// pixels. Logical sizes are derived from it on demand.
type ViewportState struct {
	scaler Scaler

	viewWidth     int
	viewHeight    int
	cellSize      int
	cellPadding   int
	shape         render.Shape
	fade          float32
	roundedRadius float32
	shading       bool
	background    core.Color
	transparency  uint8

	viewColumns      int
	viewRows         int
	viewWidthExtra   int
	viewHeightExtra  int
	viewColumnsExtra int
	viewRowsExtra    int
	viewCellEndX     int
	viewCellEndY     int

	shiftCellX int
	shiftCellY int
	shiftX     int
	shiftY     int
}

// Reconfigure derives a new state from p. The pan offset of old is carried
// over in logical units and renormalized to the new cell size; restriction
// is left to the pan engine. The returned Blocks are the coverage template
// for the new state.
func Reconfigure(old ViewportState, p Params, factor float64, lim Limits) (ViewportState, *render.Blocks) {
	scaling := p.Scaling && p.Shape.Subpixel()
	sc := NewScaler(factor, scaling)
	conv := func(v int) int {
		if p.Scaled {
			return v
		}
		return sc.Scaled(v)
	}

	viewWidth, viewHeight := max(conv(p.ViewWidth), 0), max(conv(p.ViewHeight), 0)
	padding := constrainPadding(conv(p.CellPadding), sc, lim)
	cellSize := constrainCellSize(conv(p.CellSize), padding, p.Shape, sc, lim, viewWidth, viewHeight)

	s := ViewportState{
		scaler:        sc,
		viewWidth:     viewWidth,
		viewHeight:    viewHeight,
		cellSize:      cellSize,
		cellPadding:   padding,
		shape:         p.Shape,
		fade:          p.Fade,
		roundedRadius: clampRadius(p.RoundedRadius),
		shading:       p.Shading,
		background:    p.Background,
		transparency:  p.Transparency,
	}
	s.viewColumns = s.viewWidth / cellSize
	s.viewRows = s.viewHeight / cellSize
	s.viewWidthExtra = s.viewWidth % cellSize
	s.viewHeightExtra = s.viewHeight % cellSize

	totalX, totalY := 0, 0
	if old.cellSize > 0 {
		ox, oy := old.ShiftTotal()
		totalX = sc.Scaled(old.scaler.Unscaled(ox))
		totalY = sc.Scaled(old.scaler.Unscaled(oy))
	}
	s = s.withShift(totalX/cellSize, totalX%cellSize, totalY/cellSize, totalY%cellSize)

	Logger().Debug("gridview: reconfigure",
		"view", [2]int{s.viewWidth, s.viewHeight},
		"cell_size", s.cellSize, "padding", s.cellPadding,
		"shape", s.shape.String(), "scaling", sc.Enabled, "factor", sc.Factor)
	return s, render.NewBlocks(s.blockParams())
}

func constrainPadding(padding int, sc Scaler, lim Limits) int {
	return core.ClampInt(padding, 0, sc.Scaled(lim.CellPaddingMax))
}

// constrainCellSize clamps cellSize to the limits and to the shorter side of
// the view, so one cell never needs more coverage columns or rows than the
// template holds. A zero view size leaves only the limits.
func constrainCellSize(cellSize, padding int, shape render.Shape, sc Scaler, lim Limits, viewWidth, viewHeight int) int {
	lo := minCellSize(padding, shape, sc, lim)
	hi := maxCellSize(sc.Scaled(lim.CellSizeMax), viewWidth, viewHeight)
	return core.ClampInt(cellSize, lo, max(hi, lo))
}

func maxCellSize(limit, viewWidth, viewHeight int) int {
	if viewWidth > 0 {
		limit = min(limit, viewWidth)
	}
	if viewHeight > 0 {
		limit = min(limit, viewHeight)
	}
	return limit
}

// minCellSize is the smallest cell holding the inner minimum plus padding on
// both sides. Rounded and circle cells need at least four logical pixels.
func minCellSize(padding int, shape render.Shape, sc Scaler, lim Limits) int {
	lo := sc.Scaled(lim.CellSizeInnerMin) + 2*padding
	if shape.Subpixel() {
		lo = max(lo, sc.Scaled(roundShapeMinSize))
	}
	return lo
}

const roundShapeMinSize = 4

func clampRadius(r float32) float32 {
	if r < 0 {
		return 0
	}
	if r > 0.5 {
		return 0.5
	}
	return r
}

// withShift returns s with the given pan offset and the extras that depend
// on it recomputed.
func (s ViewportState) withShift(shiftCellX, shiftX, shiftCellY, shiftY int) ViewportState {
	s.shiftCellX, s.shiftX = shiftCellX, shiftX
	s.shiftCellY, s.shiftY = shiftCellY, shiftY
	s.viewColumnsExtra = extraSlots(shiftX, s.viewWidthExtra, s.cellSize)
	s.viewRowsExtra = extraSlots(shiftY, s.viewHeightExtra, s.cellSize)
	s.viewCellEndX = s.viewColumns + s.viewColumnsExtra - 1
	s.viewCellEndY = s.viewRows + s.viewRowsExtra - 1
	return s
}

// extraSlots counts the partially visible slots beyond the whole ones.
func extraSlots(shift, extra, cellSize int) int {
	n := 0
	if shift != 0 {
		n = 1
	}
	switch {
	case shift > 0:
		if extra > shift {
			n++
		}
	case shift < 0:
		if extra > cellSize+shift {
			n++
		}
	default:
		if extra > 0 {
			n++
		}
	}
	return n
}

func (s ViewportState) blockParams() render.BlockParams {
	return render.BlockParams{
		ViewWidth:     s.viewWidth,
		ViewHeight:    s.viewHeight,
		CellSize:      s.cellSize,
		CellPadding:   s.cellPadding,
		Shape:         s.shape,
		Fade:          s.fade,
		RoundedRadius: s.roundedRadius,
		Shading:       s.shading,
	}
}

// params returns the state as scaled Params, for reconfigurations that keep
// the unit system.
func (s ViewportState) params() Params {
	return Params{
		ViewWidth:     s.viewWidth,
		ViewHeight:    s.viewHeight,
		CellSize:      s.cellSize,
		CellPadding:   s.cellPadding,
		Shape:         s.shape,
		Fade:          s.fade,
		RoundedRadius: s.roundedRadius,
		Shading:       s.shading,
		Background:    s.background,
		Transparency:  s.transparency,
		Scaling:       s.scaler.Enabled,
		Scaled:        true,
	}
}

// LogicalParams returns the state as logical Params with the given scaling
// flag, for reconfigurations that may switch unit systems.
func (s ViewportState) LogicalParams(scaling bool) Params {
	p := s.params()
	p.ViewWidth = s.scaler.Unscaled(s.viewWidth)
	p.ViewHeight = s.scaler.Unscaled(s.viewHeight)
	p.CellSize = s.scaler.Unscaled(s.cellSize)
	p.CellPadding = s.scaler.Unscaled(s.cellPadding)
	p.Scaling = scaling
	p.Scaled = false
	return p
}

// Accessors for the state in buffer pixels. ViewCellEnd is the index of the
// last whole slot on each axis; the Extra values count the pixels and the
// partially visible slots beyond the whole ones.
func (s ViewportState) Scaler() Scaler            { return s.scaler }
func (s ViewportState) ViewWidth() int            { return s.viewWidth }
func (s ViewportState) ViewHeight() int           { return s.viewHeight }
func (s ViewportState) CellSize() int             { return s.cellSize }
func (s ViewportState) CellPadding() int          { return s.cellPadding }
func (s ViewportState) Shape() render.Shape       { return s.shape }
func (s ViewportState) Fade() float32             { return s.fade }
func (s ViewportState) RoundedRadius() float32    { return s.roundedRadius }
func (s ViewportState) Shading() bool             { return s.shading }
func (s ViewportState) Transparency() uint8       { return s.transparency }
func (s ViewportState) ViewColumns() int          { return s.viewColumns }
func (s ViewportState) ViewRows() int             { return s.viewRows }
func (s ViewportState) ViewWidthExtra() int       { return s.viewWidthExtra }
func (s ViewportState) ViewHeightExtra() int      { return s.viewHeightExtra }
func (s ViewportState) ViewColumnsExtra() int     { return s.viewColumnsExtra }
func (s ViewportState) ViewRowsExtra() int        { return s.viewRowsExtra }
func (s ViewportState) ViewCellEnd() (int, int)   { return s.viewCellEndX, s.viewCellEndY }
func (s ViewportState) ShiftCell() (int, int)     { return s.shiftCellX, s.shiftCellY }
func (s ViewportState) Shift() (int, int)         { return s.shiftX, s.shiftY }
func (s ViewportState) BackgroundRaw() core.Color { return s.background }

// Background is the background color with the view transparency applied.
func (s ViewportState) Background() core.Color {
	return s.background.WithAlpha(s.transparency)
}

// ShiftTotal returns the pan offset in buffer pixels.
func (s ViewportState) ShiftTotal() (int, int) {
	return s.shiftCellX*s.cellSize + s.shiftX, s.shiftCellY*s.cellSize + s.shiftY
}

// Logical is the viewport expressed in logical units.
type Logical struct {
	ViewWidth   int
	ViewHeight  int
	CellSize    int
	CellPadding int
	ShiftCellX  int
	ShiftCellY  int
	ShiftX      int
	ShiftY      int
}

// Logical converts the state to logical units. The shift is decomposed
// from the logical total so that 0 <= |shift| < cell size holds there too.
func (s ViewportState) Logical() Logical {
	cs := max(s.scaler.Unscaled(s.cellSize), 1)
	tx, ty := s.ShiftTotal()
	tx, ty = s.scaler.Unscaled(tx), s.scaler.Unscaled(ty)
	return Logical{
		ViewWidth:   s.scaler.Unscaled(s.viewWidth),
		ViewHeight:  s.scaler.Unscaled(s.viewHeight),
		CellSize:    cs,
		CellPadding: s.scaler.Unscaled(s.cellPadding),
		ShiftCellX:  tx / cs,
		ShiftCellY:  ty / cs,
		ShiftX:      tx % cs,
		ShiftY:      ty % cs,
	}
}

// ShiftTotal returns the logical pan offset.
func (l Logical) ShiftTotal() (int, int) {
	return l.ShiftCellX*l.CellSize + l.ShiftX, l.ShiftCellY*l.CellSize + l.ShiftY
}
