package gridview

import "math"

// DefaultZoomAnchor places the zoom anchor at the view center.
const DefaultZoomAnchor = 0.5

// AdjustShiftTotal returns the pan offset along one axis after the cell size
// changes from cellSize by increment, keeping the pixel at anchor*viewSize
// over the same grid position.
//
// The recurrence advances one cell-size unit at a time, rounding up when
// the intermediate size is even and down when it is odd. Collapsing it into
// a single step gives different results.
func AdjustShiftTotal(viewSize, cellSize, increment, shiftTotal int, anchor float64) int {
	if increment == 0 || cellSize <= 0 {
		return shiftTotal
	}
	step := 1
	if increment < 0 {
		step = -1
	}
	a := float64(viewSize) * anchor
	total := float64(shiftTotal)
	cs := cellSize
	for i := 0; i != increment; i += step {
		delta := (a - total) * float64(step) / float64(cs)
		cs += step
		if cs <= 0 {
			break
		}
		if cs%2 == 0 {
			total = math.Ceil(total - delta)
		} else {
			total = math.Floor(total - delta)
		}
	}
	return int(total)
}

// ResizeCells changes the cell size, clamped to the valid range. With
// adjustShift the view center stays over the same grid position; otherwise
// the current pan offset is reused as is. scaled says whether cellSize is in
// buffer pixels.
func (v *GridView) ResizeCells(cellSize int, adjustShift, scaled bool) {
	v.resizeCells(cellSize, adjustShift, scaled, DefaultZoomAnchor, DefaultZoomAnchor)
}

func (v *GridView) resizeCells(cellSize int, adjustShift, scaled bool, anchorX, anchorY float64) {
	s := v.state
	if !scaled {
		cellSize = s.scaler.Scaled(cellSize)
	}
	cellSize = constrainCellSize(cellSize, s.cellPadding, s.shape, s.scaler, v.cfg.Limits, s.viewWidth, s.viewHeight)
	if cellSize == s.cellSize {
		return
	}

	totalX, totalY := s.ShiftTotal()
	if adjustShift {
		increment := cellSize - s.cellSize
		totalX = AdjustShiftTotal(s.viewWidth, s.cellSize, increment, totalX, anchorX)
		totalY = AdjustShiftTotal(s.viewHeight, s.cellSize, increment, totalY, anchorY)
	}

	p := s.params()
	p.CellSize = cellSize
	v.state, v.blocks = Reconfigure(ViewportState{}, p, v.screen.Scale(), v.cfg.Limits)
	v.PanScaled(totalX, totalY, false)

	Logger().Debug("gridview: zoom", "from", s.cellSize, "to", cellSize, "shift", [2]int{totalX, totalY})
	v.observer.CellSizeChanged(v.CellSize())
}

// ZoomSession tracks one zoom gesture. Factors passed to Zoom and End are
// relative to the cell size when the gesture began.
type ZoomSession struct {
	v              *GridView
	start          int
	anchorX        float64
	anchorY        float64
	restoreScaling bool
}

// BeginZoom starts a zoom gesture anchored at the view center.
func (v *GridView) BeginZoom() *ZoomSession {
	return v.beginZoom(DefaultZoomAnchor, DefaultZoomAnchor)
}

// BeginZoomAt starts a zoom gesture anchored at the logical point p.
func (v *GridView) BeginZoomAt(p Point) *ZoomSession {
	l := v.state.Logical()
	ax, ay := DefaultZoomAnchor, DefaultZoomAnchor
	if l.ViewWidth > 0 {
		ax = clampAnchor(p.X / float64(l.ViewWidth))
	}
	if l.ViewHeight > 0 {
		ay = clampAnchor(p.Y / float64(l.ViewHeight))
	}
	return v.beginZoom(ax, ay)
}

func (v *GridView) beginZoom(ax, ay float64) *ZoomSession {
	z := &ZoomSession{v: v, anchorX: ax, anchorY: ay}
	if v.cfg.UnscaledZoom && v.Scaling() {
		v.SetScaling(false)
		v.cfg.ViewScaling = true
		z.restoreScaling = true
	}
	z.start = v.state.cellSize
	return z
}

// Zoom resizes cells to the start size times factor, rounded half to even
// in buffer pixels.
func (z *ZoomSession) Zoom(factor float64) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	cellSize := int(math.RoundToEven(float64(z.start) * factor))
	z.v.resizeCells(cellSize, true, true, z.anchorX, z.anchorY)
}

// End applies the final factor and restores scaling if the gesture turned
// it off.
func (z *ZoomSession) End(factor float64) {
	z.Zoom(factor)
	if z.restoreScaling {
		z.v.SetScaling(true)
		z.restoreScaling = false
	}
}

// StartCellSize returns the cell size in buffer pixels when the gesture
// began.
func (z *ZoomSession) StartCellSize() int { return z.start }

func clampAnchor(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
