package gridview

import (
	"math"

	"cellgrid/internal/core"
)

// Actions turns pointer gestures into pans, zooms and cell selections.
type Actions struct {
	v    *GridView
	drag *dragSession
	zoom *ZoomSession
}

type dragSession struct {
	start     Point
	shiftX    int
	shiftY    int
	selecting bool
	last      core.Location
	hasLast   bool
	lastPhase core.SelectPhase
}

// NewActions returns a gesture handler for v.
func NewActions(v *GridView) *Actions {
	return &Actions{v: v}
}

// View returns the view the actions drive.
func (a *Actions) View() *GridView { return a.v }

// OnTap selects the cell under p. It reports whether a cell was hit.
func (a *Actions) OnTap(p Point) bool {
	return a.selectAt(p, core.SelectTap)
}

func (a *Actions) selectAt(p Point, phase core.SelectPhase) bool {
	cell, ok := a.v.GridCellAt(p)
	if !ok {
		return false
	}
	cell.Select(phase)
	loc := cell.Location()
	a.v.WriteGridCell(loc.X, loc.Y)
	return true
}

// OnDrag handles one drag movement to p. The first call starts the drag.
// In select mode a drag that starts on a cell selects the cells it crosses
// instead of panning.
func (a *Actions) OnDrag(p Point) {
	a.dragTo(p, false)
}

// OnDragEnd finishes the drag at p.
func (a *Actions) OnDragEnd(p Point) {
	a.dragTo(p, true)
	a.drag = nil
}

// Dragging reports whether a drag is in progress.
func (a *Actions) Dragging() bool { return a.drag != nil }

func (a *Actions) dragTo(p Point, end bool) {
	if a.drag == nil {
		x, y := a.v.state.ShiftTotal()
		a.drag = &dragSession{
			start:  p,
			shiftX: x,
			shiftY: y,
		}
		if a.v.cfg.SelectMode {
			_, a.drag.selecting = a.v.GridCellAt(p)
		}
	}
	d := a.drag

	if d.selecting {
		phase := core.SelectDragging
		if end {
			phase = core.SelectDragEnd
		}
		cell, ok := a.v.GridCellAt(p)
		if !ok {
			return
		}
		loc := cell.Location()
		if d.hasLast && loc == d.last && phase == d.lastPhase {
			return
		}
		d.last, d.hasLast, d.lastPhase = loc, true, phase
		cell.Select(phase)
		a.v.WriteGridCell(loc.X, loc.Y)
		return
	}

	sc := a.v.state.scaler
	dx := int(math.Round(sc.ScaledF(p.X - d.start.X)))
	dy := int(math.Round(sc.ScaledF(p.Y - d.start.Y)))
	a.v.PanScaled(d.shiftX+dx, d.shiftY+dy, !end)
}

// OnZoom applies a pinch or wheel factor relative to the cell size at the
// start of the gesture, which begins on the first call.
func (a *Actions) OnZoom(factor float64) {
	if a.zoom == nil {
		a.zoom = a.v.BeginZoom()
	}
	a.zoom.Zoom(factor)
}

// OnZoomAt is OnZoom with the gesture anchored at p.
func (a *Actions) OnZoomAt(factor float64, p Point) {
	if a.zoom == nil {
		a.zoom = a.v.BeginZoomAt(p)
	}
	a.zoom.Zoom(factor)
}

// OnZoomEnd finishes the zoom gesture.
func (a *Actions) OnZoomEnd(factor float64) {
	if a.zoom == nil {
		a.zoom = a.v.BeginZoom()
	}
	a.zoom.End(factor)
	a.zoom = nil
}

// Zooming reports whether a zoom gesture is in progress.
func (a *Actions) Zooming() bool { return a.zoom != nil }

// ZoomStep zooms by whole cell-size units around the view center, as a
// keyboard or wheel step.
func (a *Actions) ZoomStep(units int) {
	a.v.ResizeCells(a.v.CellSize()+units, true, false)
}
