package gridview

import (
	"math"

	"cellgrid/internal/core"
)

// Point is a logical pointer position relative to the view's top-left.
type Point struct {
	X, Y float64
}

// wrapX reports whether wraparound is in effect horizontally: it needs to be
// enabled and the grid must be at least as wide as the view.
func (v *GridView) wrapX() bool {
	return v.cfg.WrapX && v.grid != nil && v.grid.W*v.state.cellSize >= v.state.viewWidth
}

func (v *GridView) wrapY() bool {
	return v.cfg.WrapY && v.grid != nil && v.grid.H*v.state.cellSize >= v.state.viewHeight
}

// ViewLocationOf returns the viewport slot under the logical point p.
func (v *GridView) ViewLocationOf(p Point) (core.Location, bool) {
	s := v.state
	sc := s.scaler
	x := int(math.Floor(sc.ScaledF(p.X)))
	y := int(math.Floor(sc.ScaledF(p.Y)))
	if x < 0 || y < 0 || x >= s.viewWidth || y >= s.viewHeight {
		return core.Location{}, false
	}
	vx := slotOf(x, s.shiftX, s.cellSize)
	vy := slotOf(y, s.shiftY, s.cellSize)
	if vx > s.viewCellEndX || vy > s.viewCellEndY {
		return core.Location{}, false
	}
	return core.Location{X: vx, Y: vy}, true
}

// slotOf aligns pixel coordinate v so that slot 0 is the first, possibly
// partial, visible cell.
func slotOf(v, shift, cellSize int) int {
	if shift > 0 {
		return (v + cellSize - shift) / cellSize
	}
	return (v - shift) / cellSize
}

func carry(shift int) int {
	if shift > 0 {
		return 1
	}
	return 0
}

// GridLocationOf returns the grid address shown in viewport slot view.
func (v *GridView) GridLocationOf(view core.Location) (core.Location, bool) {
	s := v.state
	gx := view.X - s.shiftCellX - carry(s.shiftX)
	gy := view.Y - s.shiftCellY - carry(s.shiftY)
	if v.wrapX() {
		gx = mod(gx, v.grid.W)
	}
	if v.wrapY() {
		gy = mod(gy, v.grid.H)
	}
	if !v.grid.Contains(gx, gy) {
		return core.Location{}, false
	}
	return core.Location{X: gx, Y: gy}, true
}

// ViewLocationOfGrid returns the viewport slot showing grid address g, or
// false when it is not visible. With wraparound the smallest congruent
// visible slot is returned.
func (v *GridView) ViewLocationOfGrid(g core.Location) (core.Location, bool) {
	if !v.grid.Contains(g.X, g.Y) {
		return core.Location{}, false
	}
	s := v.state
	vx := g.X + s.shiftCellX + carry(s.shiftX)
	vy := g.Y + s.shiftCellY + carry(s.shiftY)
	if v.wrapX() {
		vx = mod(vx, v.grid.W)
	}
	if v.wrapY() {
		vy = mod(vy, v.grid.H)
	}
	if vx < 0 || vy < 0 || vx > s.viewCellEndX || vy > s.viewCellEndY {
		return core.Location{}, false
	}
	return core.Location{X: vx, Y: vy}, true
}

// GridCellAt returns the cell under the logical point p.
func (v *GridView) GridCellAt(p Point) (core.Cell, bool) {
	view, ok := v.ViewLocationOf(p)
	if !ok {
		return nil, false
	}
	return v.GridCellAtView(view)
}

// GridCellAtView returns the cell shown in viewport slot view.
func (v *GridView) GridCellAtView(view core.Location) (core.Cell, bool) {
	g, ok := v.GridLocationOf(view)
	if !ok {
		return nil, false
	}
	return v.grid.Cell(g.X, g.Y)
}

// VisibleCells returns every grid cell currently shown, in slot order.
// Under wraparound a cell may appear twice.
func (v *GridView) VisibleCells() []core.Cell {
	s := v.state
	var cells []core.Cell
	for vy := 0; vy <= s.viewCellEndY; vy++ {
		for vx := 0; vx <= s.viewCellEndX; vx++ {
			if c, ok := v.GridCellAtView(core.Location{X: vx, Y: vy}); ok {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	return (a%n + n) % n
}
