package gridview

import (
	"time"

	"cellgrid/internal/core"
	"cellgrid/internal/render"
)

// writeCells rewrites every visible slot in row-major order and notifies
// the observer.
func (v *GridView) writeCells() {
	start := time.Now()
	s := v.state
	v.skipped = 0
	for vy := 0; vy <= s.viewCellEndY; vy++ {
		for vx := 0; vx <= s.viewCellEndX; vx++ {
			v.WriteCell(vx, vy)
		}
	}
	Logger().Debug("gridview: write pass",
		"slots", (s.viewCellEndX+1)*(s.viewCellEndY+1), "skipped_runs", v.skipped,
		"elapsed", time.Since(start))
	v.observer.ImageChanged()
}

// WriteCell renders viewport slot (vx, vy) into the buffer, using the
// background color when no grid cell is shown there.
func (v *GridView) WriteCell(vx, vy int) {
	s := v.state
	cs := s.cellSize
	bg := s.Background()

	fg, ok := bg, false
	if cell, found := v.GridCellAtView(core.Location{X: vx, Y: vy}); found {
		fg, ok = cell.Color(), true
	}

	truncate := truncation(vx, s.viewCellEndX, s.shiftX, s.viewWidthExtra, cs)

	shiftX, shiftY := s.shiftX, s.shiftY
	if shiftX > 0 {
		shiftX -= cs
	}
	if shiftY > 0 {
		shiftY -= cs
	}
	offset := cs*vx + shiftX + (cs*vy+shiftY)*s.viewWidth

	emit := func(r *render.Run, index, count int) {
		if !v.buf.FillRun(offset+index, count, runColor(r, fg, bg, ok)) {
			v.skipped++
		}
	}
	for _, r := range v.blocks.Runs() {
		r.WriteTruncated(truncate, emit)
	}
}

// runColor resolves the packed color of one run.
func runColor(r *render.Run, fg, bg core.Color, foreground bool) core.Color {
	if !foreground || !r.Foreground {
		return bg
	}
	if r.Shade != 1 {
		fg = fg.Shade(r.Shade)
	}
	if r.Coverage >= 1 {
		return fg
	}
	return fg.Lerp(bg, r.Coverage)
}

// truncation returns the column clip for slot vx: positive keeps the cell
// columns at or right of the value, negative keeps those left of its
// magnitude, zero keeps all.
func truncation(vx, viewCellEnd, shift, viewSizeExtra, cellSize int) int {
	switch {
	case shift > 0:
		if vx == 0 {
			return cellSize - shift
		}
		if vx == viewCellEnd {
			if viewSizeExtra > 0 {
				return -((cellSize - shift + viewSizeExtra) % cellSize)
			}
			return -(cellSize - shift)
		}
	case shift < 0:
		if vx == 0 {
			return -shift
		}
		if vx == viewCellEnd {
			if viewSizeExtra > 0 {
				return -((viewSizeExtra - shift) % cellSize)
			}
			return shift
		}
	default:
		if vx == viewCellEnd && viewSizeExtra > 0 {
			return -viewSizeExtra
		}
	}
	return 0
}

// WriteGridCell rewrites every slot showing grid address (x, y) and
// notifies the observer. It reports whether the cell was visible.
func (v *GridView) WriteGridCell(x, y int) bool {
	view, ok := v.ViewLocationOfGrid(core.Location{X: x, Y: y})
	if !ok {
		return false
	}
	s := v.state
	stepX, stepY := s.viewCellEndX+1, s.viewCellEndY+1
	if v.wrapX() {
		stepX = v.grid.W
	}
	if v.wrapY() {
		stepY = v.grid.H
	}
	for vy := view.Y; vy <= s.viewCellEndY; vy += stepY {
		for vx := view.X; vx <= s.viewCellEndX; vx += stepX {
			v.WriteCell(vx, vy)
		}
	}
	v.observer.ImageChanged()
	return true
}
