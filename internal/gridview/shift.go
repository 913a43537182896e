package gridview

// Pan moves the grid to the logical offset (totalX, totalY) from its
// resting position and rewrites the view. dragging relaxes the strict
// policy so the grid may overscroll while a drag is in progress.
func (v *GridView) Pan(totalX, totalY int, dragging bool) {
	sc := v.state.scaler
	v.PanScaled(sc.Scaled(totalX), sc.Scaled(totalY), dragging)
}

// PanScaled is Pan with the offset in buffer pixels.
func (v *GridView) PanScaled(totalX, totalY int, dragging bool) {
	s := v.state
	cs := s.cellSize
	if cs <= 0 {
		return
	}

	if v.wrapX() {
		totalX = mod(totalX, v.grid.W*cs)
	}
	if v.wrapY() {
		totalY = mod(totalY, v.grid.H*cs)
	}
	shiftCellX, shiftX := totalX/cs, totalX%cs
	shiftCellY, shiftY := totalY/cs, totalY%cs

	switch v.cfg.Restrict {
	case RestrictStrict:
		if !v.wrapX() {
			shiftCellX, shiftX = restrictStrict(shiftCellX, shiftX, cs, s.viewWidth, v.grid.W, dragging)
		}
		if !v.wrapY() {
			shiftCellY, shiftY = restrictStrict(shiftCellY, shiftY, cs, s.viewHeight, v.grid.H, dragging)
		}
	case RestrictLenient:
		if !v.wrapX() {
			shiftCellX, shiftX = restrictLenient(shiftCellX, shiftX, cs, s.viewColumns-1, s.viewWidthExtra, s.viewWidth, v.grid.W)
		}
		if !v.wrapY() {
			shiftCellY, shiftY = restrictLenient(shiftCellY, shiftY, cs, s.viewRows-1, s.viewHeightExtra, s.viewHeight, v.grid.H)
		}
	}

	v.state = s.withShift(shiftCellX, shiftX, shiftCellY, shiftY)
	v.writeCells()
}

// Center places the grid in the middle of the view.
func (v *GridView) Center() {
	s := v.state
	x := (s.viewWidth - v.grid.W*s.cellSize) / 2
	y := (s.viewHeight - v.grid.H*s.cellSize) / 2
	v.PanScaled(x, y, false)
}

// restrictStrict keeps the grid covering the view on one axis. A grid
// smaller than the view slides between the leading and trailing edges. A
// larger grid never exposes empty space, except while dragging.
func restrictStrict(shiftCell, shift, cellSize, viewSize, gridCells int, dragging bool) (int, int) {
	total := shiftCell*cellSize + shift
	gridSize := gridCells * cellSize
	if gridSize < viewSize {
		if shift < 0 || shiftCell < 0 {
			return 0, 0
		}
		if total > viewSize-gridSize {
			total = viewSize - gridSize
			return total / cellSize, total % cellSize
		}
		return shiftCell, shift
	}
	if dragging {
		return shiftCell, shift
	}
	if shift > 0 || shiftCell > 0 {
		return 0, 0
	}
	if total < 0 && gridSize+total < viewSize {
		total = viewSize - gridSize
		return total / cellSize, total % cellSize
	}
	return shiftCell, shift
}

// restrictLenient lets the grid move until only one cell of it is visible
// at either edge. viewCellEnd is the index of the last whole visible slot.
func restrictLenient(shiftCell, shift, cellSize, viewCellEnd, viewSizeExtra, viewSize, gridCells int) (int, int) {
	if shiftCell >= viewCellEnd {
		if viewSizeExtra > 0 {
			total := shiftCell*cellSize + shift
			if viewSize-total <= cellSize {
				adjusted := viewSize - cellSize
				return adjusted / cellSize, adjusted % cellSize
			}
			return shiftCell, shift
		}
		return viewCellEnd, 0
	}
	if -shiftCell >= gridCells-1 {
		return -(gridCells - 1), 0
	}
	return shiftCell, shift
}
