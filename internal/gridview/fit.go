package gridview

// PreferredSize is a cell size that tiles a view with little leftover, and
// the view size trimmed to whole cells.
type PreferredSize struct {
	CellSize   int
	ViewWidth  int
	ViewHeight int
}

// PreferredSizes lists, in ascending cell size, every cell size for which
// the leftover in both dimensions is at most marginMax.
func PreferredSizes(viewWidth, viewHeight, marginMax int) []PreferredSize {
	var sizes []PreferredSize
	for cs := 1; cs <= min(viewWidth, viewHeight); cs++ {
		mw := viewWidth % cs
		mh := viewHeight % cs
		if mw <= marginMax && mh <= marginMax {
			sizes = append(sizes, PreferredSize{
				CellSize:   cs,
				ViewWidth:  viewWidth - mw,
				ViewHeight: viewHeight - mh,
			})
		}
	}
	return sizes
}

// ClosestPreferredSize returns the entry whose cell size is nearest to
// cellSize; ties go to the smaller size.
func ClosestPreferredSize(sizes []PreferredSize, cellSize int) (PreferredSize, bool) {
	if len(sizes) == 0 {
		return PreferredSize{}, false
	}
	best := sizes[0]
	for _, s := range sizes[1:] {
		if abs(s.CellSize-cellSize) < abs(best.CellSize-cellSize) {
			best = s
		}
	}
	return best, true
}

// PreferredSizeFor applies fit to the requested logical geometry and
// returns the geometry to configure.
func PreferredSizeFor(fit Fit, cellSize, viewWidth, viewHeight, marginMax int) PreferredSize {
	want := PreferredSize{CellSize: cellSize, ViewWidth: viewWidth, ViewHeight: viewHeight}
	if fit == FitDisabled {
		return want
	}
	best, ok := ClosestPreferredSize(PreferredSizes(viewWidth, viewHeight, marginMax), cellSize)
	if !ok {
		return want
	}
	if fit == FitViewOnly {
		if best.CellSize != cellSize {
			return want
		}
		return best
	}
	Logger().Info("gridview: fit", "mode", fit.String(),
		"cell_size", best.CellSize, "view", [2]int{best.ViewWidth, best.ViewHeight})
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
