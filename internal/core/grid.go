package core

const (
	// MinGridSize and MaxGridSize bound the columns and rows of a Grid.
	MinGridSize = 1
	MaxGridSize = 5000
)

// Grid stores a 2D collection of cells in row-major order.
type Grid struct {
	W, H    int
	fg      Color
	factory CellFactory
	cells   []Cell
}

// NewGrid allocates a grid with the given dimensions. A nil factory builds
// BasicCells colored fg.
func NewGrid(w, h int, fg Color, factory CellFactory) *Grid {
	if factory == nil {
		factory = BasicCellFactory
	}
	g := &Grid{fg: fg, factory: factory}
	g.Resize(w, h)
	return g
}

// Cells exposes the backing slice so callers can iterate all cells.
func (g *Grid) Cells() []Cell { return g.cells }

// Foreground is the color new cells are created with.
func (g *Grid) Foreground() Color { return g.fg }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) addresses a cell.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Cell returns the cell at (x, y), or false when the address is outside the grid.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.Contains(x, y) {
		return nil, false
	}
	return g.cells[g.Index(x, y)], true
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Resize changes the grid dimensions. Cells whose address still exists are
// handed to the factory as the previous occupant; the rest are created fresh.
func (g *Grid) Resize(w, h int) {
	w = ClampInt(w, MinGridSize, MaxGridSize)
	h = ClampInt(h, MinGridSize, MaxGridSize)
	old, oldW, oldH := g.cells, g.W, g.H
	cells := make([]Cell, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var prev Cell
			if x < oldW && y < oldH {
				prev = old[y*oldW+x]
			}
			cells[y*w+x] = g.factory(x, y, g.fg, prev)
		}
	}
	g.W, g.H, g.cells = w, h, cells
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Color) {
	for _, cell := range g.cells {
		cell.SetColor(c)
	}
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
