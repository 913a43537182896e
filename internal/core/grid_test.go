package core

import "testing"

func TestGridResizePreservesCells(t *testing.T) {
	g := NewGrid(3, 2, White, nil)
	c, _ := g.Cell(2, 1)
	c.SetColor(Dark)

	g.Resize(4, 4)
	if g.W != 4 || g.H != 4 || len(g.Cells()) != 16 {
		t.Fatalf("resized grid = %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
	if c, _ := g.Cell(2, 1); c.Color() != Dark {
		t.Fatalf("surviving cell color = %v, want %v", c.Color(), Dark)
	}
	if c, _ := g.Cell(3, 3); c.Color() != White {
		t.Fatalf("new cell color = %v, want %v", c.Color(), White)
	}
	for _, cell := range g.Cells() {
		loc := cell.Location()
		if got, _ := g.Cell(loc.X, loc.Y); got != cell {
			t.Fatalf("cell at %v stored at wrong index", loc)
		}
	}
}

func TestGridClampsSize(t *testing.T) {
	g := NewGrid(0, MaxGridSize+10, White, nil)
	if g.W != MinGridSize || g.H != MaxGridSize {
		t.Fatalf("grid = %dx%d", g.W, g.H)
	}
}

func TestGridAbsence(t *testing.T) {
	g := NewGrid(2, 2, White, nil)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, ok := g.Cell(p[0], p[1]); ok {
			t.Fatalf("Cell(%d,%d) should be absent", p[0], p[1])
		}
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(5, 3, White, nil)
	x, y := g.Wrap(-1, 4)
	if x != 4 || y != 1 {
		t.Fatalf("Wrap(-1,4) = %d,%d", x, y)
	}
}
