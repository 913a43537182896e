package briansbrain

import (
	"testing"

	"cellgrid/internal/core"
)

func TestCycle(t *testing.T) {
	b := New(core.Black, 8)
	g := core.NewGrid(6, 6, core.White, b.NewCell)
	fire := func(x, y int) {
		c, _ := g.Cell(x, y)
		c.Select(core.SelectTap)
	}
	fire(2, 2)
	fire(3, 2)

	b.Step(g)
	state := func(x, y int) State {
		c, _ := g.Cell(x, y)
		return c.(*Cell).State()
	}
	if state(2, 2) != StateDying || state(3, 2) != StateDying {
		t.Fatalf("firing cells should be dying, got %v %v", state(2, 2), state(3, 2))
	}
	// Cells touching both firing cells start firing.
	for _, p := range [][2]int{{2, 1}, {3, 1}, {2, 3}, {3, 3}} {
		if state(p[0], p[1]) != StateOn {
			t.Fatalf("cell %v state = %v, want on", p, state(p[0], p[1]))
		}
	}
	if state(0, 0) != StateDead {
		t.Fatalf("far cell should stay dead")
	}

	b.Step(g)
	if state(2, 2) != StateDead {
		t.Fatalf("dying cell should be dead, got %v", state(2, 2))
	}
}

func TestColors(t *testing.T) {
	b := New(core.Black, 8)
	c := b.NewCell(0, 0, core.White, nil).(*Cell)
	if c.Color() != core.Black {
		t.Fatalf("dead color = %v", c.Color())
	}
	c.SetState(StateOn)
	if c.Color() != core.White {
		t.Fatalf("on color = %v", c.Color())
	}
	c.SetState(StateDying)
	if got := c.Color(); got == core.White || got == core.Black {
		t.Fatalf("dying color should be dimmed, got %v", got)
	}
}
