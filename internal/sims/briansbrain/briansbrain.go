package briansbrain

import (
	"strconv"

	"cellgrid/internal/core"
	pcore "cellgrid/pkg/core"
)

// State is the phase of a Brian's Brain cell.
type State uint8

const (
	StateDead State = iota
	StateOn
	StateDying
)

// Cell shows its color while firing, a dimmed color while dying and the
// dead color otherwise.
type Cell struct {
	loc   core.Location
	state State
	on    core.Color
	dead  core.Color
}

func (c *Cell) Location() core.Location { return c.loc }

func (c *Cell) Color() core.Color {
	switch c.state {
	case StateOn:
		return c.on
	case StateDying:
		return c.on.Shade(0.45)
	default:
		return c.dead
	}
}

func (c *Cell) SetColor(col core.Color) { c.on = col }

// Select fires the cell.
func (c *Cell) Select(core.SelectPhase) { c.state = StateOn }

// State returns the cell phase.
func (c *Cell) State() State { return c.state }

// SetState sets the cell phase.
func (c *Cell) SetState(s State) { c.state = s }

// Brain implements Brian's Brain over the cells of a grid.
type Brain struct {
	dead    core.Color
	density int
	nxt     []State
}

// New creates a Brain simulation. One cell in density starts firing on
// Reset.
func New(dead core.Color, density int) *Brain {
	if density <= 0 {
		density = 8
	}
	return &Brain{dead: dead, density: density}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// NewCell builds a cell, keeping the phase and color of prev when it was a
// Brain cell.
func (b *Brain) NewCell(x, y int, fg core.Color, prev core.Cell) core.Cell {
	c := &Cell{loc: core.Location{X: x, Y: y}, on: fg, dead: b.dead}
	if p, ok := prev.(*Cell); ok {
		c.state, c.on = p.state, p.on
	}
	return c
}

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(g *core.Grid, seed int64) {
	rng := pcore.NewRNG(seed)
	for _, cell := range g.Cells() {
		c, ok := cell.(*Cell)
		if !ok {
			continue
		}
		if rng.IntN(b.density) == 0 {
			c.state = StateOn
			continue
		}
		c.state = StateDead
	}
}

func stateOf(cell core.Cell) State {
	if c, ok := cell.(*Cell); ok {
		return c.state
	}
	return StateDead
}

// Step advances the automaton by one tick.
func (b *Brain) Step(g *core.Grid) {
	w, h := g.W, g.H
	cells := g.Cells()
	if len(b.nxt) != len(cells) {
		b.nxt = make([]State, len(cells))
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := g.Index(x, y)
			switch stateOf(cells[idx]) {
			case StateOn:
				b.nxt[idx] = StateDying
			case StateDying:
				b.nxt[idx] = StateDead
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := g.Wrap(x+dx, y+dy)
						if stateOf(cells[g.Index(nx, ny)]) == StateOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					b.nxt[idx] = StateOn
				} else {
					b.nxt[idx] = StateDead
				}
			}
		}
	}
	for i, cell := range cells {
		if c, ok := cell.(*Cell); ok {
			c.state = b.nxt[i]
		}
	}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		dead := core.RGB(20, 20, 26)
		density := 8
		if v, ok := cfg["dead_color"]; ok {
			if parsed, err := core.ParseColor(v); err == nil {
				dead = parsed
			}
		}
		if v, ok := cfg["density"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				density = parsed
			}
		}
		return New(dead, density)
	})
}
