package life

import (
	"strconv"

	"cellgrid/internal/core"
	pcore "cellgrid/pkg/core"
)

// Config controls the look and seeding of the Life simulation.
type Config struct {
	Off     core.Color
	Density float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Off: core.RGB(28, 28, 34), Density: 0.25}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["off_color"]; ok {
		if parsed, err := core.ParseColor(v); err == nil {
			c.Off = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Cell is a Life cell: alive cells show their color, dead ones the off color.
type Cell struct {
	loc   core.Location
	alive bool
	on    core.Color
	off   core.Color
}

func (c *Cell) Location() core.Location { return c.loc }

func (c *Cell) Color() core.Color {
	if c.alive {
		return c.on
	}
	return c.off
}

// SetColor sets the color shown while alive.
func (c *Cell) SetColor(col core.Color) { c.on = col }

// Select toggles the cell on a tap and brings it to life while dragging.
func (c *Cell) Select(phase core.SelectPhase) {
	if phase == core.SelectTap {
		c.alive = !c.alive
		return
	}
	c.alive = true
}

// Alive reports whether the cell is alive.
func (c *Cell) Alive() bool { return c.alive }

// SetAlive sets the cell state.
func (c *Cell) SetAlive(alive bool) { c.alive = alive }

// Life implements Conway's Game of Life with toroidal wrapping over the
// cells of a grid.
type Life struct {
	cfg Config
	nxt []bool
}

// New returns a Life simulation.
func New(cfg Config) *Life {
	return &Life{cfg: cfg}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// NewCell builds a cell, keeping the state and color of prev when it was a
// Life cell.
func (l *Life) NewCell(x, y int, fg core.Color, prev core.Cell) core.Cell {
	c := &Cell{loc: core.Location{X: x, Y: y}, on: fg, off: l.cfg.Off}
	if p, ok := prev.(*Cell); ok {
		c.alive, c.on = p.alive, p.on
	}
	return c
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(g *core.Grid, seed int64) {
	rng := pcore.NewRNG(seed).Source()
	for _, cell := range g.Cells() {
		if c, ok := cell.(*Cell); ok {
			c.alive = rng.Float64() < l.cfg.Density
		}
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step(g *core.Grid) {
	w, h := g.W, g.H
	cells := g.Cells()
	if len(l.nxt) != len(cells) {
		l.nxt = make([]bool, len(cells))
	}
	alive := func(x, y int) int {
		x, y = g.Wrap(x, y)
		if c, ok := cells[g.Index(x, y)].(*Cell); ok && c.alive {
			return 1
		}
		return 0
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					neighbors += alive(x+dx, y+dy)
				}
			}
			self := alive(x, y) == 1
			l.nxt[g.Index(x, y)] = (self && (neighbors == 2 || neighbors == 3)) || (!self && neighbors == 3)
		}
	}
	for i, cell := range cells {
		if c, ok := cell.(*Cell); ok {
			c.alive = l.nxt[i]
		}
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
