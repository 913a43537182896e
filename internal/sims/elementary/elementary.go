package elementary

import (
	"strconv"

	"cellgrid/internal/core"
	pcore "cellgrid/pkg/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Rule   uint8
	Off    core.Color
	Random bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 110, Off: core.RGB(20, 20, 24)}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["off_color"]; ok {
		if parsed, err := core.ParseColor(v); err == nil {
			c.Off = parsed
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	return c
}

// Cell is one site of the automaton's history.
type Cell struct {
	loc core.Location
	on  bool
	fg  core.Color
	off core.Color
}

func (c *Cell) Location() core.Location { return c.loc }

func (c *Cell) Color() core.Color {
	if c.on {
		return c.fg
	}
	return c.off
}

func (c *Cell) SetColor(col core.Color) { c.fg = col }

// Select toggles the cell, so taps on the top row edit the next generation.
func (c *Cell) Select(phase core.SelectPhase) {
	if phase == core.SelectTap {
		c.on = !c.on
		return
	}
	c.on = true
}

// On reports whether the cell is set.
func (c *Cell) On() bool { return c.on }

// Elementary implements a one-dimensional Wolfram code. The top grid row is
// the current generation; older generations scroll downwards.
type Elementary struct {
	cfg Config
	tmp []bool
}

// New creates an automaton with the given configuration.
func New(cfg Config) *Elementary {
	return &Elementary{cfg: cfg}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Rule returns the Wolfram code.
func (e *Elementary) Rule() uint8 { return e.cfg.Rule }

// NewCell builds a cell, keeping the state of prev when it was ours.
func (e *Elementary) NewCell(x, y int, fg core.Color, prev core.Cell) core.Cell {
	c := &Cell{loc: core.Location{X: x, Y: y}, fg: fg, off: e.cfg.Off}
	if p, ok := prev.(*Cell); ok {
		c.on, c.fg = p.on, p.fg
	}
	return c
}

// Reset clears the grid and seeds the top row, with a single active cell in
// the middle or randomly when configured.
func (e *Elementary) Reset(g *core.Grid, seed int64) {
	for _, cell := range g.Cells() {
		if c, ok := cell.(*Cell); ok {
			c.on = false
		}
	}
	if e.cfg.Random {
		rng := pcore.NewRNG(seed)
		for x := 0; x < g.W; x++ {
			e.set(g, x, 0, rng.Bool())
		}
		return
	}
	e.set(g, g.W/2, 0, true)
}

// Step computes the next generation into the top row and scrolls history
// down by one row.
func (e *Elementary) Step(g *core.Grid) {
	w := g.W
	if len(e.tmp) != w {
		e.tmp = make([]bool, w)
	}
	for x := 0; x < w; x++ {
		e.tmp[x] = e.on(g, x, 0)
	}
	for y := g.H - 1; y > 0; y-- {
		for x := 0; x < w; x++ {
			e.set(g, x, y, e.on(g, x, y-1))
		}
	}
	bit := func(v bool) uint8 {
		if v {
			return 1
		}
		return 0
	}
	for x := 0; x < w; x++ {
		left := bit(e.tmp[(x-1+w)%w])
		center := bit(e.tmp[x])
		right := bit(e.tmp[(x+1)%w])
		idx := (left << 2) | (center << 1) | right
		e.set(g, x, 0, (e.cfg.Rule>>idx)&1 == 1)
	}
}

func (e *Elementary) on(g *core.Grid, x, y int) bool {
	c, ok := g.Cell(x, y)
	if !ok {
		return false
	}
	ec, ok := c.(*Cell)
	return ok && ec.on
}

func (e *Elementary) set(g *core.Grid, x, y int, on bool) {
	if c, ok := g.Cell(x, y); ok {
		if ec, ok := c.(*Cell); ok {
			ec.on = on
		}
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
