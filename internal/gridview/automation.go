package gridview

import (
	"strconv"
	"time"

	"cellgrid/internal/core"
	pcore "cellgrid/pkg/core"
)

// AutomationConfig controls the timed behaviours of an Automation.
type AutomationConfig struct {
	StepInterval         time.Duration
	SelectRandomInterval time.Duration
	UndulationInterval   time.Duration
	UndulationMin        int
	UndulationMax        int
	Seed                 int64
}

// DefaultAutomationConfig returns the standard intervals.
func DefaultAutomationConfig() AutomationConfig {
	return AutomationConfig{
		StepInterval:         100 * time.Millisecond,
		SelectRandomInterval: 250 * time.Millisecond,
		UndulationInterval:   50 * time.Millisecond,
		UndulationMin:        8,
		UndulationMax:        60,
		Seed:                 1337,
	}
}

// AutomationFromMap reads intervals in seconds and the undulation bounds
// from a flag-style map.
func AutomationFromMap(cfg map[string]string) AutomationConfig {
	c := DefaultAutomationConfig()
	if cfg == nil {
		return c
	}
	setSeconds := func(key string, dst *time.Duration) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				*dst = time.Duration(parsed * float64(time.Second))
			}
		}
	}
	setSeconds("automation_interval", &c.StepInterval)
	setSeconds("select_random_interval", &c.SelectRandomInterval)
	setSeconds("undulation_interval", &c.UndulationInterval)
	if v, ok := cfg["undulation_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.UndulationMin = parsed
		}
	}
	if v, ok := cfg["undulation_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.UndulationMax = parsed
		}
	}
	if c.UndulationMax < c.UndulationMin {
		c.UndulationMax = c.UndulationMin
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Automation drives a Sim and the optional random-selection and undulation
// modes from a host's frame loop. Everything runs inside Tick.
type Automation struct {
	v   *GridView
	sim core.Sim
	cfg AutomationConfig
	rng *pcore.RNG

	step         *core.FixedStep
	selectRandom *core.FixedStep
	undulation   *core.FixedStep

	running      bool
	selecting    bool
	undulating   bool
	undulateStep int
}

// NewAutomation binds sim to v. All modes start stopped.
func NewAutomation(v *GridView, sim core.Sim, cfg AutomationConfig) *Automation {
	return &Automation{
		v:            v,
		sim:          sim,
		cfg:          cfg,
		rng:          pcore.NewRNG(cfg.Seed),
		step:         core.NewFixedStep(cfg.StepInterval),
		selectRandom: core.NewFixedStep(cfg.SelectRandomInterval),
		undulation:   core.NewFixedStep(cfg.UndulationInterval),
		undulateStep: 1,
	}
}

// Sim returns the driven simulation.
func (a *Automation) Sim() core.Sim { return a.sim }

// Running reports whether the simulation is stepping.
func (a *Automation) Running() bool { return a.running }

// SetRunning starts or stops simulation stepping.
func (a *Automation) SetRunning(on bool) {
	if on && !a.running {
		a.step.Resume()
	}
	a.running = on
}

// Toggle flips SetRunning.
func (a *Automation) Toggle() { a.SetRunning(!a.running) }

// SelectingRandom reports whether random selection is on.
func (a *Automation) SelectingRandom() bool { return a.selecting }

// SetSelectRandom turns random selection of visible cells on or off.
func (a *Automation) SetSelectRandom(on bool) {
	if on && !a.selecting {
		a.selectRandom.Resume()
	}
	a.selecting = on
}

// Undulating reports whether undulation is on.
func (a *Automation) Undulating() bool { return a.undulating }

// SetUndulation turns the zoom in/out animation on or off.
func (a *Automation) SetUndulation(on bool) {
	if on && !a.undulating {
		a.undulation.Resume()
	}
	a.undulating = on
}

// SetStepInterval changes how often the simulation steps.
func (a *Automation) SetStepInterval(d time.Duration) {
	a.cfg.StepInterval = d
	a.step.SetInterval(d)
}

// StepInterval returns the simulation step interval.
func (a *Automation) StepInterval() time.Duration { return a.step.Interval() }

// Tick runs whatever modes are due at now and reports whether anything ran.
func (a *Automation) Tick(now time.Time) bool {
	ran := false
	if a.running && a.step.ShouldStep(now) {
		a.Step()
		ran = true
	}
	if a.selecting && a.selectRandom.ShouldStep(now) {
		a.SelectRandom()
		ran = true
	}
	if a.undulating && a.undulation.ShouldStep(now) {
		a.Undulate()
		ran = true
	}
	return ran
}

// Step advances the simulation once and redraws.
func (a *Automation) Step() {
	if a.sim == nil {
		return
	}
	a.sim.Step(a.v.Grid())
	a.v.Redraw()
}

// Reset reseeds the simulation and redraws.
func (a *Automation) Reset(seed int64) {
	if a.sim == nil {
		return
	}
	a.sim.Reset(a.v.Grid(), seed)
	a.v.Redraw()
}

// SelectRandom selects one random visible cell. Cells whose Select does
// nothing are recolored instead so the mode is visible on plain grids.
func (a *Automation) SelectRandom() bool {
	cells := a.v.VisibleCells()
	if len(cells) == 0 {
		return false
	}
	cell := cells[a.rng.IntN(len(cells))]
	if _, plain := cell.(*core.BasicCell); plain {
		cell.SetColor(core.FromColor(a.rng.RandomHue(0.7, 0.95)))
	} else {
		cell.Select(core.SelectTap)
	}
	loc := cell.Location()
	a.v.WriteGridCell(loc.X, loc.Y)
	return true
}

// Undulate moves the cell size one unit toward the current bound and turns
// around when it gets there.
func (a *Automation) Undulate() {
	lo := max(a.cfg.UndulationMin, a.v.MinCellSize())
	hi := min(a.cfg.UndulationMax, a.v.MaxCellSize())
	cs := a.v.CellSize()
	if cs+a.undulateStep > hi || cs+a.undulateStep < lo {
		a.undulateStep = -a.undulateStep
	}
	a.v.ResizeCells(cs+a.undulateStep, true, false)
}
