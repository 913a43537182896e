package app

import (
	"errors"
	"fmt"
	"time"

	"cellgrid/internal/core"
	"cellgrid/internal/gridview"
	"cellgrid/internal/render"
	"cellgrid/internal/ui"
)

// ErrUnknownSim is returned when -sim names no registered simulation.
var ErrUnknownSim = errors.New("unknown sim")

// Session ties a GridView to its gesture handler, its automation and the
// simulation providing the cells. Every host drives one.
type Session struct {
	View       *gridview.GridView
	Actions    *gridview.Actions
	Automation *gridview.Automation
	Sim        core.Sim

	seed int64
}

// NewSession builds the view described by cfg on screen. An empty cfg.Sim
// leaves the grid as plain cells.
func NewSession(cfg *Config, screen gridview.Screen, observer gridview.Observer) (*Session, error) {
	var sim core.Sim
	factory := core.CellFactory(core.BasicCellFactory)
	if cfg.Sim != "" {
		f, ok := core.Sims()[cfg.Sim]
		if !ok {
			return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownSim, cfg.Sim, core.SimNames())
		}
		sim = f(cfg.Settings.Section(SectionSim))
		factory = sim.NewCell
	}

	view := gridview.New(gridview.FromMap(cfg.Settings.Section(SectionView)), screen, factory, observer)
	s := &Session{
		View:       view,
		Actions:    gridview.NewActions(view),
		Automation: gridview.NewAutomation(view, sim, gridview.AutomationFromMap(cfg.Settings.Section(SectionAutomation))),
		Sim:        sim,
		seed:       cfg.Seed,
	}
	s.Automation.Reset(s.seed)
	view.Redraw()
	return s, nil
}

// Command is a host-independent key action.
type Command int

const (
	CmdNone Command = iota
	CmdToggleRun
	CmdStep
	CmdReset
	CmdReseed
	CmdZoomIn
	CmdZoomOut
	CmdPanLeft
	CmdPanRight
	CmdPanUp
	CmdPanDown
	CmdCenter
	CmdSelectRandom
	CmdUndulate
	CmdCycleShape
	CmdToggleShading
	CmdToggleWrap
	CmdToggleSelectMode
	CmdQuit
)

var runeCommands = map[rune]Command{
	' ': CmdToggleRun,
	'n': CmdStep,
	'r': CmdReset,
	'R': CmdReseed,
	'+': CmdZoomIn,
	'=': CmdZoomIn,
	'-': CmdZoomOut,
	'c': CmdCenter,
	't': CmdSelectRandom,
	'u': CmdUndulate,
	's': CmdCycleShape,
	'g': CmdToggleShading,
	'w': CmdToggleWrap,
	'm': CmdToggleSelectMode,
	'q': CmdQuit,
}

// CommandForRune maps a typed character to its command.
func CommandForRune(r rune) Command { return runeCommands[r] }

// Apply runs cmd and reports whether the host should keep going.
func (s *Session) Apply(cmd Command) bool {
	v := s.View
	a := s.Automation
	switch cmd {
	case CmdToggleRun:
		a.Toggle()
	case CmdStep:
		a.Step()
	case CmdReset:
		a.Reset(s.seed)
	case CmdReseed:
		s.seed = time.Now().UnixNano()
		a.Reset(s.seed)
	case CmdZoomIn:
		s.Actions.ZoomStep(1)
	case CmdZoomOut:
		s.Actions.ZoomStep(-1)
	case CmdPanLeft, CmdPanRight, CmdPanUp, CmdPanDown:
		s.panCell(cmd)
	case CmdCenter:
		v.Center()
	case CmdSelectRandom:
		a.SetSelectRandom(!a.SelectingRandom())
	case CmdUndulate:
		a.SetUndulation(!a.Undulating())
	case CmdCycleShape:
		v.SetCellShape(nextShape(v.State().Shape()))
	case CmdToggleShading:
		v.SetShading(!v.State().Shading())
	case CmdToggleWrap:
		c := v.Config()
		v.SetWrap(!c.WrapX, !c.WrapY)
	case CmdToggleSelectMode:
		v.SetSelectMode(!v.Config().SelectMode)
	case CmdQuit:
		return false
	}
	return true
}

func (s *Session) panCell(cmd Command) {
	l := s.View.State().Logical()
	x, y := l.ShiftTotal()
	switch cmd {
	case CmdPanLeft:
		x -= l.CellSize
	case CmdPanRight:
		x += l.CellSize
	case CmdPanUp:
		y -= l.CellSize
	case CmdPanDown:
		y += l.CellSize
	}
	s.View.Pan(x, y, false)
}

func nextShape(cur render.Shape) render.Shape {
	shapes := render.Shapes()
	for i, sh := range shapes {
		if sh == cur {
			return shapes[(i+1)%len(shapes)]
		}
	}
	return shapes[0]
}

// Status summarizes the session for overlays and status bars.
func (s *Session) Status() ui.Status {
	l := s.View.State().Logical()
	x, y := l.ShiftTotal()
	st := ui.Status{
		Running:   s.Automation.Running(),
		Selecting: s.Automation.SelectingRandom(),
		Undulate:  s.Automation.Undulating(),
		CellSize:  l.CellSize,
		ShiftX:    x,
		ShiftY:    y,
		Columns:   s.View.Grid().W,
		Rows:      s.View.Grid().H,
	}
	if s.Sim != nil {
		st.Sim = s.Sim.Name()
	}
	return st
}

// Title names the session for window titles and panels.
func (s *Session) Title() string {
	if s.Sim == nil {
		return "cellgrid"
	}
	return "cellgrid - " + s.Sim.Name()
}
