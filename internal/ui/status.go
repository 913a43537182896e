package ui

import (
	"fmt"
	"strings"
)

// Status is what the hosts show about a running view.
type Status struct {
	Sim       string
	Running   bool
	Selecting bool
	Undulate  bool
	CellSize  int
	ShiftX    int
	ShiftY    int
	Columns   int
	Rows      int
}

// Lines renders s for a status overlay, one fact per line.
func (s Status) Lines() []string {
	name := s.Sim
	if name == "" {
		name = "none"
	}
	state := "paused"
	if s.Running {
		state = "running"
	}
	var modes []string
	if s.Selecting {
		modes = append(modes, "select")
	}
	if s.Undulate {
		modes = append(modes, "undulate")
	}
	lines := []string{
		fmt.Sprintf("sim %s (%s)", name, state),
		fmt.Sprintf("grid %dx%d  cell %d", s.Columns, s.Rows, s.CellSize),
		fmt.Sprintf("shift %d,%d", s.ShiftX, s.ShiftY),
	}
	if len(modes) > 0 {
		lines = append(lines, "auto "+strings.Join(modes, "+"))
	}
	return lines
}

// Line joins Lines into a single status bar.
func (s Status) Line() string { return strings.Join(s.Lines(), " | ") }

// Help lists the keyboard bindings shared by the hosts.
var Help = []string{
	"space run/pause  n step  r reset",
	"+/- zoom  arrows pan  c center",
	"t select random  u undulate  s shape",
	"w wrap  m select mode  q quit",
}
