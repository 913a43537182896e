package ui

import (
	"math"
	"strconv"

	"cellgrid/internal/core"
)

// ControlState is one adjustable row of the status panel.
type ControlState struct {
	Control core.ParameterControl
	Value   string

	IntValue   int
	FloatValue float64
	HasValue   bool
}

// Controls tracks the adjustable settings of a ParameterSource and applies
// step adjustments to it.
type Controls struct {
	src    core.ParameterSource
	states []ControlState
}

// NewControls reads the control list of src once. A nil source has no
// controls.
func NewControls(src core.ParameterSource) *Controls {
	c := &Controls{src: src}
	if src == nil {
		return c
	}
	for _, ctrl := range src.ParameterControls() {
		c.states = append(c.states, ControlState{Control: ctrl, Value: "--"})
	}
	return c
}

// States returns the current rows.
func (c *Controls) States() []ControlState { return c.states }

// Refresh updates every row from snap.
func (c *Controls) Refresh(snap core.ParameterSnapshot) {
	for i := range c.states {
		state := &c.states[i]
		param, ok := snap.Lookup(state.Control.Key)
		if !ok {
			state.HasValue, state.Value = false, "--"
			continue
		}
		switch state.Control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.HasValue, state.Value = false, "--"
				continue
			}
			state.IntValue = parsed
			state.FloatValue = float64(parsed)
			state.Value = strconv.Itoa(parsed)
			state.HasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.HasValue, state.Value = false, "--"
				continue
			}
			state.FloatValue = parsed
			state.Value = FormatFloat(state.Control, parsed)
			state.HasValue = true
		default:
			state.HasValue, state.Value = false, "--"
		}
	}
}

// Adjust steps row i up (direction > 0) or down and applies the result to
// the source. It reports whether the value changed.
func (c *Controls) Adjust(i, direction int) bool {
	if c.src == nil || i < 0 || i >= len(c.states) || direction == 0 {
		return false
	}
	state := &c.states[i]
	if !state.HasValue {
		return false
	}
	switch state.Control.Type {
	case core.ParamTypeInt:
		target := intTarget(state, direction)
		if target == state.IntValue {
			return false
		}
		if !c.src.SetIntParameter(state.Control.Key, target) {
			return false
		}
		state.IntValue = target
		state.FloatValue = float64(target)
		state.Value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		target := floatTarget(state, direction)
		if math.Abs(target-state.FloatValue) < 1e-9 {
			return false
		}
		if !c.src.SetFloatParameter(state.Control.Key, target) {
			return false
		}
		state.FloatValue = target
		state.Value = FormatFloat(state.Control, target)
		return true
	}
	return false
}

// CanAdjust reports whether stepping row i in direction stays in bounds.
func (c *Controls) CanAdjust(i, direction int) bool {
	if c.src == nil || i < 0 || i >= len(c.states) || direction == 0 {
		return false
	}
	state := &c.states[i]
	if !state.HasValue {
		return false
	}
	switch state.Control.Type {
	case core.ParamTypeInt:
		return intTarget(state, direction) != state.IntValue
	case core.ParamTypeFloat:
		return math.Abs(floatTarget(state, direction)-state.FloatValue) >= 1e-9
	}
	return false
}

func intTarget(state *ControlState, direction int) int {
	step := int(math.Round(state.Control.Step))
	if step <= 0 {
		step = 1
	}
	target := state.IntValue + direction*step
	if state.Control.HasMin {
		target = max(target, int(math.Round(state.Control.Min)))
	}
	if state.Control.HasMax {
		target = min(target, int(math.Round(state.Control.Max)))
	}
	return target
}

func floatTarget(state *ControlState, direction int) float64 {
	step := state.Control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.FloatValue + float64(direction)*step
	if state.Control.HasMin && target < state.Control.Min {
		target = state.Control.Min
	}
	if state.Control.HasMax && target > state.Control.Max {
		target = state.Control.Max
	}
	return target
}

// FormatFloat renders value with a precision matching the control's step.
func FormatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	var precision int
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
