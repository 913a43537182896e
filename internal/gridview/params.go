package gridview

import (
	"fmt"
	"strconv"

	"cellgrid/internal/core"
)

// Parameter keys exposed to status panels.
const (
	ParamCellSize      = "cell_size"
	ParamCellPadding   = "cell_padding"
	ParamRoundedRadius = "rounded_radius"
	ParamFade          = "fade"
	ParamColumns       = "columns"
	ParamRows          = "rows"
)

// Parameters reports the view's current settings in logical units.
func (v *GridView) Parameters() core.ParameterSnapshot {
	l := v.state.Logical()
	sx, sy := l.ShiftTotal()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Cells",
			Params: []core.Parameter{
				intParam(ParamCellSize, "Cell size", l.CellSize),
				intParam(ParamCellPadding, "Padding", l.CellPadding),
				floatParam(ParamRoundedRadius, "Corner radius", float64(v.state.roundedRadius)),
				floatParam(ParamFade, "Antialias fade", float64(v.state.fade)),
				{Key: "shape", Label: "Shape", Value: v.state.shape.String()},
				{Key: "shading", Label: "Shading", Type: core.ParamTypeBool, Value: strconv.FormatBool(v.state.shading)},
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				{Key: "view_size", Label: "View", Value: fmt.Sprintf("%dx%d", l.ViewWidth, l.ViewHeight)},
				{Key: "shift", Label: "Shift", Value: fmt.Sprintf("%d,%d", sx, sy)},
				{Key: "scaling", Label: "Scaling", Type: core.ParamTypeBool, Value: strconv.FormatBool(v.Scaling())},
				{Key: "restrict", Label: "Restrict", Value: v.cfg.Restrict.String()},
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam(ParamColumns, "Columns", v.grid.W),
				intParam(ParamRows, "Rows", v.grid.H),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// ParameterControls lists the settings a panel may adjust.
func (v *GridView) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamCellSize, Label: "Cell size", Type: core.ParamTypeInt, Step: 1,
			Min: float64(v.MinCellSize()), Max: float64(v.MaxCellSize()), HasMin: true, HasMax: true},
		{Key: ParamCellPadding, Label: "Padding", Type: core.ParamTypeInt, Step: 1,
			Min: 0, Max: float64(v.cfg.Limits.CellPaddingMax), HasMin: true, HasMax: true},
		{Key: ParamRoundedRadius, Label: "Corner radius", Type: core.ParamTypeFloat, Step: 0.05,
			Min: 0, Max: 0.5, HasMin: true, HasMax: true},
		{Key: ParamFade, Label: "Antialias fade", Type: core.ParamTypeFloat, Step: 0.1,
			Min: 0.1, Max: 4, HasMin: true, HasMax: true},
		{Key: ParamColumns, Label: "Columns", Type: core.ParamTypeInt, Step: 1,
			Min: core.MinGridSize, Max: core.MaxGridSize, HasMin: true, HasMax: true},
		{Key: ParamRows, Label: "Rows", Type: core.ParamTypeInt, Step: 1,
			Min: core.MinGridSize, Max: core.MaxGridSize, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer control. Unknown keys return false.
func (v *GridView) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamCellSize:
		v.SetCellSize(value)
	case ParamCellPadding:
		v.SetCellPadding(value)
	case ParamColumns:
		v.ResizeGrid(value, v.grid.H)
	case ParamRows:
		v.ResizeGrid(v.grid.W, value)
	default:
		Logger().Warn("gridview: rejected parameter", "key", key, "value", value)
		return false
	}
	return true
}

// SetFloatParameter applies a float control. Unknown keys return false.
func (v *GridView) SetFloatParameter(key string, value float64) bool {
	switch key {
	case ParamRoundedRadius:
		v.SetRoundedRadius(float32(value))
	case ParamFade:
		if value <= 0 {
			Logger().Warn("gridview: rejected parameter", "key", key, "value", value)
			return false
		}
		v.SetAntialiasFade(float32(value))
	default:
		Logger().Warn("gridview: rejected parameter", "key", key, "value", value)
		return false
	}
	return true
}
