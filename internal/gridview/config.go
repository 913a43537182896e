package gridview

import (
	"fmt"
	"strconv"
	"strings"

	"cellgrid/internal/core"
	"cellgrid/internal/render"
)

// Fit controls whether the cell size is chosen so the view holds a whole
// number of cells.
type Fit int

const (
	// FitDisabled keeps the configured cell size and view size.
	FitDisabled Fit = iota
	// FitEnabled picks the preferred cell size closest to the configured one
	// and shrinks the view so no partial cells remain.
	FitEnabled
	// FitViewOnly shrinks the view only when the configured cell size is
	// already a preferred size.
	FitViewOnly
	// FitFixed is FitEnabled with the grid sized to exactly the visible cells.
	FitFixed
)

func (f Fit) String() string {
	switch f {
	case FitDisabled:
		return "disabled"
	case FitEnabled:
		return "enabled"
	case FitViewOnly:
		return "view-only"
	case FitFixed:
		return "fixed"
	default:
		return fmt.Sprintf("Fit(%d)", int(f))
	}
}

// ParseFit maps a fit name to a Fit.
func ParseFit(s string) (Fit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled", "off", "false", "":
		return FitDisabled, true
	case "enabled", "on", "true":
		return FitEnabled, true
	case "view-only", "viewonly":
		return FitViewOnly, true
	case "fixed":
		return FitFixed, true
	}
	return FitDisabled, false
}

// RestrictPolicy selects how far a pan may move the grid.
type RestrictPolicy int

const (
	// RestrictLenient keeps at least one grid cell visible.
	RestrictLenient RestrictPolicy = iota
	// RestrictStrict keeps the grid covering the view.
	RestrictStrict
	// RestrictNone allows unbounded panning.
	RestrictNone
)

func (r RestrictPolicy) String() string {
	switch r {
	case RestrictLenient:
		return "lenient"
	case RestrictStrict:
		return "strict"
	case RestrictNone:
		return "none"
	default:
		return fmt.Sprintf("RestrictPolicy(%d)", int(r))
	}
}

// ParseRestrictPolicy maps "lenient", "strict" or "none" to a policy.
func ParseRestrictPolicy(s string) (RestrictPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lenient":
		return RestrictLenient, true
	case "strict":
		return RestrictStrict, true
	case "none", "off":
		return RestrictNone, true
	}
	return RestrictLenient, false
}

// Limits bound the logical cell geometry.
type Limits struct {
	CellSizeMax      int
	CellSizeInnerMin int
	CellPaddingMax   int
}

// DefaultLimits returns the standard bounds.
func DefaultLimits() Limits {
	return Limits{
		CellSizeMax:      200,
		CellSizeInnerMin: 1,
		CellPaddingMax:   8,
	}
}

// Config holds the startup parameters of a GridView. Sizes are logical.
type Config struct {
	// ViewWidth and ViewHeight default to the screen size when zero.
	ViewWidth        int
	ViewHeight       int
	ViewBackground   core.Color
	ViewTransparency uint8
	ViewScaling      bool

	CellSize          int
	CellPadding       int
	CellShape         render.Shape
	CellShading       bool
	CellColor         core.Color
	CellAntialiasFade float32
	CellRoundedRadius float32

	// GridColumns and GridRows default to the number of visible cells.
	GridColumns int
	GridRows    int

	Fit          Fit
	FitMarginMax int
	Center       bool
	Restrict     RestrictPolicy
	UnscaledZoom bool
	WrapX        bool
	WrapY        bool
	SelectMode   bool

	Limits Limits
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		ViewBackground:    core.Dark,
		ViewTransparency:  core.Opaque,
		ViewScaling:       true,
		CellSize:          25,
		CellPadding:       1,
		CellShape:         render.ShapeRounded,
		CellColor:         core.White,
		CellAntialiasFade: render.DefaultAntialiasFade,
		CellRoundedRadius: render.DefaultRoundedRadius,
		Fit:               FitDisabled,
		FitMarginMax:      30,
		Restrict:          RestrictLenient,
		Limits:            DefaultLimits(),
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	setInt := func(key string, dst *int, min int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
				*dst = parsed
			}
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseBool(v); err == nil {
				*dst = parsed
			}
		}
	}
	setFloat := func(key string, dst *float32) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
				*dst = float32(parsed)
			}
		}
	}
	setColor := func(key string, dst *core.Color) {
		if v, ok := cfg[key]; ok {
			if parsed, err := core.ParseColor(v); err == nil {
				*dst = parsed
			}
		}
	}

	setInt("view_width", &c.ViewWidth, 0)
	setInt("view_height", &c.ViewHeight, 0)
	setColor("background", &c.ViewBackground)
	if v, ok := cfg["transparency"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 8); err == nil {
			c.ViewTransparency = uint8(parsed)
		}
	}
	setBool("scaling", &c.ViewScaling)

	setInt("cell_size", &c.CellSize, 1)
	setInt("cell_padding", &c.CellPadding, 0)
	if v, ok := cfg["shape"]; ok {
		if parsed, ok := render.ParseShape(v); ok {
			c.CellShape = parsed
		}
	}
	setBool("shading", &c.CellShading)
	setColor("cell_color", &c.CellColor)
	setFloat("fade", &c.CellAntialiasFade)
	setFloat("rounded_radius", &c.CellRoundedRadius)

	setInt("columns", &c.GridColumns, 0)
	setInt("rows", &c.GridRows, 0)

	if v, ok := cfg["fit"]; ok {
		if parsed, ok := ParseFit(v); ok {
			c.Fit = parsed
		}
	}
	setInt("fit_margin", &c.FitMarginMax, 0)
	setBool("center", &c.Center)
	if v, ok := cfg["restrict"]; ok {
		if parsed, ok := ParseRestrictPolicy(v); ok {
			c.Restrict = parsed
		}
	}
	setBool("unscaled_zoom", &c.UnscaledZoom)
	setBool("wrap_x", &c.WrapX)
	setBool("wrap_y", &c.WrapY)
	setBool("select_mode", &c.SelectMode)

	setInt("cell_size_max", &c.Limits.CellSizeMax, 1)
	setInt("cell_size_inner_min", &c.Limits.CellSizeInnerMin, 1)
	setInt("cell_padding_max", &c.Limits.CellPaddingMax, 0)
	return c.normalized()
}

// normalized clamps values that have a fixed valid range.
func (c Config) normalized() Config {
	if c.Limits.CellSizeMax <= 0 {
		c.Limits.CellSizeMax = DefaultLimits().CellSizeMax
	}
	if c.Limits.CellSizeInnerMin <= 0 {
		c.Limits.CellSizeInnerMin = 1
	}
	if c.Limits.CellPaddingMax < 0 {
		c.Limits.CellPaddingMax = 0
	}
	if c.CellRoundedRadius < 0 {
		c.CellRoundedRadius = 0
	}
	if c.CellRoundedRadius > 0.5 {
		c.CellRoundedRadius = 0.5
	}
	if c.CellAntialiasFade <= 0 {
		c.CellAntialiasFade = render.DefaultAntialiasFade
	}
	if c.GridColumns > core.MaxGridSize {
		c.GridColumns = core.MaxGridSize
	}
	if c.GridRows > core.MaxGridSize {
		c.GridRows = core.MaxGridSize
	}
	return c
}
