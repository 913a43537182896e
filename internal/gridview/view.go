package gridview

import (
	"cellgrid/internal/core"
	"cellgrid/internal/render"
)

// GridView renders a pannable, zoomable window onto a Grid into an RGBA
// buffer. It is not safe for concurrent use.
type GridView struct {
	cfg      Config
	screen   Screen
	observer Observer
	grid     *core.Grid

	state  ViewportState
	blocks *render.Blocks
	buf    *render.Buffer

	// skipped counts runs dropped by the buffer bounds check in the
	// current write pass.
	skipped int
}

// New builds a view for cfg on screen. The grid is created with factory,
// sized to cfg.GridColumns by cfg.GridRows or to the visible cells when
// those are zero. A nil screen is a 1x screen of the configured view size;
// a nil observer ignores notifications.
func New(cfg Config, screen Screen, factory core.CellFactory, observer Observer) *GridView {
	cfg = cfg.normalized()
	if screen == nil {
		screen = StaticScreen{ScaleFactor: 1, W: cfg.ViewWidth, H: cfg.ViewHeight}
	}
	if observer == nil {
		observer = NopObserver{}
	}
	v := &GridView{
		cfg:      cfg,
		screen:   screen,
		observer: observer,
		buf:      render.NewBuffer(0, 0),
	}

	viewWidth, viewHeight := cfg.ViewWidth, cfg.ViewHeight
	if viewWidth <= 0 {
		viewWidth = screen.Width()
	}
	if viewHeight <= 0 {
		viewHeight = screen.Height()
	}
	pref := PreferredSizeFor(cfg.Fit, cfg.CellSize, viewWidth, viewHeight, cfg.FitMarginMax)
	v.reconfigure(Params{
		ViewWidth:     pref.ViewWidth,
		ViewHeight:    pref.ViewHeight,
		CellSize:      pref.CellSize,
		CellPadding:   cfg.CellPadding,
		Shape:         cfg.CellShape,
		Fade:          cfg.CellAntialiasFade,
		RoundedRadius: cfg.CellRoundedRadius,
		Shading:       cfg.CellShading,
		Background:    cfg.ViewBackground,
		Transparency:  cfg.ViewTransparency,
		Scaling:       cfg.ViewScaling,
	})

	columns, rows := cfg.GridColumns, cfg.GridRows
	if cfg.Fit == FitFixed || columns <= 0 {
		columns = v.state.viewColumns
	}
	if cfg.Fit == FitFixed || rows <= 0 {
		rows = v.state.viewRows
	}
	v.grid = core.NewGrid(columns, rows, cfg.CellColor, factory)

	if cfg.Center {
		v.Center()
	} else {
		v.PanScaled(0, 0, false)
	}
	return v
}

// reconfigure swaps in a new state and template, resizing the buffer when
// its byte size changes. It does not write any cells.
func (v *GridView) reconfigure(p Params) {
	v.state, v.blocks = Reconfigure(v.state, p, v.screen.Scale(), v.cfg.Limits)
	if v.buf.Resize(v.state.viewWidth, v.state.viewHeight) {
		Logger().Debug("gridview: buffer allocated",
			"width", v.buf.Width(), "height", v.buf.Height(), "bytes", len(v.buf.Pix()))
	}
}

// Configure applies logical parameters, keeping the logical pan offset, and
// redraws.
func (v *GridView) Configure(p Params) {
	v.reconfigure(p)
	v.Redraw()
}

// Redraw re-applies the current pan offset and rewrites every visible cell.
func (v *GridView) Redraw() {
	x, y := v.state.ShiftTotal()
	v.PanScaled(x, y, false)
}

// Config returns the configuration the view was built with, updated by the
// setters below.
func (v *GridView) Config() Config { return v.cfg }

// State returns the current viewport state.
func (v *GridView) State() ViewportState { return v.state }

// Blocks returns the current coverage template.
func (v *GridView) Blocks() *render.Blocks { return v.blocks }

// Buffer returns the pixel buffer. Callers must not write to it.
func (v *GridView) Buffer() *render.Buffer { return v.buf }

// Grid returns the backing cell grid.
func (v *GridView) Grid() *core.Grid { return v.grid }

// Screen returns the screen the view renders for.
func (v *GridView) Screen() Screen { return v.screen }

// SetObserver replaces the observer; nil ignores notifications.
func (v *GridView) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	v.observer = o
}

// CellSize returns the logical cell size.
func (v *GridView) CellSize() int { return v.state.Logical().CellSize }

// MinCellSize and MaxCellSize return the logical zoom bounds for the
// current padding and shape.
func (v *GridView) MinCellSize() int {
	sc := NewScaler(1, false)
	return minCellSize(v.state.Logical().CellPadding, v.state.shape, sc, v.cfg.Limits)
}

func (v *GridView) MaxCellSize() int {
	l := v.state.Logical()
	return max(maxCellSize(v.cfg.Limits.CellSizeMax, l.ViewWidth, l.ViewHeight), v.MinCellSize())
}

// Scaling reports whether the buffer is currently in device pixels.
func (v *GridView) Scaling() bool { return v.state.scaler.Enabled }

// SetScaling switches unit systems, keeping the logical pan and zoom state.
// Scaling stays off while the shape is square or inset.
func (v *GridView) SetScaling(enabled bool) {
	v.cfg.ViewScaling = enabled
	v.Configure(v.state.LogicalParams(enabled))
}

// SetCellSize zooms to a logical cell size around the view center.
func (v *GridView) SetCellSize(cellSize int) {
	v.ResizeCells(cellSize, true, false)
}

// SetCellPadding changes the logical padding.
func (v *GridView) SetCellPadding(padding int) {
	p := v.state.LogicalParams(v.cfg.ViewScaling)
	p.CellPadding = padding
	v.cfg.CellPadding = padding
	v.Configure(p)
}

// SetCellShape changes the shape; scaling follows the shape.
func (v *GridView) SetCellShape(shape render.Shape) {
	p := v.state.LogicalParams(v.cfg.ViewScaling)
	p.Shape = shape
	v.cfg.CellShape = shape
	v.Configure(p)
}

// SetShading toggles the shading gradient.
func (v *GridView) SetShading(shading bool) {
	p := v.state.LogicalParams(v.cfg.ViewScaling)
	p.Shading = shading
	v.cfg.CellShading = shading
	v.Configure(p)
}

// SetAntialiasFade changes the coverage ramp width.
func (v *GridView) SetAntialiasFade(fade float32) {
	p := v.state.LogicalParams(v.cfg.ViewScaling)
	p.Fade = fade
	v.cfg.CellAntialiasFade = fade
	v.Configure(p)
}

// SetRoundedRadius changes the corner radius fraction, clamped to [0, 0.5].
func (v *GridView) SetRoundedRadius(radius float32) {
	p := v.state.LogicalParams(v.cfg.ViewScaling)
	p.RoundedRadius = radius
	v.cfg.CellRoundedRadius = clampRadius(radius)
	v.Configure(p)
}

// SetBackground changes the background color and transparency.
func (v *GridView) SetBackground(c core.Color, transparency uint8) {
	p := v.state.LogicalParams(v.cfg.ViewScaling)
	p.Background = c
	p.Transparency = transparency
	v.cfg.ViewBackground = c
	v.cfg.ViewTransparency = transparency
	v.Configure(p)
}

// SetViewSize changes the logical view size, applying the fit mode.
func (v *GridView) SetViewSize(width, height int) {
	p := v.state.LogicalParams(v.cfg.ViewScaling)
	pref := PreferredSizeFor(v.cfg.Fit, p.CellSize, width, height, v.cfg.FitMarginMax)
	p.ViewWidth, p.ViewHeight, p.CellSize = pref.ViewWidth, pref.ViewHeight, pref.CellSize
	v.cfg.ViewWidth, v.cfg.ViewHeight = width, height
	v.Configure(p)
}

// ResizeGrid changes the grid dimensions, keeping surviving cells.
func (v *GridView) ResizeGrid(columns, rows int) {
	v.grid.Resize(columns, rows)
	v.cfg.GridColumns, v.cfg.GridRows = v.grid.W, v.grid.H
	v.Redraw()
}

// SetWrap toggles wraparound per axis.
func (v *GridView) SetWrap(x, y bool) {
	v.cfg.WrapX, v.cfg.WrapY = x, y
	v.Redraw()
}

// SetRestrict changes the pan restriction policy.
func (v *GridView) SetRestrict(policy RestrictPolicy) {
	v.cfg.Restrict = policy
	v.Redraw()
}

// SetSelectMode makes drags select cells instead of panning.
func (v *GridView) SetSelectMode(on bool) { v.cfg.SelectMode = on }

// SetUnscaledZoom makes zoom gestures run with scaling off.
func (v *GridView) SetUnscaledZoom(on bool) { v.cfg.UnscaledZoom = on }
