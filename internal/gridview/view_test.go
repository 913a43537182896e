package gridview

import (
	"errors"
	"testing"

	"cellgrid/internal/core"
	"cellgrid/internal/render"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ViewWidth, cfg.ViewHeight = 40, 40
	cfg.CellSize = 10
	cfg.CellPadding = 0
	cfg.CellShape = render.ShapeSquare
	cfg.GridColumns, cfg.GridRows = 4, 4
	return cfg
}

func cellColor(x, y int) core.Color {
	return core.RGB(uint8(10+x*40), uint8(10+y*40), 200)
}

func newTestView(t *testing.T, cfg Config, factory core.CellFactory) *GridView {
	t.Helper()
	screen := StaticScreen{ScaleFactor: 1, W: cfg.ViewWidth, H: cfg.ViewHeight}
	v := New(cfg, screen, factory, nil)
	for _, c := range v.Grid().Cells() {
		l := c.Location()
		c.SetColor(cellColor(l.X, l.Y))
	}
	v.Redraw()
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// expectPanned checks every pixel against the cell the pan offset puts
// there, or the background when the grid has no cell at that address.
func expectPanned(t *testing.T, v *GridView, totalX, totalY int) {
	t.Helper()
	buf := v.Buffer()
	cs := v.State().CellSize()
	bg := v.State().Background()
	for py := 0; py < buf.Height(); py++ {
		for px := 0; px < buf.Width(); px++ {
			gx, gy := floorDiv(px-totalX, cs), floorDiv(py-totalY, cs)
			want := bg
			if v.Grid().Contains(gx, gy) {
				want = cellColor(gx, gy)
			}
			if got, _ := buf.At(px, py); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v (grid %d,%d)", px, py, got, want, gx, gy)
			}
		}
	}
}

func TestUnshiftedGridIsByteExact(t *testing.T) {
	v := newTestView(t, testConfig(), nil)
	if v.Buffer().Width() != 40 || v.Buffer().Height() != 40 {
		t.Fatalf("buffer = %dx%d", v.Buffer().Width(), v.Buffer().Height())
	}
	expectPanned(t, v, 0, 0)
}

func TestPartialColumnAfterPan(t *testing.T) {
	v := newTestView(t, testConfig(), nil)
	v.Pan(5, 0, false)

	s := v.State()
	if cx, cy := s.ShiftCell(); cx != 0 || cy != 0 {
		t.Fatalf("shift cell = %d,%d", cx, cy)
	}
	if x, y := s.Shift(); x != 5 || y != 0 {
		t.Fatalf("shift = %d,%d", x, y)
	}
	if s.ViewColumnsExtra() != 1 {
		t.Fatalf("columns extra = %d, want 1", s.ViewColumnsExtra())
	}
	if endX, _ := s.ViewCellEnd(); endX != 4 {
		t.Fatalf("view cell end x = %d, want 4", endX)
	}
	for py := 0; py < 40; py++ {
		for px := 0; px < 5; px++ {
			if got, _ := v.Buffer().At(px, py); got != s.Background() {
				t.Fatalf("pixel (%d,%d) = %v, want background", px, py, got)
			}
		}
	}
	expectPanned(t, v, 5, 0)
}

func TestNegativePan(t *testing.T) {
	v := newTestView(t, testConfig(), nil)
	v.Pan(-3, -4, false)
	expectPanned(t, v, -3, -4)
}

func TestCircleCellPixels(t *testing.T) {
	cfg := testConfig()
	cfg.CellShape = render.ShapeCircle
	cfg.CellSize = 20
	cfg.GridColumns, cfg.GridRows = 2, 2
	v := newTestView(t, cfg, nil)
	if got, _ := v.Buffer().At(0, 0); got != v.State().Background() {
		t.Fatalf("corner pixel = %v, want background", got)
	}
	if got, _ := v.Buffer().At(10, 10); got != cellColor(0, 0) {
		t.Fatalf("center pixel = %v, want %v", got, cellColor(0, 0))
	}
	if got, _ := v.Buffer().At(30, 30); got != cellColor(1, 1) {
		t.Fatalf("center pixel of (1,1) = %v, want %v", got, cellColor(1, 1))
	}
}

func TestShiftInvariantAndIdempotence(t *testing.T) {
	for _, policy := range []RestrictPolicy{RestrictLenient, RestrictStrict, RestrictNone} {
		for _, size := range []int{2, 4, 8} {
			cfg := testConfig()
			cfg.Restrict = policy
			cfg.GridColumns, cfg.GridRows = size, size
			v := newTestView(t, cfg, nil)
			for total := -120; total <= 120; total += 7 {
				v.PanScaled(total, -total, false)
				s := v.State()
				cs := s.CellSize()
				sx, sy := s.Shift()
				if abs(sx) >= cs || abs(sy) >= cs {
					t.Fatalf("%v grid %d total %d: shift %d,%d out of range", policy, size, total, sx, sy)
				}
				tx, ty := s.ShiftTotal()
				cx, cy := s.ShiftCell()
				if cx*cs+sx != tx || cy*cs+sy != ty {
					t.Fatalf("%v: decomposition mismatch", policy)
				}
				v.PanScaled(tx, ty, false)
				if v.State() != s {
					t.Fatalf("%v grid %d total %d: re-applying clamped total changed state", policy, size, total)
				}
			}
		}
	}
}

func TestRoundTripMapping(t *testing.T) {
	cfg := testConfig()
	cfg.GridColumns, cfg.GridRows = 7, 5
	v := newTestView(t, cfg, nil)
	for _, pan := range [][2]int{{0, 0}, {5, 3}, {-13, -7}, {21, 9}, {-35, 0}} {
		v.Pan(pan[0], pan[1], false)
		endX, endY := v.State().ViewCellEnd()
		for vy := 0; vy <= endY; vy++ {
			for vx := 0; vx <= endX; vx++ {
				g, ok := v.GridLocationOf(core.Location{X: vx, Y: vy})
				if !ok {
					continue
				}
				slot, ok := v.ViewLocationOfGrid(g)
				if !ok {
					t.Fatalf("pan %v: grid %v has no slot", pan, g)
				}
				back, ok := v.GridLocationOf(slot)
				if !ok || back != g {
					t.Fatalf("pan %v: round trip %v -> %v -> %v", pan, g, slot, back)
				}
			}
		}
	}
}

func TestViewLocationOf(t *testing.T) {
	v := newTestView(t, testConfig(), nil)
	v.Pan(5, 0, false)
	cases := []struct {
		p    Point
		want core.Location
		ok   bool
	}{
		{Point{4.9, 0}, core.Location{X: 0, Y: 0}, true},
		{Point{5, 0}, core.Location{X: 1, Y: 0}, true},
		{Point{39.5, 39.5}, core.Location{X: 4, Y: 3}, true},
		{Point{40, 0}, core.Location{}, false},
		{Point{-1, 0}, core.Location{}, false},
	}
	for _, tc := range cases {
		got, ok := v.ViewLocationOf(tc.p)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ViewLocationOf(%v) = %v, %v; want %v, %v", tc.p, got, ok, tc.want, tc.ok)
		}
	}
	if _, ok := v.GridCellAt(Point{2, 2}); ok {
		t.Errorf("left partial column should have no cell")
	}
	c, ok := v.GridCellAt(Point{6, 2})
	if !ok || c.Location() != (core.Location{X: 0, Y: 0}) {
		t.Errorf("GridCellAt(6,2) = %v, %v", c, ok)
	}
}

func TestWraparound(t *testing.T) {
	cfg := testConfig()
	cfg.WrapX = true
	v := newTestView(t, cfg, nil)
	v.Pan(5, 0, false)
	if got, _ := v.Buffer().At(0, 0); got != cellColor(3, 0) {
		t.Fatalf("wrapped pixel = %v, want %v", got, cellColor(3, 0))
	}
	slot, ok := v.ViewLocationOfGrid(core.Location{X: 3, Y: 0})
	if !ok || slot.X != 0 {
		t.Fatalf("smallest slot of wrapped cell = %v, %v; want 0", slot, ok)
	}

	v.Pan(-45, 0, false)
	if x, _ := v.State().ShiftTotal(); x != 35 {
		t.Fatalf("wrapped total = %d, want 35", x)
	}
	c, ok := v.GridCellAt(Point{0, 0})
	if !ok || c.Location() != (core.Location{X: 0, Y: 0}) {
		t.Fatalf("GridCellAt after wrap = %v, %v", c, ok)
	}
	if _, ok := v.GridCellAt(Point{0, 39}); !ok {
		t.Fatalf("vertical axis should not wrap but grid fills the view")
	}
}

func TestCenter(t *testing.T) {
	cfg := testConfig()
	cfg.GridColumns, cfg.GridRows = 2, 2
	cfg.Center = true
	v := newTestView(t, cfg, nil)
	if x, y := v.State().ShiftTotal(); x != 10 || y != 10 {
		t.Fatalf("centered total = %d,%d; want 10,10", x, y)
	}
	expectPanned(t, v, 10, 10)
}

func TestReconfigureClamps(t *testing.T) {
	lim := DefaultLimits()
	s, _ := Reconfigure(ViewportState{}, Params{
		ViewWidth: 100, ViewHeight: 100, CellSize: 5, CellPadding: 20, Shape: render.ShapeInset,
	}, 1, lim)
	if s.CellPadding() != lim.CellPaddingMax {
		t.Fatalf("padding = %d, want %d", s.CellPadding(), lim.CellPaddingMax)
	}
	if want := lim.CellSizeInnerMin + 2*lim.CellPaddingMax; s.CellSize() != want {
		t.Fatalf("cell size = %d, want %d", s.CellSize(), want)
	}

	s, blocks := Reconfigure(ViewportState{}, Params{
		ViewWidth: 300, ViewHeight: 300, CellSize: 500, Shape: render.ShapeSquare,
	}, 1, lim)
	if s.CellSize() != lim.CellSizeMax {
		t.Fatalf("cell size = %d, want %d", s.CellSize(), lim.CellSizeMax)
	}
	if blocks.Params().CellSize != s.CellSize() {
		t.Fatalf("template built for %d, state has %d", blocks.Params().CellSize, s.CellSize())
	}

	s, _ = Reconfigure(ViewportState{}, Params{
		ViewWidth: 120, ViewHeight: 70, CellSize: 150, Shape: render.ShapeSquare,
	}, 1, lim)
	if s.CellSize() != 70 {
		t.Fatalf("cell size = %d, want the shorter view side 70", s.CellSize())
	}
}

func TestLargeCellsRewriteWholeBuffer(t *testing.T) {
	sentinel := core.RGB(255, 0, 255)
	for _, shape := range render.Shapes() {
		t.Run(shape.String(), func(t *testing.T) {
			cfg := testConfig()
			cfg.CellShape = shape
			cfg.Restrict = RestrictNone
			v := newTestView(t, cfg, nil)
			v.ResizeCells(60, false, false)
			if v.CellSize() != 40 {
				t.Fatalf("cell size = %d, want 40", v.CellSize())
			}
			for _, pan := range [][2]int{{-20, 0}, {-20, -13}, {7, 5}, {-39, 0}} {
				v.Buffer().Fill(sentinel)
				v.Pan(pan[0], pan[1], false)
				buf := v.Buffer()
				for py := 0; py < buf.Height(); py++ {
					for px := 0; px < buf.Width(); px++ {
						if got, _ := buf.At(px, py); got == sentinel {
							t.Fatalf("pan %v left pixel (%d,%d) unwritten", pan, px, py)
						}
					}
				}
			}
		})
	}
}

func TestScalingToggleKeepsLogicalState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ViewWidth, cfg.ViewHeight = 50, 50
	cfg.CellSize = 10
	cfg.GridColumns, cfg.GridRows = 10, 10
	v := New(cfg, StaticScreen{ScaleFactor: 2, W: 50, H: 50}, nil, nil)
	v.Pan(7, 3, false)

	before := v.State().Logical()
	if v.Buffer().Width() != 100 || v.State().CellSize() != 20 {
		t.Fatalf("scaled buffer %d, cell %d", v.Buffer().Width(), v.State().CellSize())
	}

	v.SetScaling(false)
	if v.Buffer().Width() != 50 || v.State().CellSize() != 10 {
		t.Fatalf("unscaled buffer %d, cell %d", v.Buffer().Width(), v.State().CellSize())
	}
	if got := v.State().Logical(); got != before {
		t.Fatalf("logical state changed: %+v vs %+v", got, before)
	}

	v.SetScaling(true)
	if got := v.State().Logical(); got != before {
		t.Fatalf("logical state changed after restoring: %+v vs %+v", got, before)
	}
	if x, y := v.State().ShiftTotal(); x != 14 || y != 6 {
		t.Fatalf("scaled total = %d,%d; want 14,6", x, y)
	}
}

func TestSquareShapeDisablesScaling(t *testing.T) {
	cfg := testConfig()
	v := New(cfg, StaticScreen{ScaleFactor: 2, W: 40, H: 40}, nil, nil)
	if v.Scaling() || v.Buffer().Width() != 40 {
		t.Fatalf("square cells should render unscaled, buffer %d", v.Buffer().Width())
	}
	v.SetCellShape(render.ShapeRounded)
	if !v.Scaling() || v.Buffer().Width() != 80 || v.CellSize() != 10 {
		t.Fatalf("rounded cells should render scaled: scaling=%v buffer=%d cell=%d",
			v.Scaling(), v.Buffer().Width(), v.CellSize())
	}
	v.SetCellShape(render.ShapeSquare)
	if v.Scaling() || v.Buffer().Width() != 40 {
		t.Fatalf("square cells should render unscaled again")
	}
}

func TestSnapshot(t *testing.T) {
	v := newTestView(t, testConfig(), nil)
	snap, err := v.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Width != 40 || snap.Height != 40 || snap.Stride != 160 || len(snap.Pix) != 40*160 {
		t.Fatalf("snapshot = %dx%d stride %d len %d", snap.Width, snap.Height, snap.Stride, len(snap.Pix))
	}
	if got := core.FromColor(snap.Image().At(15, 5)); got != cellColor(1, 0) {
		t.Fatalf("snapshot pixel = %v, want %v", got, cellColor(1, 0))
	}
	snap.Pix[0] = 0
	if got, _ := v.Buffer().At(0, 0); got != cellColor(0, 0) {
		t.Fatalf("snapshot shares memory with the buffer")
	}
}

func TestSnapshotWithoutSurface(t *testing.T) {
	cfg := testConfig()
	cfg.ViewWidth, cfg.ViewHeight = 0, 0
	v := New(cfg, StaticScreen{ScaleFactor: 1}, nil, nil)
	if _, err := v.Snapshot(); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("Snapshot error = %v, want ErrNoSurface", err)
	}
}

func TestObserverNotified(t *testing.T) {
	images, sizes := 0, []int{}
	obs := ObserverFuncs{
		OnImageChanged:    func() { images++ },
		OnCellSizeChanged: func(cs int) { sizes = append(sizes, cs) },
	}
	v := newTestView(t, testConfig(), nil)
	v.SetObserver(obs)
	v.Pan(3, 3, false)
	if images != 1 {
		t.Fatalf("image notifications = %d, want 1", images)
	}
	v.SetCellSize(12)
	if len(sizes) != 1 || sizes[0] != 12 {
		t.Fatalf("cell size notifications = %v", sizes)
	}
	v.SetCellSize(12)
	if len(sizes) != 1 {
		t.Fatalf("unchanged cell size should not notify")
	}
}

func TestResizeGridKeepsColors(t *testing.T) {
	v := newTestView(t, testConfig(), nil)
	v.ResizeGrid(2, 6)
	if v.Grid().W != 2 || v.Grid().H != 6 {
		t.Fatalf("grid = %dx%d", v.Grid().W, v.Grid().H)
	}
	if c, _ := v.Grid().Cell(1, 1); c.Color() != cellColor(1, 1) {
		t.Fatalf("surviving cell lost its color")
	}
	if got, _ := v.Buffer().At(25, 5); got != v.State().Background() {
		t.Fatalf("pixel past the narrowed grid = %v, want background", got)
	}
}

func TestParameters(t *testing.T) {
	v := newTestView(t, testConfig(), nil)
	if !v.SetIntParameter(ParamCellSize, 15) {
		t.Fatalf("cell size control rejected")
	}
	p, ok := v.Parameters().Lookup(ParamCellSize)
	if !ok || p.Value != "15" {
		t.Fatalf("cell_size parameter = %+v, %v", p, ok)
	}
	if v.SetIntParameter("nope", 1) || v.SetFloatParameter("nope", 1) {
		t.Fatalf("unknown keys should be rejected")
	}
	if !v.SetFloatParameter(ParamRoundedRadius, 0.9) || v.State().RoundedRadius() != 0.5 {
		t.Fatalf("rounded radius = %v, want clamped 0.5", v.State().RoundedRadius())
	}
}
