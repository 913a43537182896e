package gridview

import (
	"testing"

	"cellgrid/internal/render"
)

func TestPreferredSizes(t *testing.T) {
	sizes := PreferredSizes(100, 60, 0)
	var got []int
	for _, s := range sizes {
		got = append(got, s.CellSize)
		if s.ViewWidth != 100 || s.ViewHeight != 60 {
			t.Fatalf("exact fit trimmed the view: %+v", s)
		}
	}
	want := []int{1, 2, 4, 5, 10, 20}
	if len(got) != len(want) {
		t.Fatalf("sizes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sizes = %v, want %v", got, want)
		}
	}

	best, ok := ClosestPreferredSize(sizes, 12)
	if !ok || best.CellSize != 10 {
		t.Fatalf("closest to 12 = %+v", best)
	}
	if _, ok := ClosestPreferredSize(nil, 12); ok {
		t.Fatalf("empty list produced a size")
	}
}

func TestClosestPreferredSizePrefersSmaller(t *testing.T) {
	best, ok := ClosestPreferredSize(PreferredSizes(12, 12, 0), 5)
	if !ok || best.CellSize != 4 {
		t.Fatalf("closest to 5 = %+v, want 4", best)
	}
}

func TestPreferredSizeFor(t *testing.T) {
	cases := []struct {
		name string
		fit  Fit
		cs   int
		want PreferredSize
	}{
		{"disabled", FitDisabled, 18, PreferredSize{18, 105, 65}},
		{"enabled", FitEnabled, 18, PreferredSize{20, 100, 60}},
		{"view only matching", FitViewOnly, 20, PreferredSize{20, 100, 60}},
		{"view only other size", FitViewOnly, 18, PreferredSize{18, 105, 65}},
		{"fixed", FitFixed, 18, PreferredSize{20, 100, 60}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PreferredSizeFor(tc.fit, tc.cs, 105, 65, 5)
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestFixedFitSizesGridToView(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ViewWidth, cfg.ViewHeight = 105, 65
	cfg.CellSize = 20
	cfg.FitMarginMax = 5
	cfg.Fit = FitFixed
	cfg.GridColumns, cfg.GridRows = 50, 50
	v := New(cfg, StaticScreen{ScaleFactor: 1, W: 105, H: 65}, nil, nil)

	s := v.State()
	if s.ViewWidth() != 100 || s.ViewHeight() != 60 {
		t.Fatalf("view = %dx%d, want 100x60", s.ViewWidth(), s.ViewHeight())
	}
	if v.Grid().W != 5 || v.Grid().H != 3 {
		t.Fatalf("grid = %dx%d, want 5x3", v.Grid().W, v.Grid().H)
	}
}

func TestDefaultGridFillsView(t *testing.T) {
	cfg := testConfig()
	cfg.CellShape = render.ShapeSquare
	cfg.GridColumns, cfg.GridRows = 0, 0
	cfg.ViewWidth = 45
	v := New(cfg, nil, nil, nil)
	if v.Grid().W != 4 || v.Grid().H != 4 {
		t.Fatalf("grid = %dx%d, want 4x4", v.Grid().W, v.Grid().H)
	}
}
