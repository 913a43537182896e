package render

import (
	"reflect"
	"testing"
)

type span struct{ index, count int }

func collect(fn func(Emit)) []span {
	var out []span
	fn(func(_ *Run, index, count int) { out = append(out, span{index, count}) })
	return out
}

func params(shape Shape, cellSize, padding int) BlockParams {
	return BlockParams{
		ViewWidth:     100,
		ViewHeight:    100,
		CellSize:      cellSize,
		CellPadding:   padding,
		Shape:         shape,
		Fade:          DefaultAntialiasFade,
		RoundedRadius: DefaultRoundedRadius,
	}
}

func TestCircleCoverage(t *testing.T) {
	p := params(ShapeCircle, 20, 0)
	if c := CoverageAt(p, 0, 0); c != 0 {
		t.Fatalf("corner coverage = %v, want 0", c)
	}
	if c := CoverageAt(p, 10, 10); c != 1 {
		t.Fatalf("center coverage = %v, want 1", c)
	}
	if c := CoverageAt(p, 10, 0); c <= 0 || c > 1 {
		t.Fatalf("edge coverage = %v, want in (0,1]", c)
	}
}

func TestSquareIgnoresPadding(t *testing.T) {
	p := params(ShapeSquare, 10, 2)
	if c := CoverageAt(p, 0, 0); c != 1 {
		t.Fatalf("square corner coverage = %v, want 1", c)
	}
	p.Shape = ShapeInset
	if c := CoverageAt(p, 1, 1); c != 0 {
		t.Fatalf("inset padding coverage = %v, want 0", c)
	}
	if c := CoverageAt(p, 2, 2); c != 1 {
		t.Fatalf("inset interior coverage = %v, want 1", c)
	}
	if c := CoverageAt(p, 8, 5); c != 0 {
		t.Fatalf("inset right padding coverage = %v, want 0", c)
	}
}

func TestRoundedCoverage(t *testing.T) {
	p := params(ShapeRounded, 20, 0)
	if c := CoverageAt(p, 0, 0); c != 0 {
		t.Fatalf("rounded corner coverage = %v, want 0", c)
	}
	if c := CoverageAt(p, 10, 0); c != 1 {
		t.Fatalf("flat edge coverage = %v, want 1", c)
	}
	if c := CoverageAt(p, 10, 10); c != 1 {
		t.Fatalf("center coverage = %v, want 1", c)
	}
}

func TestSmallCellFallsBackToInset(t *testing.T) {
	p := params(ShapeCircle, 4, 1)
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 4; dx++ {
			want := float32(0)
			if dx >= 1 && dx < 3 && dy >= 1 && dy < 3 {
				want = 1
			}
			if c := CoverageAt(p, dx, dy); c != want {
				t.Fatalf("coverage(%d,%d) = %v, want %v", dx, dy, c, want)
			}
		}
	}
}

func TestBlocksDeterministic(t *testing.T) {
	for _, shape := range Shapes() {
		p := params(shape, 17, 2)
		p.Shading = true
		a, b := NewBlocks(p), NewBlocks(p)
		if len(a.Runs()) != len(b.Runs()) {
			t.Fatalf("%v: run counts differ", shape)
		}
		for i := range a.Runs() {
			ra, rb := a.Runs()[i], b.Runs()[i]
			if ra.Index != rb.Index || ra.Count != rb.Count || ra.Foreground != rb.Foreground ||
				ra.Coverage != rb.Coverage || ra.Shade != rb.Shade {
				t.Fatalf("%v: run %d differs: %+v vs %+v", shape, i, ra, rb)
			}
		}
	}
}

func TestSquareRunsPerRow(t *testing.T) {
	b := NewBlocks(params(ShapeSquare, 10, 0))
	runs := b.Runs()
	if len(runs) != 10 {
		t.Fatalf("square cell runs = %d, want one per row", len(runs))
	}
	for i, r := range runs {
		if r.Index != i*100 || r.Count != 10 || !r.Foreground || r.Coverage != 1 {
			t.Fatalf("run %d = %+v", i, r)
		}
	}
}

func TestRunsCoverFootprintOnce(t *testing.T) {
	p := params(ShapeRounded, 13, 1)
	seen := map[int]int{}
	for _, r := range NewBlocks(p).Runs() {
		for i := r.Index; i < r.Index+r.Count; i++ {
			seen[i]++
		}
	}
	if len(seen) != 13*13 {
		t.Fatalf("runs cover %d pixels, want %d", len(seen), 13*13)
	}
	for idx, n := range seen {
		if n != 1 {
			t.Fatalf("pixel %d covered %d times", idx, n)
		}
		if idx%100 >= 13 {
			t.Fatalf("pixel %d outside cell columns", idx)
		}
	}
}

func TestWriteTruncatedIsCached(t *testing.T) {
	b := NewBlocks(params(ShapeCircle, 20, 0))
	for _, r := range b.Runs() {
		first := collect(func(e Emit) { r.WriteTruncated(7, e) })
		second := collect(func(e Emit) { r.WriteTruncated(7, e) })
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("cached truncation differs: %v vs %v", first, second)
		}
	}
	if b.MemoryUsage() == 0 {
		t.Fatalf("expected cached spans after truncation")
	}
}

func TestLeftRightPartition(t *testing.T) {
	b := NewBlocks(params(ShapeRounded, 20, 2))
	for k := 1; k < 20; k++ {
		for _, r := range b.Runs() {
			seen := map[int]int{}
			mark := func(e []span) {
				for _, s := range e {
					for i := s.index; i < s.index+s.count; i++ {
						seen[i]++
					}
				}
			}
			left := collect(func(e Emit) { r.WriteLeft(k, e) })
			right := collect(func(e Emit) { r.WriteRight(k, e) })
			mark(left)
			mark(right)
			if len(seen) != r.Count {
				t.Fatalf("k=%d run %+v: partition covers %d of %d pixels", k, r, len(seen), r.Count)
			}
			for i, n := range seen {
				if n != 1 || i < r.Index || i >= r.Index+r.Count {
					t.Fatalf("k=%d: pixel %d counted %d times", k, i, n)
				}
			}
			for _, s := range left {
				if (s.index+s.count-1)%100 >= k {
					t.Fatalf("k=%d: left span %v reaches column >= k", k, s)
				}
			}
			for _, s := range right {
				if s.index%100 < k {
					t.Fatalf("k=%d: right span %v starts left of k", k, s)
				}
			}
		}
	}
}

func TestShadingQuantized(t *testing.T) {
	p := params(ShapeSquare, 16, 0)
	p.Shading = true
	top := shadeAt(p, 0, 0)
	bottom := shadeAt(p, 15, 15)
	if top <= 1 || bottom >= 1 {
		t.Fatalf("shade top=%v bottom=%v, want top lighter and bottom darker", top, bottom)
	}
	for _, r := range NewBlocks(p).Runs() {
		if q := r.Shade * shadingSteps; q != float32(int(q)) {
			t.Fatalf("shade %v not quantized", r.Shade)
		}
	}
}

func TestParseShape(t *testing.T) {
	for _, s := range Shapes() {
		got, ok := ParseShape(s.String())
		if !ok || got != s {
			t.Fatalf("ParseShape(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseShape("hexagon"); ok {
		t.Fatalf("unknown shape accepted")
	}
}
