package render

import (
	"fmt"
	"math"
	"strings"
)

// Shape enumerates the supported cell shapes.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeInset
	ShapeRounded
	ShapeCircle
)

var shapeNames = [...]string{"square", "inset", "rounded", "circle"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Shapes lists every shape in declaration order.
func Shapes() []Shape { return []Shape{ShapeSquare, ShapeInset, ShapeRounded, ShapeCircle} }

// ParseShape maps a shape name (case-insensitive) to its Shape.
func ParseShape(name string) (Shape, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), true
		}
	}
	return ShapeSquare, false
}

// Subpixel reports whether the shape benefits from rendering at the
// device scale; square and inset cells look identical either way.
func (s Shape) Subpixel() bool { return s == ShapeRounded || s == ShapeCircle }

const (
	// DefaultAntialiasFade is the coverage ramp width in pixels; smaller is sharper.
	DefaultAntialiasFade float32 = 0.6
	// DefaultRoundedRadius is the corner radius as a fraction of the inner cell size.
	DefaultRoundedRadius float32 = 0.25

	shadingStrength = 0.5
	shadingSteps    = 32
)

// BlockParams identifies one coverage template. All sizes are in buffer
// (scaled) pixels.
type BlockParams struct {
	ViewWidth     int
	ViewHeight    int
	CellSize      int
	CellPadding   int
	Shape         Shape
	Fade          float32
	RoundedRadius float32
	Shading       bool
}

// padding returns the padding actually applied: none for square cells, and
// never so much that the cell interior vanishes.
func (p BlockParams) padding() int {
	if p.CellPadding <= 0 || p.Shape == ShapeSquare {
		return 0
	}
	if p.CellPadding*2 >= p.CellSize {
		return p.CellSize/2 - 1
	}
	return p.CellPadding
}

func (p BlockParams) shape(padding int) Shape {
	if p.CellSize-2*padding < 3 {
		return ShapeInset
	}
	return p.Shape
}

func (p BlockParams) fade() float32 {
	if p.Fade <= 0 {
		return DefaultAntialiasFade
	}
	return p.Fade
}

// CoverageAt returns the fraction of the cell-local pixel (dx, dy) covered
// by the cell shape, in [0, 1].
func CoverageAt(p BlockParams, dx, dy int) float32 {
	padding := p.padding()
	size := p.CellSize
	outer := size - padding
	inner := size - 2*padding
	fade := p.fade()

	switch p.shape(padding) {
	case ShapeCircle:
		fx := float32(dx) + 0.5
		fy := float32(dy) + 0.5
		center := float32(size / 2)
		radius := float32(inner) / 2
		d := radius - hypot(fx-center, fy-center)
		return clamp01(d / fade)

	case ShapeRounded:
		fx := float32(dx) + 0.5
		fy := float32(dy) + 0.5
		corner := float32(inner) * p.RoundedRadius
		minv := float32(padding)
		maxv := float32(outer)
		if fx >= minv+corner && fx <= maxv-corner {
			if fy >= minv && fy <= maxv {
				return 1
			}
			return 0
		}
		if fy >= minv+corner && fy <= maxv-corner {
			if fx >= minv && fx <= maxv {
				return 1
			}
			return 0
		}
		cx := clampf(fx, minv+corner, maxv-corner)
		cy := clampf(fy, minv+corner, maxv-corner)
		d := corner - hypot(fx-cx, fy-cy)
		return clamp01(d / fade)

	default:
		if dx >= padding && dx < outer && dy >= padding && dy < outer {
			return 1
		}
		return 0
	}
}

// shadeAt returns the brightness factor of the synthetic diagonal gradient,
// lighter toward the top-left, quantized so neighbouring pixels still merge.
func shadeAt(p BlockParams, dx, dy int) float32 {
	if !p.Shading || p.CellSize <= 0 {
		return 1
	}
	t := (float64(dx) + float64(dy) + 1) / float64(2*p.CellSize)
	f := 1 + shadingStrength*(0.5-t)
	return float32(math.Round(f*shadingSteps) / shadingSteps)
}

// Span is a contiguous range of pixel offsets within a cell.
type Span struct {
	Index int
	Count int
}

// Emit receives one contiguous range of a run.
type Emit func(r *Run, index, count int)

// Run is a maximal contiguous sequence of cell pixels sharing foreground
// class, coverage and shade. Index is a pixel offset relative to the cell's
// top-left pixel in a buffer of the template's view width.
type Run struct {
	Index      int
	Count      int
	Foreground bool
	Coverage   float32
	Shade      float32

	width     int
	last      int
	truncated map[int][]Span
}

// WriteLeft emits the parts of the run in cell columns left of shift.
func (r *Run) WriteLeft(shift int, emit Emit) { r.WriteTruncated(-shift, emit) }

// WriteRight emits the parts of the run in cell columns at or right of shift.
func (r *Run) WriteRight(shift int, emit Emit) { r.WriteTruncated(shift, emit) }

// WriteTruncated emits the run clipped by shift columns: a positive shift
// drops columns left of shift, a negative shift drops columns at or right
// of -shift. Results are cached per shift value.
func (r *Run) WriteTruncated(shift int, emit Emit) {
	if shift == 0 {
		emit(r, r.Index, r.Count)
		return
	}
	if spans, ok := r.truncated[shift]; ok {
		for _, s := range spans {
			emit(r, s.Index, s.Count)
		}
		return
	}

	width := shift
	right := shift > 0
	if !right {
		width = -shift
	}
	var spans []Span
	start, count := -1, 0
	for i := 0; i < r.Count; i++ {
		index := r.Index + i
		column := index % r.width
		if (right && column >= width) || (!right && column < width) {
			if start < 0 {
				start, count = index, 0
			}
			count++
			continue
		}
		if start >= 0 {
			spans = append(spans, Span{Index: start, Count: count})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Index: start, Count: count})
	}
	if r.truncated == nil {
		r.truncated = make(map[int][]Span)
	}
	r.truncated[shift] = spans
	for _, s := range spans {
		emit(r, s.Index, s.Count)
	}
}

// Blocks is the coverage template for one cell configuration.
type Blocks struct {
	params BlockParams
	runs   []*Run
}

// NewBlocks scans one cell footprint, clipped to the view, and merges its
// pixels into runs.
func NewBlocks(p BlockParams) *Blocks {
	b := &Blocks{params: p}
	if p.CellSize <= 0 || p.ViewWidth <= 0 || p.ViewHeight <= 0 {
		return b
	}
	for dy := 0; dy < p.CellSize && dy < p.ViewHeight; dy++ {
		for dx := 0; dx < p.CellSize && dx < p.ViewWidth; dx++ {
			coverage := CoverageAt(p, dx, dy)
			index := dy*p.ViewWidth + dx
			if coverage > 0 {
				b.append(index, true, coverage, shadeAt(p, dx, dy))
			} else {
				b.append(index, false, 0, 1)
			}
		}
	}
	return b
}

func (b *Blocks) append(index int, fg bool, coverage, shade float32) {
	width := b.params.ViewWidth
	if n := len(b.runs); n > 0 {
		last := b.runs[n-1]
		if last.Foreground == fg && last.Coverage == coverage && last.Shade == shade &&
			index == last.last+1 && index%width != 0 {
			last.Count++
			last.last = index
			return
		}
	}
	b.runs = append(b.runs, &Run{
		Index:      index,
		Count:      1,
		Foreground: fg,
		Coverage:   coverage,
		Shade:      shade,
		width:      width,
		last:       index,
	})
}

// Params returns the parameters the template was built for.
func (b *Blocks) Params() BlockParams { return b.params }

// Runs returns the runs in scan order.
func (b *Blocks) Runs() []*Run { return b.runs }

// MemoryUsage approximates the bytes held by truncation caches.
func (b *Blocks) MemoryUsage() int {
	spans := 0
	for _, r := range b.runs {
		for _, s := range r.truncated {
			spans += len(s)
		}
	}
	return spans * 16
}

func hypot(x, y float32) float32 {
	return float32(math.Sqrt(float64(x*x + y*y)))
}

func clamp01(v float32) float32 { return clampf(v, 0, 1) }

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
