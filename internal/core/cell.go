package core

import "fmt"

// Location is an integer cell address, either within the cell grid or a
// zero-based slot within the visible viewport.
type Location struct {
	X, Y int
}

func (l Location) String() string { return fmt.Sprintf("[%d, %d]", l.X, l.Y) }

// SelectPhase reports how a cell selection was triggered.
type SelectPhase int

const (
	// SelectTap is a single tap or click on the cell.
	SelectTap SelectPhase = iota
	// SelectDragging is a selection made while a drag is in progress.
	SelectDragging
	// SelectDragEnd is the selection made when the drag is released.
	SelectDragEnd
)

func (p SelectPhase) String() string {
	switch p {
	case SelectTap:
		return "tap"
	case SelectDragging:
		return "dragging"
	case SelectDragEnd:
		return "drag-end"
	default:
		return fmt.Sprintf("SelectPhase(%d)", int(p))
	}
}

// Cell is the capability the renderer consumes for every grid address.
// Application cell kinds implement it; the Grid stores them as interface
// values.
type Cell interface {
	Location() Location
	Color() Color
	SetColor(Color)
	Select(SelectPhase)
}

// CellFactory constructs the cell for address (x, y). prev is the cell that
// previously occupied the address when the grid is resized, or nil.
type CellFactory func(x, y int, fg Color, prev Cell) Cell

// BasicCell is a plain color holder whose Select does nothing.
type BasicCell struct {
	loc   Location
	color Color
}

// NewBasicCell returns a cell at (x, y) with color c.
func NewBasicCell(x, y int, c Color) *BasicCell {
	return &BasicCell{loc: Location{X: x, Y: y}, color: c}
}

// BasicCellFactory builds BasicCells, carrying over the previous color.
func BasicCellFactory(x, y int, fg Color, prev Cell) Cell {
	if prev != nil {
		fg = prev.Color()
	}
	return NewBasicCell(x, y, fg)
}

func (c *BasicCell) Location() Location  { return c.loc }
func (c *BasicCell) Color() Color        { return c.color }
func (c *BasicCell) SetColor(col Color)  { c.color = col }
func (c *BasicCell) Select(SelectPhase) {}
