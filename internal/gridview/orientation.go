package gridview

import "fmt"

// Orientation is the rotation of the device relative to its default frame.
type Orientation int

const (
	Portrait Orientation = iota
	PortraitUpsideDown
	LandscapeLeft
	LandscapeRight
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case PortraitUpsideDown:
		return "portrait-upside-down"
	case LandscapeLeft:
		return "landscape-left"
	case LandscapeRight:
		return "landscape-right"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// NormalizePoint maps a raw input point into the default-orientation frame
// of a view of the given size whose top-left is at origin.
func NormalizePoint(p Point, o Orientation, origin Point, width, height float64) Point {
	x, y := p.X-origin.X, p.Y-origin.Y
	switch o {
	case PortraitUpsideDown:
		return Point{X: width - x, Y: height - y}
	case LandscapeLeft:
		return Point{X: width - y, Y: x}
	case LandscapeRight:
		return Point{X: y, Y: height - x}
	default:
		return Point{X: x, Y: y}
	}
}
