package gridview

import "math"

// Screen reports the properties of the display the view renders for.
type Screen interface {
	// Scale is the device pixel ratio: physical pixels per logical unit.
	Scale() float64
	// Width and Height are the logical size of the display.
	Width() int
	Height() int
}

// StaticScreen is a fixed Screen, used by headless hosts and tests.
type StaticScreen struct {
	ScaleFactor float64
	W, H        int
}

func (s StaticScreen) Scale() float64 {
	if s.ScaleFactor <= 0 {
		return 1
	}
	return s.ScaleFactor
}
func (s StaticScreen) Width() int  { return s.W }
func (s StaticScreen) Height() int { return s.H }

// Scaler converts between logical units and buffer pixels. When disabled
// both conversions are the identity.
type Scaler struct {
	Factor  float64
	Enabled bool
}

// NewScaler returns a Scaler for the screen's scale factor.
func NewScaler(factor float64, enabled bool) Scaler {
	if factor <= 0 {
		factor = 1
	}
	return Scaler{Factor: factor, Enabled: enabled}
}

func (s Scaler) active() bool { return s.Enabled && s.Factor > 0 && s.Factor != 1 }

// Scaled converts a logical length to buffer pixels.
func (s Scaler) Scaled(v int) int {
	if !s.active() {
		return v
	}
	return int(math.Round(float64(v) * s.Factor))
}

// Unscaled converts a buffer length to logical units.
func (s Scaler) Unscaled(v int) int {
	if !s.active() {
		return v
	}
	return int(math.Round(float64(v) / s.Factor))
}

// ScaledF converts a logical coordinate to buffer pixels without rounding.
func (s Scaler) ScaledF(v float64) float64 {
	if !s.active() {
		return v
	}
	return v * s.Factor
}

// UnscaledF converts a buffer coordinate to logical units without rounding.
func (s Scaler) UnscaledF(v float64) float64 {
	if !s.active() {
		return v
	}
	return v / s.Factor
}
