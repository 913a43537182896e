package core

import (
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n); zero when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// IntRange returns a random int in [lo, hi].
func (r *RNG) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// ColorMode selects the palette RandomRGB draws from.
type ColorMode int

const (
	ColorModeColor ColorMode = iota
	ColorModeGrayscale
	ColorModeMonochrome
)

// RandomRGB returns random channel values drawn according to mode.
func (r *RNG) RandomRGB(mode ColorMode) (uint8, uint8, uint8) {
	switch mode {
	case ColorModeMonochrome:
		v := uint8(r.r.IntN(2) * 255)
		return v, v, v
	case ColorModeGrayscale:
		v := uint8(r.r.IntN(256))
		return v, v, v
	default:
		rgb := r.r.Uint32() & 0xFFFFFF
		return uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb)
	}
}

// RandomHue returns a color of random hue at the given saturation and
// value, both in [0, 1].
func (r *RNG) RandomHue(saturation, value float64) color.Color {
	return colorful.Hsv(r.r.Float64()*360, saturation, value).Clamped()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
