package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Channel shifts for the packed Color value. With red in the low byte the
// little-endian encoding of the packed value is R,G,B,A in memory, so a run
// of pixels can be filled by writing the packed value directly.
const (
	RShift = 0
	GShift = 8
	BShift = 16
	AShift = 24

	Opaque uint8 = 255
)

// Color is a packed 8-bit-per-channel RGBA value.
type Color uint32

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return RGBA(r, g, b, Opaque) }

// RGBA packs the four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<RShift | uint32(g)<<GShift | uint32(b)<<BShift | uint32(a)<<AShift)
}

// FromColor converts any image/color value, dropping premultiplication.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

func (c Color) R() uint8 { return uint8(c >> RShift) }
func (c Color) G() uint8 { return uint8(c >> GShift) }
func (c Color) B() uint8 { return uint8(c >> BShift) }
func (c Color) A() uint8 { return uint8(c >> AShift) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&^(0xFF<<AShift) | Color(a)<<AShift
}

// NRGBA returns the color as a non-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Lerp blends from background b toward c by t in [0,1]. Alpha is taken from c.
func (c Color) Lerp(b Color, t float32) Color {
	if t >= 1 {
		return c
	}
	if t <= 0 {
		return b.WithAlpha(c.A())
	}
	inv := 1 - t
	return RGBA(
		uint8(float32(c.R())*t+float32(b.R())*inv),
		uint8(float32(c.G())*t+float32(b.G())*inv),
		uint8(float32(c.B())*t+float32(b.B())*inv),
		c.A(),
	)
}

// Shade scales the color channels by f, clamping to the channel range.
func (c Color) Shade(f float32) Color {
	if f == 1 {
		return c
	}
	scale := func(v uint8) uint8 {
		s := float32(v) * f
		if s > 255 {
			return 255
		}
		if s < 0 {
			return 0
		}
		return uint8(s)
	}
	return RGBA(scale(c.R()), scale(c.G()), scale(c.B()), c.A())
}

// Hex formats the color as RRGGBBAA.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.R(), c.G(), c.B(), c.A())
}

func (c Color) String() string { return "#" + c.Hex() }

// Named colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Dark  = RGB(50, 50, 50)
	Light = RGB(200, 200, 200)
)

// ParseColor parses "#RRGGBB", "RRGGBB", "#RRGGBBAA" or "RRGGBBAA".
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return 0, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(s) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
