package core

import (
	"encoding/binary"
	"image/color"
	"testing"
)

func TestPackedByteOrder(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(c))
	if b != [4]byte{0x11, 0x22, 0x33, 0x44} {
		t.Fatalf("memory order = %x, want R,G,B,A", b)
	}
	if c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 || c.A() != 0x44 {
		t.Fatalf("accessors = %d %d %d %d", c.R(), c.G(), c.B(), c.A())
	}
}

func TestLerp(t *testing.T) {
	fg := RGB(200, 100, 0)
	bg := RGB(0, 0, 100)
	if got := fg.Lerp(bg, 1); got != fg {
		t.Fatalf("Lerp(1) = %v", got)
	}
	if got := fg.Lerp(bg, 0); got != bg {
		t.Fatalf("Lerp(0) = %v", got)
	}
	got := fg.Lerp(bg, 0.5)
	if got.R() != 100 || got.G() != 50 || got.B() != 50 || got.A() != 255 {
		t.Fatalf("Lerp(0.5) = %v", got)
	}
}

func TestShadeClamps(t *testing.T) {
	c := RGB(200, 100, 10).Shade(1.5)
	if c.R() != 255 || c.G() != 150 || c.B() != 15 {
		t.Fatalf("Shade(1.5) = %v", c)
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"#FF0000":   RGB(255, 0, 0),
		"00ff00":    RGB(0, 255, 0),
		"#0000FF80": RGBA(0, 0, 255, 0x80),
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseColor("#12"); err == nil {
		t.Errorf("short color accepted")
	}
	if _, err := ParseColor("zzzzzz"); err == nil {
		t.Errorf("non-hex color accepted")
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	if got != RGB(1, 2, 3) {
		t.Fatalf("FromColor = %v", got)
	}
	if got.NRGBA() != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatalf("NRGBA = %v", got.NRGBA())
	}
}
