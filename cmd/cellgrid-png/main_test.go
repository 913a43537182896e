package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cellgrid/internal/app"
)

func TestRunWritesPNG(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Settings.Set(app.SectionView, "view_width", "60")
	cfg.Settings.Set(app.SectionView, "view_height", "40")
	cfg.Settings.Set(app.SectionView, "cell_size", "10")
	out := filepath.Join(t.TempDir(), "grid.png")

	err := run(cfg, options{out: out, steps: 3, scale: 2, zoom: 1.5, panX: -5})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("bounds = %v", b)
	}
}

func TestRunUnknownSim(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Sim = "nope"
	if err := run(cfg, options{out: filepath.Join(t.TempDir(), "x.png"), scale: 1, zoom: 1}); err == nil {
		t.Fatalf("unknown sim accepted")
	}
}
