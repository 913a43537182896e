package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cellgrid/internal/app"
	"cellgrid/internal/export"
	"cellgrid/internal/gridview"
	_ "cellgrid/internal/sims/briansbrain"
	_ "cellgrid/internal/sims/elementary"
	_ "cellgrid/internal/sims/life"
)

type options struct {
	out    string
	steps  int
	scale  int
	panX   int
	panY   int
	zoom   float64
	center bool
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var opts options
	flag.StringVar(&opts.out, "out", "-", "PNG file to write, - for stdout")
	flag.IntVar(&opts.steps, "steps", 0, "simulation steps before the snapshot")
	flag.IntVar(&opts.scale, "upscale", 1, "integer upscale of the written image")
	flag.IntVar(&opts.panX, "pan-x", 0, "horizontal pan in logical pixels")
	flag.IntVar(&opts.panY, "pan-y", 0, "vertical pan in logical pixels")
	flag.Float64Var(&opts.zoom, "zoom", 1, "zoom factor applied around the view center")
	flag.BoolVar(&opts.center, "center", false, "center the grid before panning")
	flag.Parse()

	if err := cfg.Load(); err != nil {
		log.Fatal(err)
	}
	if l := cfg.Logger(os.Stderr); l != nil {
		gridview.SetLogger(l)
	}
	if err := run(cfg, opts); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, opts options) error {
	view := cfg.Settings.Section(app.SectionView)
	if view["view_width"] == "" {
		cfg.Settings.Set(app.SectionView, "view_width", "640")
	}
	if view["view_height"] == "" {
		cfg.Settings.Set(app.SectionView, "view_height", "480")
	}
	s, err := app.NewSession(cfg, nil, nil)
	if err != nil {
		return err
	}
	for i := 0; i < opts.steps; i++ {
		s.Automation.Step()
	}
	if opts.zoom != 1 {
		z := s.View.BeginZoom()
		z.End(opts.zoom)
	}
	if opts.center {
		s.View.Center()
	}
	if opts.panX != 0 || opts.panY != 0 {
		x, y := s.View.State().Logical().ShiftTotal()
		s.View.Pan(x+opts.panX, y+opts.panY, false)
	}

	snap, err := s.View.Snapshot()
	if err != nil {
		return err
	}
	return write(opts.out, func(w io.Writer) error { return export.WritePNG(w, snap, opts.scale) })
}

func write(path string, fn func(io.Writer) error) error {
	if path == "-" {
		bw := bufio.NewWriter(os.Stdout)
		if err := fn(bw); err != nil {
			return err
		}
		return bw.Flush()
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
