//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"cellgrid/internal/app"
	"cellgrid/internal/gridview"
	_ "cellgrid/internal/sims/briansbrain"
	_ "cellgrid/internal/sims/elementary"
	_ "cellgrid/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Load(); err != nil {
		log.Fatal(err)
	}
	if l := cfg.Logger(os.Stderr); l != nil {
		gridview.SetLogger(l)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	w, h := game.WindowSize()
	ebiten.SetWindowTitle(game.Session().Title())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
