package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"cellgrid/internal/app"
	"cellgrid/internal/gridview"
	_ "cellgrid/internal/sims/briansbrain"
	_ "cellgrid/internal/sims/elementary"
	_ "cellgrid/internal/sims/life"
	"cellgrid/internal/termhost"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write debug records to this file instead of stderr")
	flag.Parse()

	if err := cfg.Load(); err != nil {
		log.Fatal(err)
	}
	if cfg.Debug {
		// Records on stderr garble the screen; -log redirects them.
		out := os.Stderr
		if *logPath != "" {
			f, err := os.Create(*logPath)
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()
			out = f
		}
		gridview.SetLogger(cfg.Logger(out))
	}
	// Terminal pixels are coarse, so start with small cells.
	if cfg.Settings.Section(app.SectionView)["cell_size"] == "" {
		cfg.Settings.Set(app.SectionView, "cell_size", "4")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	session, err := app.NewSession(cfg, nil, nil)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	host := termhost.New(screen, session)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	tps := max(cfg.TPS, 1)
	host.Run(ctx, time.Second/time.Duration(tps))
	screen.Fini()
}
