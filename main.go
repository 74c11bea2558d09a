package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-arcade/internal/assets"
	"github.com/iburimskiy/particle-arcade/internal/config"
	"github.com/iburimskiy/particle-arcade/internal/game"
)

func main() {
	configPath := flag.String("config", "", "YAML file overlaid on the built-in settings")
	verbose := flag.Bool("verbose", false, "log lifecycle events and show frame rate")
	seed := flag.Uint64("seed", 0, "fixed random seed (0 picks one per run)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *configPath != "" {
		log.Printf("[main] config loaded from %s", *configPath)
	}

	var sprites fs.FS = assets.FS
	if cfg.Arcade.SpriteDir != "" {
		sprites = os.DirFS(cfg.Arcade.SpriteDir)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g, err := game.New(game.Options{
		Config:  cfg,
		Sprites: sprites,
		Verbose: *verbose,
	})
	if err != nil {
		fatal(err)
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("[main] %v", err)
		g.Close()
		os.Exit(1)
	}
}

// fatal reports a startup failure in a dialog as well as on stderr.
func fatal(err error) {
	if derr := zenity.Error(err.Error(), zenity.Title("Startup failed"), zenity.ErrorIcon); derr != nil {
		log.Printf("[main] error dialog: %v", derr)
	}
	log.Fatalf("[main] %v", err)
}
