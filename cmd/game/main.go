package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/tangle/internal/config"
	"github.com/Garsondee/tangle/internal/game"
)

func main() {
	var configPath string
	var seed int64
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.Int64Var(&seed, "seed", 0, "board seed (0 = from config or clock)")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		log.Printf("Configuration loaded from %s", configPath)
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Game %s seed=%d", g.Session().ID(), g.Session().Seed())

	ebiten.SetWindowTitle(cfg.Window.Title)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	log.Printf("Final score: %d (%s)", g.Session().Score(), g.Session().Outcome())
}
