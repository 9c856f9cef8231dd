package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/credit-card/internal/config"
	"github.com/iburimskiy/credit-card/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default $CARD_CONFIG)")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("card: ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("init game: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("run: %v", err)
	}
}
