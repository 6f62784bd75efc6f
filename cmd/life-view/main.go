//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sparse-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.NewViewport(*cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer sim.Close()

	game := app.New(sim, cfg.Scale, cfg.Rate, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("sparse-life: " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
