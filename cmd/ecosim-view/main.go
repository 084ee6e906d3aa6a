//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"ecosim/internal/app"
	"ecosim/internal/core"
	_ "ecosim/internal/sims/ecosystem"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Lookup("ecosystem")
	if !ok {
		log.Fatalf("ecosystem sim not registered (have %v)", core.Names())
	}

	seed := cfg.EffectiveSeed()
	sim := factory(cfg.SimOptions())
	sim.Reset(seed)

	game := app.New(sim, cfg.Scale, cfg.StepsPerSecond, seed)
	size := sim.Size()

	ebiten.SetWindowTitle("ecosim: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
