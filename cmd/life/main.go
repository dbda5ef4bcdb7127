//go:build ebiten

package main

import (
	"flag"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/core"
	_ "torus-life/internal/sims/elementary"
	_ "torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	sim, err := core.New(cfg.Sim, cfg.SimOptions())
	if err != nil {
		log.Fatal(err)
	}

	session := app.NewSession(sim, *cfg)
	game := app.New(session, *cfg)

	ebiten.SetWindowTitle("torus-life - " + sim.Name())
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
