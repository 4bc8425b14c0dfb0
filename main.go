package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/fonts"
	"github.com/automoto/stuntcat/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(seed int64) (*Game, error) {
	fonts.LoadDefaults()

	stage, err := scenes.NewStageScene(seed)
	if err != nil {
		return nil, err
	}
	return &Game{scene: stage}, nil
}

func (g *Game) Update() error {
	if err := g.scene.Update(); err != nil {
		if errors.Is(err, scenes.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("config", "", "TOML file overriding the default tuning")
	debug := flag.Bool("debug", false, "draw collision boxes and shark state")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadFile(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if *debug {
		config.Debug.Enabled = true
	}
	if *seed != 0 {
		config.Debug.Seed = *seed
	}
	if config.Debug.Seed == 0 {
		config.Debug.Seed = time.Now().UnixNano()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Stunt Cat")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game, err := NewGame(config.Debug.Seed)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
