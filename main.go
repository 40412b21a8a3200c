package main

import (
	"errors"
	"flag"
	"log"

	"github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewShowcaseScene(config.Projects),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	noGoo := flag.Bool("no-goo", false, "Draw the cursor blobs without the goo filter")
	square := flag.Bool("square", false, "Use square blobs")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	start := flag.String("start", "", "Carousel commands to apply at start, e.g. next,next")
	flag.Parse()

	if err := applyFlags(*noGoo, *square, *debug, *start); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
