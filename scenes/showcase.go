package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/blobreel/assets"
	cfg "github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/fonts"
	"github.com/automoto/blobreel/shared/ring"
	"github.com/automoto/blobreel/systems"
	"github.com/automoto/blobreel/systems/factory"
	"github.com/automoto/blobreel/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShowcaseScene shows the project carousel with the blob cursor on top
type ShowcaseScene struct {
	ecs        *ecs.ECS
	carouselUI *ui.CarouselUI
	items      []ring.Item
	once       sync.Once
	closeOnce  sync.Once
	err        error
}

// NewShowcaseScene creates the scene for the given carousel items
func NewShowcaseScene(items []ring.Item) *ShowcaseScene {
	return &ShowcaseScene{items: items}
}

// Update advances one frame. A configuration error from the first frame
// is returned on every call; ebiten.Termination is returned on quit.
func (ss *ShowcaseScene) Update() error {
	ss.once.Do(ss.configure)
	if ss.err != nil {
		return ss.err
	}

	ss.carouselUI.Update(ss.ecs.Update)

	if systems.QuitRequested(ss.ecs) {
		ss.Close()
		return ebiten.Termination
	}
	return nil
}

func (ss *ShowcaseScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
	ss.carouselUI.UI.Draw(screen)
}

// Close stops the cursor animation loop. Safe to call more than once.
func (ss *ShowcaseScene) Close() {
	ss.closeOnce.Do(func() {
		if ss.ecs != nil {
			systems.StopCursors(ss.ecs)
		}
	})
}

func (ss *ShowcaseScene) configure() {
	if err := fonts.LoadDefaults(); err != nil {
		ss.err = err
		return
	}

	// The goo pass is optional; without the shader the blobs are drawn plain
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	if _, err := factory.CreateCarousel(e, ss.items, cfg.Carousel); err != nil {
		ss.err = err
		return
	}
	if _, err := factory.CreateCursor(e, cfg.Cursor); err != nil {
		ss.err = err
		return
	}

	// Input first, then the systems that read it
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePointer) // Must run before UpdateCursor
	e.AddSystem(systems.UpdateCursor)
	e.AddSystem(systems.UpdateCarousel)
	e.AddSystem(systems.UpdateHUD)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawCarousel)
	e.AddRenderer(cfg.LayerCursor, systems.DrawCursor)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	ss.carouselUI = ui.NewCarouselUI(
		systems.GetCarousel(e),
		func() { systems.QueueCarouselCommand(e, ring.CommandPrev) },
		func() { systems.QueueCarouselCommand(e, ring.CommandNext) },
	)

	ss.ecs = e
}
