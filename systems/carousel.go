package systems

import (
	"log"

	"github.com/automoto/blobreel/components"
	cfg "github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/shared/ring"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCarousel turns navigation input into carousel commands, eases
// the displayed angle toward the committed rotation and finds the card
// under the pointer. Must run after UpdatePointer.
func UpdateCarousel(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	prev := GetAction(input, cfg.ActionCarouselPrev).JustPressed
	next := GetAction(input, cfg.ActionCarouselNext).JustPressed
	dt := 1 / float32(ebiten.TPS())

	components.Carousel.Each(ecs.World, func(entry *donburi.Entry) {
		data := components.Carousel.Get(entry)
		if prev {
			data.Pending = append(data.Pending, ring.CommandPrev)
		}
		if next {
			data.Pending = append(data.Pending, ring.CommandNext)
		}
		applyCarouselCommands(data)
		advanceCarouselDisplay(data, dt)
		updateHover(ecs, data)
	})
}

// QueueCarouselCommand schedules cmd for the next UpdateCarousel.
// Used by the on-screen buttons.
func QueueCarouselCommand(ecs *ecs.ECS, cmd ring.Command) {
	entry, ok := components.Carousel.First(ecs.World)
	if !ok {
		return
	}
	data := components.Carousel.Get(entry)
	data.Pending = append(data.Pending, cmd)
}

// GetCarousel returns the carousel data, or nil if none was spawned
func GetCarousel(ecs *ecs.ECS) *components.CarouselData {
	entry, ok := components.Carousel.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Carousel.Get(entry)
}

// applyCarouselCommands runs queued commands in order. Rejected commands
// are logged and dropped without touching the state. Any accepted command
// restarts the display ease from wherever the ring is drawn right now.
func applyCarouselCommands(data *components.CarouselData) {
	if len(data.Pending) == 0 {
		return
	}

	applied := false
	for _, cmd := range data.Pending {
		if err := data.Carousel.Apply(cmd); err != nil {
			log.Printf("Warning: ignoring carousel command: %v", err)
			continue
		}
		applied = true
	}
	data.Pending = data.Pending[:0]

	if applied {
		data.Tween = gween.New(
			float32(data.DisplayDeg),
			float32(data.Carousel.RotationDeg()),
			cfg.Carousel.TransitionSeconds,
			ease.OutExpo,
		)
	}
}

// advanceCarouselDisplay moves the displayed angle dt seconds along the
// current ease and lands exactly on the committed rotation when it ends.
func advanceCarouselDisplay(data *components.CarouselData, dt float32) {
	if data.Tween == nil {
		return
	}

	current, finished := data.Tween.Update(dt)
	data.DisplayDeg = float64(current)
	if finished {
		data.DisplayDeg = data.Carousel.RotationDeg()
		data.Tween = nil
	}
}
