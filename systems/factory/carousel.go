package factory

import (
	"fmt"

	"github.com/automoto/blobreel/archetypes"
	"github.com/automoto/blobreel/components"
	cfg "github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/shared/ring"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCarousel spawns the project carousel. It starts at rotation 0 with
// the first item active, then runs c.StartCommands with no easing. Fewer
// than two items or an unknown start command is rejected.
func CreateCarousel(ecs *ecs.ECS, items []ring.Item, c cfg.CarouselConfig) (*donburi.Entry, error) {
	carousel, err := ring.NewCarousel(items, c.CardWidth, c.CardGap, c.PresentationMargin)
	if err != nil {
		return nil, fmt.Errorf("create carousel: %w", err)
	}
	for _, cmd := range c.StartCommands {
		if err := carousel.Apply(cmd); err != nil {
			return nil, fmt.Errorf("create carousel: %w", err)
		}
	}

	entry := archetypes.Carousel.Spawn(ecs)
	components.Carousel.Set(entry, &components.CarouselData{
		Carousel:   carousel,
		DisplayDeg: carousel.RotationDeg(),
		Hovered:    -1,
	})

	return entry, nil
}
