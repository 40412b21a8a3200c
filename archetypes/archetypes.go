package archetypes

import (
	"github.com/automoto/blobreel/components"
	cfg "github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Cursor = newArchetype(
		tags.Cursor,
		components.Cursor,
		components.Pointer,
	)
	Carousel = newArchetype(
		tags.Carousel,
		components.Carousel,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
