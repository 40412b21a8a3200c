package factory

import (
	"fmt"

	"github.com/automoto/blobreel/archetypes"
	"github.com/automoto/blobreel/components"
	cfg "github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/shared/animloop"
	"github.com/automoto/blobreel/shared/trail"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CursorEngineConfig converts the cursor settings into a follower set config
func CursorEngineConfig(c cfg.CursorConfig) trail.Config {
	return trail.Config{
		TrailCount:  c.TrailCount,
		Speeds:      c.Speeds,
		Sizes:       c.Sizes,
		InnerSizes:  c.InnerSizes,
		Colors:      c.Colors,
		InnerColors: c.InnerColors,
		Opacities:   c.Opacities,
		Initial:     dmath.Vec2{X: c.InitialX, Y: c.InitialY},
	}
}

// CreateCursor spawns the blob cursor with a running animation loop.
// Nothing is spawned if the settings are invalid.
func CreateCursor(ecs *ecs.ECS, c cfg.CursorConfig) (*donburi.Entry, error) {
	sampler := &trail.Sampler{}
	engine, err := trail.NewEngine(CursorEngineConfig(c), sampler)
	if err != nil {
		return nil, fmt.Errorf("create cursor: %w", err)
	}

	cursor := &components.CursorData{
		Engine:    engine,
		Shape:     c.Shape,
		Frame:     engine.Followers(),
		UseFilter: c.UseFilter,
	}
	cursor.Loop = animloop.New(func(tick animloop.Tick) {
		engine.Step()
		cursor.Frame = engine.AppendFollowers(cursor.Frame[:0])
		cursor.LastDelta = tick.Delta
	})
	cursor.Loop.Start()

	entry := archetypes.Cursor.Spawn(ecs)
	components.Cursor.Set(entry, cursor)
	components.Pointer.Set(entry, &components.PointerData{Sampler: sampler})

	return entry, nil
}
