package components

import (
	"time"

	"github.com/automoto/blobreel/shared/animloop"
	"github.com/automoto/blobreel/shared/trail"
	"github.com/yohamta/donburi"
)

// CursorData is the blob cursor: the follower engine, the loop that steps
// it, and the last complete frame handed to the renderer.
type CursorData struct {
	Engine *trail.Engine
	Loop   *animloop.Loop
	Shape  trail.Shape

	// Frame is replaced only after every follower has been stepped.
	Frame []trail.Follower

	// Time between the last two ticks, for the debug overlay
	LastDelta time.Duration

	UseFilter bool
}

var Cursor = donburi.NewComponentType[CursorData]()
