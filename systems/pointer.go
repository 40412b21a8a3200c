package systems

import (
	"github.com/automoto/blobreel/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slice for touch positions
var touchPoints []dmath.Vec2

// UpdatePointer feeds mouse and touch input into every cursor's sampler.
// Must run BEFORE UpdateCursor.
func UpdatePointer(ecs *ecs.ECS) {
	components.Pointer.Each(ecs.World, func(entry *donburi.Entry) {
		pointer := components.Pointer.Get(entry)

		pointer.TouchIDs = ebiten.AppendTouchIDs(pointer.TouchIDs[:0])
		touchPoints = touchPoints[:0]
		for _, id := range pointer.TouchIDs {
			x, y := ebiten.TouchPosition(id)
			touchPoints = append(touchPoints, dmath.Vec2{X: float64(x), Y: float64(y)})
		}

		mx, my := ebiten.CursorPosition()
		samplePointer(pointer, mx, my, touchPoints)
	})
}

// samplePointer writes the sampler from one frame of raw input. An active
// touch wins over the mouse. The mouse only counts once it has moved away
// from the first position seen, matching move-event semantics.
func samplePointer(p *components.PointerData, mouseX, mouseY int, touches []dmath.Vec2) {
	if p.Sampler.SetFirstTouch(touches) {
		return
	}

	if !p.MouseSeen {
		p.LastMouseX, p.LastMouseY = mouseX, mouseY
		p.MouseSeen = true
		return
	}
	if mouseX == p.LastMouseX && mouseY == p.LastMouseY {
		return
	}

	p.LastMouseX, p.LastMouseY = mouseX, mouseY
	p.Sampler.Set(float64(mouseX), float64(mouseY))
}
