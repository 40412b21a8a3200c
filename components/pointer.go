package components

import (
	"github.com/automoto/blobreel/shared/trail"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PointerData bridges ebiten input to the trail sampler. The sampler is only
// written when the mouse actually moves or a touch is active, so a cursor
// that never moved leaves the followers parked.
type PointerData struct {
	Sampler *trail.Sampler

	LastMouseX, LastMouseY int
	MouseSeen              bool

	TouchIDs []ebiten.TouchID // reused every frame
}

var Pointer = donburi.NewComponentType[PointerData]()
