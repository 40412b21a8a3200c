package trail

import (
	"image/color"

	dmath "github.com/yohamta/donburi/features/math"
)

// Shape selects how a follower and its inner highlight are drawn.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
)

// Style holds the static visual attributes of a follower.
type Style struct {
	Size       float64
	InnerSize  float64
	Color      color.RGBA
	InnerColor color.RGBA
	Opacity    float64
}

// Follower is one trailing element. Speed is the fraction of the remaining
// distance to the pointer covered on every tick.
type Follower struct {
	Index    int
	Position dmath.Vec2
	Speed    float64
	Style
}

// IsLead reports whether this is the first (fastest by convention) follower.
func (f Follower) IsLead() bool {
	return f.Index == 0
}
