package components

import (
	"github.com/automoto/blobreel/shared/ring"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CarouselData pairs the rotation state with its on-screen easing.
// DisplayDeg trails Carousel.RotationDeg() through Tween; the committed
// state never waits on the animation.
type CarouselData struct {
	Carousel   *ring.Carousel
	DisplayDeg float64
	Tween      *gween.Tween

	// Commands queued by buttons or keys for the next update
	Pending []ring.Command

	// Card under the pointer, -1 for none
	Hovered int
}

var Carousel = donburi.NewComponentType[CarouselData]()
