package systems

import (
	"github.com/automoto/blobreel/components"
	cfg "github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/shared/ring"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// carouselCenter is the screen point the ring is drawn around
func carouselCenter(width, height float64) (float64, float64) {
	return width / 2, height * cfg.Carousel.CenterY
}

// cardRect is the screen rectangle DrawCarousel maps a projected card to
func cardRect(p ring.Projection, cx, cy float64) (x, y, w, h float64) {
	w = cfg.Carousel.CardWidth * p.Facing * p.Scale
	h = cfg.Carousel.CardHeight * p.Scale
	return cx + p.X - w/2, cy - h/2, w, h
}

// hoveredCard returns the front-most visible card containing (px, py), or
// -1. projs must be ordered back to front, as ProjectAll returns them.
func hoveredCard(projs []ring.Projection, cx, cy, px, py float64) int {
	point := vector.Vector{px, py}
	for i := len(projs) - 1; i >= 0; i-- {
		p := projs[i]
		if !p.Visible() {
			continue
		}
		x, y, w, h := cardRect(p, cx, cy)
		if resolv.NewRectangle(x, y, w, h).PointInside(point) {
			return p.Index
		}
	}
	return -1
}

// updateHover tests the pointer against the cards at the displayed angle
func updateHover(ecs *ecs.ECS, data *components.CarouselData) {
	data.Hovered = -1

	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		return
	}
	pos, ok := components.Pointer.Get(entry).Sampler.Sample()
	if !ok {
		return
	}

	cx, cy := carouselCenter(float64(cfg.C.Width), float64(cfg.C.Height))
	projs := data.Carousel.ProjectAll(data.DisplayDeg, cfg.Carousel.Perspective)
	data.Hovered = hoveredCard(projs, cx, cy, pos.X, pos.Y)
}
