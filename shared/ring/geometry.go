// Package ring lays carousel cards out on a circle and tracks which card
// faces the viewer as the ring is rotated one step at a time.
package ring

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrTooFewItems    = errors.New("ring: carousel needs at least 2 items")
	ErrCardSize       = errors.New("ring: card width must be positive, gap and margin must not be negative")
	ErrInvalidCommand = errors.New("ring: unknown carousel command")
)

// Geometry is derived from the card layout and only changes when the item
// count, card width or gap changes.
type Geometry struct {
	Count     int
	Width     float64
	Gap       float64
	AngleStep float64 // degrees between neighbouring cards
	Radius    float64 // distance that puts neighbouring card edges together
}

// NewGeometry computes the angular step and ring radius for count cards
// of the given width. Counts below 2 have no usable ring.
func NewGeometry(width, gap float64, count int) (Geometry, error) {
	if count < 2 {
		return Geometry{}, fmt.Errorf("%w: got %d", ErrTooFewItems, count)
	}
	if !(width > 0) || gap < 0 || math.IsInf(width, 0) || math.IsInf(gap, 0) || math.IsNaN(gap) {
		return Geometry{}, fmt.Errorf("%w: width %v, gap %v", ErrCardSize, width, gap)
	}

	return Geometry{
		Count:     count,
		Width:     width,
		Gap:       gap,
		AngleStep: 360 / float64(count),
		Radius:    math.Round((width / 2) / math.Tan(math.Pi/float64(count))),
	}, nil
}

// Depth is how far each card is pushed out from the ring centre.
func (g Geometry) Depth(margin float64) float64 {
	return g.Radius + g.Gap + margin
}
