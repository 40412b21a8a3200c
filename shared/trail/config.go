package trail

import (
	"errors"
	"fmt"
	"image/color"

	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrNoFollowers    = errors.New("trail: trail count must be at least 1")
	ErrLengthMismatch = errors.New("trail: attribute list length does not match trail count")
	ErrSpeedRange     = errors.New("trail: speed must be in (0, 1]")
	ErrOpacityRange   = errors.New("trail: opacity must be in [0, 1]")
	ErrSize           = errors.New("trail: sizes must be positive and inner size must not exceed size")
)

// Config describes a follower set. Every per-follower slice must have
// exactly TrailCount entries.
type Config struct {
	TrailCount  int
	Speeds      []float64
	Sizes       []float64
	InnerSizes  []float64
	Colors      []color.RGBA
	InnerColors []color.RGBA
	Opacities   []float64

	// Initial is where followers sit until the first pointer sample arrives.
	Initial dmath.Vec2
}

// Validate checks the config and returns the first problem found.
func (c Config) Validate() error {
	if c.TrailCount < 1 {
		return fmt.Errorf("%w: got %d", ErrNoFollowers, c.TrailCount)
	}

	lengths := []struct {
		name string
		n    int
	}{
		{"speeds", len(c.Speeds)},
		{"sizes", len(c.Sizes)},
		{"innerSizes", len(c.InnerSizes)},
		{"colors", len(c.Colors)},
		{"innerColors", len(c.InnerColors)},
		{"opacities", len(c.Opacities)},
	}
	for _, l := range lengths {
		if l.n != c.TrailCount {
			return fmt.Errorf("%w: %s has %d entries, want %d", ErrLengthMismatch, l.name, l.n, c.TrailCount)
		}
	}

	for i := 0; i < c.TrailCount; i++ {
		if !(c.Speeds[i] > 0 && c.Speeds[i] <= 1) {
			return fmt.Errorf("%w: follower %d has speed %v", ErrSpeedRange, i, c.Speeds[i])
		}
		if c.Opacities[i] < 0 || c.Opacities[i] > 1 {
			return fmt.Errorf("%w: follower %d has opacity %v", ErrOpacityRange, i, c.Opacities[i])
		}
		if c.Sizes[i] <= 0 || c.InnerSizes[i] < 0 || c.InnerSizes[i] > c.Sizes[i] {
			return fmt.Errorf("%w: follower %d has size %v, inner size %v", ErrSize, i, c.Sizes[i], c.InnerSizes[i])
		}
	}
	return nil
}
