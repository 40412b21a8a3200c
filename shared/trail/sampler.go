package trail

import dmath "github.com/yohamta/donburi/features/math"

// Sampler holds the latest known pointer position. It has a single writer
// (the input system) and a single reader (the Engine), both on the game
// goroutine, so it carries no lock.
type Sampler struct {
	pos     dmath.Vec2
	sampled bool
}

// Set records a pointer position in viewport coordinates.
func (s *Sampler) Set(x, y float64) {
	s.pos = dmath.Vec2{X: x, Y: y}
	s.sampled = true
}

// SetFirstTouch records the first point of a touch list. An empty list keeps
// the previous sample and returns false.
func (s *Sampler) SetFirstTouch(points []dmath.Vec2) bool {
	if len(points) == 0 {
		return false
	}
	s.Set(points[0].X, points[0].Y)
	return true
}

// Sample returns the latest position and whether any sample was ever taken.
func (s *Sampler) Sample() (dmath.Vec2, bool) {
	return s.pos, s.sampled
}
