package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Approach moves current toward target by the given fraction of the
// remaining distance. A fraction of 1 lands exactly on target.
func Approach(current, target, fraction float64) float64 {
	if fraction >= 1 {
		return target
	}
	return current + (target-current)*fraction
}

// ApproachVec2 applies Approach to both axes.
func ApproachVec2(current, target dmath.Vec2, fraction float64) dmath.Vec2 {
	return dmath.Vec2{
		X: Approach(current.X, target.X, fraction),
		Y: Approach(current.Y, target.Y, fraction),
	}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// NormalizeDegrees maps deg into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
