package ring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/automoto/blobreel/shared/gamemath"
)

// Item is a display record. The carousel never changes it.
type Item struct {
	Title       string
	Category    string
	Image       string
	Description string
}

// Command is a navigation step.
type Command int

const (
	CommandNext Command = iota + 1
	CommandPrev
)

func (c Command) String() string {
	switch c {
	case CommandNext:
		return "next"
	case CommandPrev:
		return "prev"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand maps "next" and "prev" to their commands.
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next":
		return CommandNext, nil
	case "prev":
		return CommandPrev, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCommand, s)
}

// Placement is the fixed position of one card on the ring.
type Placement struct {
	Index    int
	AngleDeg float64
	Depth    float64
}

// Carousel holds the rotation state. RotationDeg accumulates one step per
// command and is never wrapped, so the ring keeps turning the same way
// across many steps.
type Carousel struct {
	items       []Item
	geom        Geometry
	margin      float64
	rotationDeg float64
	activeIndex int
}

// NewCarousel builds a carousel at rotation 0 with item 0 active. margin is
// the extra depth added in front of each card.
func NewCarousel(items []Item, width, gap, margin float64) (*Carousel, error) {
	geom, err := NewGeometry(width, gap, len(items))
	if err != nil {
		return nil, err
	}
	if margin < 0 || math.IsNaN(margin) || math.IsInf(margin, 0) {
		return nil, fmt.Errorf("%w: margin %v", ErrCardSize, margin)
	}

	owned := make([]Item, len(items))
	copy(owned, items)

	return &Carousel{
		items:  owned,
		geom:   geom,
		margin: margin,
	}, nil
}

// Next rotates one step forward.
func (c *Carousel) Next() {
	c.rotationDeg -= c.geom.AngleStep
	c.activeIndex = (c.activeIndex + 1) % c.geom.Count
}

// Prev rotates one step back.
func (c *Carousel) Prev() {
	c.rotationDeg += c.geom.AngleStep
	c.activeIndex = (c.activeIndex - 1 + c.geom.Count) % c.geom.Count
}

// Apply runs cmd. Unknown commands return ErrInvalidCommand and leave the
// state untouched.
func (c *Carousel) Apply(cmd Command) error {
	switch cmd {
	case CommandNext:
		c.Next()
	case CommandPrev:
		c.Prev()
	default:
		return fmt.Errorf("%w: %v", ErrInvalidCommand, cmd)
	}
	return nil
}

// RotationDeg returns the accumulated ring rotation in degrees.
func (c *Carousel) RotationDeg() float64 { return c.rotationDeg }

// ActiveIndex returns the index of the front-facing item.
func (c *Carousel) ActiveIndex() int { return c.activeIndex }

func (c *Carousel) Geometry() Geometry { return c.geom }

func (c *Carousel) Len() int { return len(c.items) }

// Item returns the i-th item.
func (c *Carousel) Item(i int) Item {
	return c.items[i]
}

// ActiveItem returns the item at the active index.
func (c *Carousel) ActiveItem() Item {
	return c.items[c.activeIndex]
}

// Placements returns the fixed ring position of every card.
func (c *Carousel) Placements() []Placement {
	depth := c.geom.Depth(c.margin)
	out := make([]Placement, len(c.items))
	for i := range out {
		out[i] = Placement{
			Index:    i,
			AngleDeg: float64(i) * c.geom.AngleStep,
			Depth:    depth,
		}
	}
	return out
}

// FrontIndex returns the card whose ring angle plus the current rotation
// is a multiple of 360.
func (c *Carousel) FrontIndex() int {
	return FrontIndexAt(c.geom, c.rotationDeg)
}

// FrontIndexAt returns the card closest to facing the viewer at the given
// rotation.
func FrontIndexAt(g Geometry, rotationDeg float64) int {
	steps := math.Round(gamemath.NormalizeDegrees(-rotationDeg) / g.AngleStep)
	return int(steps) % g.Count
}

// Projection is a card position after rotation and perspective, relative
// to the ring centre on screen.
type Projection struct {
	Index int
	X     float64 // horizontal screen offset
	Z     float64 // depth toward the viewer
	Scale float64 // perspective scale at Z
	// Facing is the cosine between the card normal and the view direction.
	// It doubles as the horizontal foreshortening factor.
	Facing float64
}

// Visible reports whether the card front faces the viewer. Edge-on cards
// count as hidden.
func (p Projection) Visible() bool {
	return p.Facing > 1e-9
}

// Project places card i for a displayed rotation (which may be mid-ease)
// using a viewer at the given perspective distance.
func (c *Carousel) Project(i int, displayDeg, perspective float64) Projection {
	depth := c.geom.Depth(c.margin)
	theta := gamemath.ToRadians(float64(i)*c.geom.AngleStep + displayDeg)
	sin, cos := math.Sincos(theta)

	p := Projection{
		Index:  i,
		X:      depth * sin,
		Z:      depth * cos,
		Facing: cos,
		Scale:  1,
	}
	if perspective > 0 {
		// Clamp so cards passing behind the eye do not blow up.
		p.Scale = perspective / math.Max(perspective-p.Z, 1)
		p.X *= p.Scale
	}
	return p
}

// ProjectAll projects every card and orders them back to front.
func (c *Carousel) ProjectAll(displayDeg, perspective float64) []Projection {
	out := make([]Projection, len(c.items))
	for i := range out {
		out[i] = c.Project(i, displayDeg, perspective)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Z < out[b].Z })
	return out
}
