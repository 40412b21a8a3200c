package trail

import "github.com/automoto/blobreel/shared/gamemath"

// Engine owns a fixed set of followers and moves each one toward the
// sampled pointer by its own speed on every Step.
type Engine struct {
	sampler   *Sampler
	followers []Follower
	cfg       Config
}

// NewEngine validates cfg and builds the follower set. The follower count
// never changes for the lifetime of the engine.
func NewEngine(cfg Config, sampler *Sampler) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sampler == nil {
		sampler = &Sampler{}
	}

	e := &Engine{
		sampler:   sampler,
		followers: make([]Follower, cfg.TrailCount),
		cfg:       cfg,
	}
	for i := range e.followers {
		e.followers[i] = Follower{
			Index:    i,
			Position: cfg.Initial,
			Speed:    cfg.Speeds[i],
			Style: Style{
				Size:       cfg.Sizes[i],
				InnerSize:  cfg.InnerSizes[i],
				Color:      cfg.Colors[i],
				InnerColor: cfg.InnerColors[i],
				Opacity:    cfg.Opacities[i],
			},
		}
	}
	return e, nil
}

// Sampler returns the pointer sampler the engine reads from.
func (e *Engine) Sampler() *Sampler {
	return e.sampler
}

// Step advances every follower once. Without a pointer sample the
// followers stay where they are.
func (e *Engine) Step() {
	target, ok := e.sampler.Sample()
	if !ok {
		return
	}
	for i := range e.followers {
		f := &e.followers[i]
		f.Position = gamemath.ApproachVec2(f.Position, target, f.Speed)
	}
}

// Len returns the number of followers.
func (e *Engine) Len() int {
	return len(e.followers)
}

// AppendFollowers appends a snapshot of the follower set, in index order,
// to dst and returns the extended slice.
func (e *Engine) AppendFollowers(dst []Follower) []Follower {
	return append(dst, e.followers...)
}

// Followers returns a snapshot of the follower set in index order.
func (e *Engine) Followers() []Follower {
	return e.AppendFollowers(make([]Follower, 0, len(e.followers)))
}

// Reset puts every follower back at the initial position.
func (e *Engine) Reset() {
	for i := range e.followers {
		e.followers[i].Position = e.cfg.Initial
	}
}
