// Package animloop drives per-frame work from a host refresh callback.
//
// A Loop does not own a goroutine or a timer. The host (the ebiten Update
// call) invokes Frame once per refresh and the Loop turns that into a tick
// for its step function while it is running. Everything happens on the
// caller's goroutine.
package animloop

import "time"

// Tick is delivered to the step function once per frame.
type Tick struct {
	Seq   uint64        // 1-based count of ticks delivered since New
	Time  time.Time     // timestamp supplied by the host
	Delta time.Duration // time since the previous tick of the same run, 0 for the first
}

// Loop is a cancellable repeating task bound to the host's refresh cadence.
type Loop struct {
	step     func(Tick)
	running  bool
	inStep   bool
	ticks    uint64
	lastTime time.Time
}

// New returns a stopped loop that calls step on every delivered tick.
func New(step func(Tick)) *Loop {
	return &Loop{step: step}
}

// Start begins delivering ticks. Calling Start on a running loop does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.lastTime = time.Time{}
}

// Stop ends tick delivery. No tick is delivered after Stop returns, even if
// Stop is called from inside the step function. Stop may be called any
// number of times.
func (l *Loop) Stop() {
	l.running = false
}

// Running reports whether the loop delivers ticks.
func (l *Loop) Running() bool {
	return l.running
}

// Ticks returns how many ticks have been delivered.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Frame is called by the host once per refresh. It runs the step function
// exactly once, synchronously, and reports whether a tick was delivered.
// Nested calls from inside the step function are ignored.
func (l *Loop) Frame(now time.Time) bool {
	if !l.running || l.inStep || l.step == nil {
		return false
	}

	var delta time.Duration
	if !l.lastTime.IsZero() {
		delta = now.Sub(l.lastTime)
	}
	l.lastTime = now
	l.ticks++

	l.inStep = true
	defer func() { l.inStep = false }()
	l.step(Tick{Seq: l.ticks, Time: now, Delta: delta})
	return true
}
