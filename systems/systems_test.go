package systems

import (
	"image/color"
	"math"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/automoto/blobreel/components"
	cfg "github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/shared/ring"
	"github.com/automoto/blobreel/shared/trail"
	"github.com/automoto/blobreel/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	_, err := factory.CreateCursor(e, cfg.Cursor)
	require.NoError(t, err)
	_, err = factory.CreateCarousel(e, cfg.Projects, cfg.Carousel)
	require.NoError(t, err)
	return e
}

func fixedClock(t *testing.T) {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	frame := 0
	now = func() time.Time {
		frame++
		return start.Add(time.Duration(frame) * time.Second / 60)
	}
	t.Cleanup(func() { now = time.Now })
}

func press(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
}

func release(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionCarouselNext] = true

	state := GetAction(input, cfg.ActionCarouselNext)
	assert.True(t, state.Pressed)
	assert.True(t, state.JustPressed)
	assert.False(t, state.JustReleased)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	state = GetAction(input, cfg.ActionCarouselNext)
	assert.False(t, state.Pressed)
	assert.True(t, state.JustReleased)
}

func TestSamplePointer_MouseNeedsToMove(t *testing.T) {
	p := &components.PointerData{Sampler: &trail.Sampler{}}

	samplePointer(p, 10, 10, nil)
	_, ok := p.Sampler.Sample()
	assert.False(t, ok, "first reading only records the position")

	samplePointer(p, 10, 10, nil)
	_, ok = p.Sampler.Sample()
	assert.False(t, ok, "a still mouse is not a move")

	samplePointer(p, 30, 40, nil)
	pos, ok := p.Sampler.Sample()
	assert.True(t, ok)
	assert.Equal(t, dmath.Vec2{X: 30, Y: 40}, pos)
}

func TestSamplePointer_TouchWinsAndEmptyKeepsLast(t *testing.T) {
	p := &components.PointerData{Sampler: &trail.Sampler{}}

	samplePointer(p, 0, 0, []dmath.Vec2{{X: 100, Y: 200}, {X: 1, Y: 1}})
	pos, ok := p.Sampler.Sample()
	require.True(t, ok)
	assert.Equal(t, dmath.Vec2{X: 100, Y: 200}, pos)

	samplePointer(p, 0, 0, nil)
	pos, _ = p.Sampler.Sample()
	assert.Equal(t, dmath.Vec2{X: 100, Y: 200}, pos, "touch ended, mouse never moved")
}

func TestUpdateCursor_StepsOncePerFrame(t *testing.T) {
	fixedClock(t)
	e := newTestECS(t)
	cursor := getCursor(e)
	require.NotNil(t, cursor)

	entry, _ := components.Pointer.First(e.World)
	components.Pointer.Get(entry).Sampler.Set(400, 300)

	UpdateCursor(e)
	assert.Equal(t, uint64(1), cursor.Loop.Ticks())

	lead := cursor.Frame[0]
	wantX := cfg.Cursor.InitialX + (400-cfg.Cursor.InitialX)*cfg.Cursor.Speeds[0]
	assert.InDelta(t, wantX, lead.Position.X, 1e-9)

	UpdateCursor(e)
	assert.Equal(t, uint64(2), cursor.Loop.Ticks())
}

func TestUpdateCursor_ToggleStopsAndRestarts(t *testing.T) {
	fixedClock(t)
	e := newTestECS(t)
	cursor := getCursor(e)

	entry, _ := components.Pointer.First(e.World)
	components.Pointer.Get(entry).Sampler.Set(400, 300)
	UpdateCursor(e)

	press(e, cfg.ActionToggleCursor)
	UpdateCursor(e)
	assert.False(t, cursor.Loop.Running())
	ticks := cursor.Loop.Ticks()

	release(e)
	for i := 0; i < 5; i++ {
		UpdateCursor(e)
	}
	assert.Equal(t, ticks, cursor.Loop.Ticks(), "no ticks while stopped")

	press(e, cfg.ActionToggleCursor)
	UpdateCursor(e)
	assert.True(t, cursor.Loop.Running())
	assert.Equal(t, ticks+1, cursor.Loop.Ticks())
}

func TestUpdateCursor_ToggleFilter(t *testing.T) {
	fixedClock(t)
	e := newTestECS(t)
	cursor := getCursor(e)
	before := cursor.UseFilter

	press(e, cfg.ActionToggleFilter)
	UpdateCursor(e)
	assert.Equal(t, !before, cursor.UseFilter)
}

func TestToggleCursorLoop_RestartParksFollowers(t *testing.T) {
	e := newTestECS(t)
	cursor := getCursor(e)
	cursor.Engine.Sampler().Set(50, 50)
	cursor.Loop.Frame(time.Now())

	ToggleCursorLoop(cursor)
	ToggleCursorLoop(cursor)

	require.True(t, cursor.Loop.Running())
	for _, f := range cursor.Frame {
		assert.Equal(t, dmath.Vec2{X: cfg.Cursor.InitialX, Y: cfg.Cursor.InitialY}, f.Position)
	}
}

func TestStopCursors_Idempotent(t *testing.T) {
	fixedClock(t)
	e := newTestECS(t)
	cursor := getCursor(e)

	StopCursors(e)
	StopCursors(e)
	UpdateCursor(e)

	assert.False(t, cursor.Loop.Running())
	assert.Equal(t, uint64(0), cursor.Loop.Ticks())
}

func TestCarouselCommands(t *testing.T) {
	e := newTestECS(t)
	data := GetCarousel(e)
	require.NotNil(t, data)

	QueueCarouselCommand(e, ring.CommandNext)
	QueueCarouselCommand(e, ring.CommandNext)
	QueueCarouselCommand(e, ring.Command(99))
	applyCarouselCommands(data)

	assert.Equal(t, 2, data.Carousel.ActiveIndex())
	assert.InDelta(t, -240.0, data.Carousel.RotationDeg(), 1e-9)
	assert.Empty(t, data.Pending)
	assert.NotNil(t, data.Tween)
}

func TestCarouselCommands_InvalidOnlyLeavesStateAlone(t *testing.T) {
	e := newTestECS(t)
	data := GetCarousel(e)

	QueueCarouselCommand(e, ring.Command(0))
	applyCarouselCommands(data)

	assert.Equal(t, 0, data.Carousel.ActiveIndex())
	assert.Equal(t, 0.0, data.Carousel.RotationDeg())
	assert.Nil(t, data.Tween)
}

func TestAdvanceCarouselDisplay_EasesThenLands(t *testing.T) {
	e := newTestECS(t)
	data := GetCarousel(e)

	QueueCarouselCommand(e, ring.CommandPrev)
	applyCarouselCommands(data)
	target := data.Carousel.RotationDeg()
	require.InDelta(t, 120.0, target, 1e-9)

	advanceCarouselDisplay(data, cfg.Carousel.TransitionSeconds/2)
	assert.Greater(t, data.DisplayDeg, 0.0)
	assert.Less(t, data.DisplayDeg, target)
	assert.Equal(t, 2, data.Carousel.ActiveIndex(), "state commits before the ease finishes")

	advanceCarouselDisplay(data, cfg.Carousel.TransitionSeconds)
	assert.Equal(t, target, data.DisplayDeg)
	assert.Nil(t, data.Tween)
}

func TestAdvanceCarouselDisplay_RetargetsMidEase(t *testing.T) {
	e := newTestECS(t)
	data := GetCarousel(e)

	QueueCarouselCommand(e, ring.CommandNext)
	applyCarouselCommands(data)
	advanceCarouselDisplay(data, 0.1)
	mid := data.DisplayDeg

	QueueCarouselCommand(e, ring.CommandNext)
	applyCarouselCommands(data)
	current, _ := data.Tween.Update(0)
	assert.InDelta(t, mid, float64(current), 1e-3, "new ease starts where the ring is drawn")

	advanceCarouselDisplay(data, 10)
	assert.InDelta(t, -240.0, data.DisplayDeg, 1e-9)
}

func TestQuitRequested(t *testing.T) {
	e := newTestECS(t)
	assert.False(t, QuitRequested(e))

	press(e, cfg.ActionQuit)
	assert.True(t, QuitRequested(e))
}

func TestWithOpacity(t *testing.T) {
	got := withOpacity(color.RGBA{R: 200, G: 100, B: 0, A: 255}, 0.5)
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 0, A: 128}, got)

	assert.Equal(t, color.RGBA{}, withOpacity(cfg.White, 0))
	assert.Equal(t, cfg.White, premultiply(cfg.White))
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		width    int
		maxLines int
		want     []string
	}{
		{"empty", "", 10, 0, nil},
		{"fits", "hello world", 20, 0, []string{"hello world"}},
		{"wraps", "one two three four", 9, 0, []string{"one two", "three", "four"}},
		{"long word kept whole", "supercalifragilistic yes", 5, 0, []string{"supercalifragilistic", "yes"}},
		{"clamped", "aa bb cc dd ee ff", 5, 2, []string{"aa bb", "cc..."}},
		{"clamp cuts whole runes", "aaaaaéééé bb", 10, 1, []string{"aaaaaéé..."}},
		{"counts runes not bytes", "ééééé ééé", 9, 0, []string{"ééééé ééé"}},
		{"narrow width does not cut", "aa bb cc", 2, 1, []string{"aa..."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.in, tt.width, tt.maxLines)
			assert.Equal(t, tt.want, got)
			for _, line := range got {
				assert.True(t, utf8.ValidString(line), "%q", line)
			}
		})
	}
}

func TestDebugText(t *testing.T) {
	e := newTestECS(t)
	s := debugText(e)
	assert.Contains(t, s, "rotation: 0.0")
	assert.Contains(t, s, "cursor ticks: 0")
}

func TestDebugText_ShowsTickDeltaAndLead(t *testing.T) {
	fixedClock(t)
	e := newTestECS(t)

	entry, _ := components.Pointer.First(e.World)
	components.Pointer.Get(entry).Sampler.Set(400, 300)
	UpdateCursor(e)
	UpdateCursor(e)

	s := debugText(e)
	assert.Contains(t, s, "dt: 16.7ms")
	assert.Contains(t, s, "lead: 155,104")
}

func TestShadowPasses(t *testing.T) {
	assert.Equal(t, 60.0, shadowPassSize(60, 0, 0, 1))
	assert.Equal(t, 65.0, shadowPassSize(60, 5, 0, shadowPasses))
	assert.Equal(t, 55.0, shadowPassSize(60, 5, shadowPasses-1, shadowPasses))

	alpha := 0.45
	a := shadowPassAlpha(alpha, shadowPasses)
	assert.Less(t, a, alpha)
	assert.InDelta(t, alpha, 1-math.Pow(1-a, shadowPasses), 1e-12, "passes add back up where they overlap")
	assert.Equal(t, alpha, shadowPassAlpha(alpha, 1))
}

func TestHoveredCard(t *testing.T) {
	e := newTestECS(t)
	data := GetCarousel(e)
	cx, cy := carouselCenter(float64(cfg.C.Width), float64(cfg.C.Height))
	projs := data.Carousel.ProjectAll(0, cfg.Carousel.Perspective)

	front := projs[len(projs)-1]
	require.Equal(t, 0, front.Index)
	x, y, w, h := cardRect(front, cx, cy)

	assert.Equal(t, 0, hoveredCard(projs, cx, cy, cx, cy))
	assert.Equal(t, 0, hoveredCard(projs, cx, cy, x+2, y+h/3))
	assert.Equal(t, 0, hoveredCard(projs, cx, cy, x+w-2, y+h-5))
	assert.Equal(t, -1, hoveredCard(projs, cx, cy, x-2, cy), "left of the card")
	assert.Equal(t, -1, hoveredCard(projs, cx, cy, cx, y-2), "above the card")
	assert.Equal(t, -1, hoveredCard(nil, cx, cy, cx, cy))
}

func TestUpdateHover(t *testing.T) {
	e := newTestECS(t)
	data := GetCarousel(e)
	cx, cy := carouselCenter(float64(cfg.C.Width), float64(cfg.C.Height))

	updateHover(e, data)
	assert.Equal(t, -1, data.Hovered, "no pointer sample yet")

	entry, _ := components.Pointer.First(e.World)
	sampler := components.Pointer.Get(entry).Sampler
	sampler.Set(cx, cy)
	updateHover(e, data)
	assert.Equal(t, 0, data.Hovered)

	QueueCarouselCommand(e, ring.CommandPrev)
	applyCarouselCommands(data)
	advanceCarouselDisplay(data, 10)
	updateHover(e, data)
	assert.Equal(t, 2, data.Hovered, "hover follows the card now in front")

	sampler.Set(5, 5)
	updateHover(e, data)
	assert.Equal(t, -1, data.Hovered)
}

func TestCardStyleFollowsHover(t *testing.T) {
	idle, hovered := cardStyleFor(false), cardStyleFor(true)

	assert.False(t, idle.showAction)
	assert.True(t, hovered.showAction)
	assert.Equal(t, cfg.Carousel.CardBorderColor, idle.border)
	assert.Equal(t, cfg.Carousel.HoverBorderColor, hovered.border)
	assert.Less(t, hovered.imageOpacity, idle.imageOpacity)
}
