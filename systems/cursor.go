package systems

import (
	"image/color"
	"math"
	"time"

	"github.com/automoto/blobreel/assets"
	"github.com/automoto/blobreel/components"
	cfg "github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/shared/trail"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// now is swapped out in tests
var now = time.Now

// Offscreen layer for the goo filter, reallocated when the screen size changes
var blobLayer *ebiten.Image

// UpdateCursor delivers one animation frame to every cursor and applies the
// cursor toggles.
func UpdateCursor(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	toggleLoop := GetAction(input, cfg.ActionToggleCursor).JustPressed
	toggleFilter := GetAction(input, cfg.ActionToggleFilter).JustPressed
	t := now()

	components.Cursor.Each(ecs.World, func(entry *donburi.Entry) {
		cursor := components.Cursor.Get(entry)
		if toggleLoop {
			ToggleCursorLoop(cursor)
		}
		if toggleFilter {
			cursor.UseFilter = !cursor.UseFilter
		}
		cursor.Loop.Frame(t)
	})
}

// ToggleCursorLoop stops a running cursor loop, or restarts a stopped one
// from the parked position.
func ToggleCursorLoop(cursor *components.CursorData) {
	if cursor.Loop.Running() {
		cursor.Loop.Stop()
		return
	}
	cursor.Engine.Reset()
	cursor.Frame = cursor.Engine.AppendFollowers(cursor.Frame[:0])
	cursor.Loop.Start()
}

// StopCursors tears down every cursor loop. Safe to call more than once.
func StopCursors(ecs *ecs.ECS) {
	components.Cursor.Each(ecs.World, func(entry *donburi.Entry) {
		components.Cursor.Get(entry).Loop.Stop()
	})
}

// DrawCursor renders the last complete follower frame of every cursor
func DrawCursor(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Cursor.Each(ecs.World, func(entry *donburi.Entry) {
		cursor := components.Cursor.Get(entry)
		if !cursor.Loop.Running() {
			return
		}

		if !cursor.UseFilter || assets.GooShader == nil {
			drawFollowers(screen, cursor.Frame, cursor.Shape)
			return
		}

		layer := getBlobLayer(screen)
		layer.Clear()
		drawFollowers(layer, cursor.Frame, cursor.Shape)
		drawGoo(screen, layer)
	})
}

func getBlobLayer(screen *ebiten.Image) *ebiten.Image {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if blobLayer == nil || blobLayer.Bounds().Dx() != w || blobLayer.Bounds().Dy() != h {
		if blobLayer != nil {
			blobLayer.Deallocate()
		}
		blobLayer = ebiten.NewImage(w, h)
	}
	return blobLayer
}

func drawGoo(screen, layer *ebiten.Image) {
	w, h := layer.Bounds().Dx(), layer.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = layer
	op.Uniforms = map[string]any{
		"Radius":     float32(cfg.Cursor.FilterRadius),
		"AlphaScale": float32(cfg.Cursor.FilterAlphaScale),
		"AlphaBias":  float32(cfg.Cursor.FilterAlphaBias),
	}
	screen.DrawRectShader(w, h, assets.GooShader, op)
}

// drawFollowers draws back to front so the lead follower ends on top
func drawFollowers(dst *ebiten.Image, followers []trail.Follower, shape trail.Shape) {
	for i := len(followers) - 1; i >= 0; i-- {
		f := followers[i]
		x, y := float32(f.Position.X), float32(f.Position.Y)

		drawShadow(dst, shape, x+float32(cfg.Cursor.ShadowOffsetX), y+float32(cfg.Cursor.ShadowOffsetY), f)
		drawShape(dst, shape, x, y, float32(f.Size), withOpacity(f.Color, f.Opacity))
		drawShape(dst, shape, x, y, float32(f.InnerSize), withOpacity(f.InnerColor, f.Opacity))
	}
}

// drawShadow approximates a blurred drop shadow with concentric passes from
// Size+blur down to Size-blur.
func drawShadow(dst *ebiten.Image, shape trail.Shape, cx, cy float32, f trail.Follower) {
	shadow := cfg.Cursor.ShadowColor
	blur := cfg.Cursor.ShadowBlur
	passes := 1
	if blur > 0 {
		passes = shadowPasses
	}

	a := shadowPassAlpha(float64(shadow.A)/255*f.Opacity, passes)
	clr := withOpacity(color.RGBA{R: shadow.R, G: shadow.G, B: shadow.B, A: 255}, a)
	for i := 0; i < passes; i++ {
		drawShape(dst, shape, cx, cy, float32(shadowPassSize(f.Size, blur, i, passes)), clr)
	}
}

const shadowPasses = 4

// shadowPassSize is the diameter of pass i, largest first
func shadowPassSize(size, blur float64, pass, passes int) float64 {
	if passes <= 1 || blur <= 0 {
		return size
	}
	t := float64(pass) / float64(passes-1)
	return size + blur - 2*blur*t
}

// shadowPassAlpha is the per-pass alpha that composites back to alpha where
// every pass overlaps.
func shadowPassAlpha(alpha float64, passes int) float64 {
	if passes <= 1 {
		return alpha
	}
	return 1 - math.Pow(1-alpha, 1/float64(passes))
}

// drawShape draws a shape of the given diameter centred on (cx, cy)
func drawShape(dst *ebiten.Image, shape trail.Shape, cx, cy, size float32, clr color.RGBA) {
	if size <= 0 {
		return
	}
	switch shape {
	case trail.ShapeSquare:
		vector.FillRect(dst, cx-size/2, cy-size/2, size, size, clr, false)
	default:
		vector.FillCircle(dst, cx, cy, size/2, clr, true)
	}
}

// withOpacity scales a non-premultiplied color's alpha and returns it
// premultiplied, as ebiten expects.
func withOpacity(c color.RGBA, opacity float64) color.RGBA {
	a := float64(c.A) / 255 * opacity
	return color.RGBA{
		R: uint8(float64(c.R)*a + 0.5),
		G: uint8(float64(c.G)*a + 0.5),
		B: uint8(float64(c.B)*a + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// getCursor returns the first cursor, or nil if none was spawned
func getCursor(ecs *ecs.ECS) *components.CursorData {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Cursor.Get(entry)
}
