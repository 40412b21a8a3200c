package systems

import (
	"fmt"
	"time"

	cfg "github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudHint = "Left/Right: Rotate   C: Cursor   G: Goo   Esc: Quit"

// debugToggled flips the configured debug overlay setting
var debugToggled bool

// UpdateHUD handles the debug overlay toggle
func UpdateHUD(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		debugToggled = !debugToggled
	}
}

func debugVisible() bool {
	return cfg.HUD.ShowDebug != debugToggled
}

// DrawBackground clears the frame to the page background
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.HUD.BackgroundColor, false)
}

// DrawHUD renders the position counter, key hints and the debug overlay
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	height := screen.Bounds().Dy()

	if data := GetCarousel(ecs); data != nil {
		counter := fmt.Sprintf("%02d / %02d", data.Carousel.ActiveIndex()+1, data.Carousel.Len())
		text.Draw(screen, counter, fonts.Label.Get(), 24, 32, cfg.HUD.HintColor)
	}
	text.Draw(screen, hudHint, fonts.Small.Get(), 24, height-16, cfg.HUD.HintColor)

	if debugVisible() {
		ebitenutil.DebugPrintAt(screen, debugText(ecs), 24, 48)
	}
}

func debugText(ecs *ecs.ECS) string {
	s := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if data := GetCarousel(ecs); data != nil {
		s += fmt.Sprintf("\nrotation: %0.1f  display: %0.1f  front: %d",
			data.Carousel.RotationDeg(), data.DisplayDeg, data.Carousel.FrontIndex())
	}
	if cursor := getCursor(ecs); cursor != nil {
		s += fmt.Sprintf("\ncursor ticks: %d  running: %t  dt: %s",
			cursor.Loop.Ticks(), cursor.Loop.Running(), cursor.LastDelta.Round(time.Millisecond/10))
		for _, f := range cursor.Frame {
			if f.IsLead() {
				s += fmt.Sprintf("  lead: %0.0f,%0.0f", f.Position.X, f.Position.Y)
			}
		}
	}
	return s
}
