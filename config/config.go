package config

import (
	"image/color"

	"github.com/automoto/blobreel/shared/ring"
	"github.com/automoto/blobreel/shared/trail"
)

// Config holds window-level settings
type Config struct {
	Width  int
	Height int
	Title  string
}

// CursorConfig contains the blob cursor settings. Per-follower slices must
// have exactly TrailCount entries; the factory rejects anything else.
type CursorConfig struct {
	TrailCount  int
	Speeds      []float64 // fraction of remaining distance covered per frame
	Sizes       []float64
	InnerSizes  []float64
	Colors      []color.RGBA
	InnerColors []color.RGBA
	Opacities   []float64
	Shape       trail.Shape

	// Followers wait here until the first pointer sample
	InitialX float64
	InitialY float64

	// Drop shadow
	ShadowColor   color.RGBA
	ShadowBlur    float64 // edge softness in pixels, 0 for a hard shadow
	ShadowOffsetX float64
	ShadowOffsetY float64

	// Goo filter: blur the blob layer then remap alpha as a*AlphaScale + AlphaBias
	UseFilter        bool
	FilterRadius     float64 // blur radius in pixels
	FilterAlphaScale float64
	FilterAlphaBias  float64
}

// CarouselConfig contains the project carousel settings
type CarouselConfig struct {
	CardWidth          float64
	CardHeight         float64
	CardGap            float64
	PresentationMargin float64 // extra depth in front of every card
	Perspective        float64 // viewer distance in pixels
	CenterY            float64 // ring centre as a fraction of screen height

	// Display easing toward the committed rotation (seconds)
	TransitionSeconds float32

	// Commands applied right after the carousel is built, without easing
	StartCommands []ring.Command

	// Colors
	CardColor        color.RGBA
	CardBorderColor  color.RGBA
	HoverBorderColor color.RGBA
	CategoryColor    color.RGBA
	TitleColor       color.RGBA
	DescriptionColor color.RGBA

	// Artwork opacity, dimmed while the pointer is over the card
	ImageOpacity      float64
	HoverImageOpacity float64

	// Text layout inside a card
	CardPadding     float64
	DescriptionWrap int // characters per description line
}

// HUDConfig contains background and overlay settings
type HUDConfig struct {
	BackgroundColor color.RGBA
	HintColor       color.RGBA
	ButtonWidth     int
	ButtonHeight    int
	ButtonSpacing   int
	ButtonBottom    int // distance from the bottom edge
	ShowDebug       bool
}

var C *Config
var Cursor CursorConfig
var Carousel CarouselConfig
var HUD HUDConfig

// Common colors
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Violet      = color.RGBA{R: 139, G: 92, B: 246, A: 255}  // #8b5cf6
	Purple      = color.RGBA{R: 168, G: 85, B: 247, A: 255}  // #a855f7
	LightPurple = color.RGBA{R: 192, G: 132, B: 252, A: 255} // #c084fc
	Gray400     = color.RGBA{R: 156, G: 163, B: 175, A: 255}
	Gray900     = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	Highlight   = color.RGBA{R: 255, G: 255, B: 255, A: 204} // rgba(255,255,255,0.8)
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "blobreel",
	}

	// Cursor Config
	Cursor = CursorConfig{
		TrailCount:  3,
		Speeds:      []float64{0.3, 0.08, 0.08}, // lead follows closely, the rest lag
		Sizes:       []float64{60, 50, 75},
		InnerSizes:  []float64{20, 35, 25},
		Colors:      []color.RGBA{Violet, Violet, Violet},
		InnerColors: []color.RGBA{Highlight, Highlight, Highlight},
		Opacities:   []float64{0.6, 0.6, 0.6},
		Shape:       trail.ShapeCircle,

		InitialX: -100,
		InitialY: -100,

		ShadowColor:   color.RGBA{R: 0, G: 0, B: 0, A: 191},
		ShadowBlur:    5,
		ShadowOffsetX: 10,
		ShadowOffsetY: 10,

		UseFilter:        true,
		FilterRadius:     12,
		FilterAlphaScale: 35,
		FilterAlphaBias:  -10,
	}

	// Carousel Config
	Carousel = CarouselConfig{
		CardWidth:          300,
		CardHeight:         368,
		CardGap:            40,
		PresentationMargin: 100,
		Perspective:        1000,
		CenterY:            0.45,

		TransitionSeconds: 1.0,

		CardColor:        color.RGBA{R: 17, G: 24, B: 39, A: 204},
		CardBorderColor:  color.RGBA{R: 255, G: 255, B: 255, A: 26},
		HoverBorderColor: color.RGBA{R: 168, G: 85, B: 247, A: 128},
		CategoryColor:    LightPurple,
		TitleColor:       White,
		DescriptionColor: Gray400,

		ImageOpacity:      0.6,
		HoverImageOpacity: 0.4,

		CardPadding:     24,
		DescriptionWrap: 38,
	}

	// HUD Config
	HUD = HUDConfig{
		BackgroundColor: color.RGBA{R: 5, G: 5, B: 10, A: 255},
		HintColor:       Gray400,
		ButtonWidth:     48,
		ButtonHeight:    48,
		ButtonSpacing:   24,
		ButtonBottom:    40,
	}
}
