package systems

import (
	"image/color"

	"github.com/automoto/blobreel/components"
	cfg "github.com/automoto/blobreel/config"
	"github.com/automoto/blobreel/fonts"
	"github.com/automoto/blobreel/shared/ring"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type cardKey struct {
	item    ring.Item
	hovered bool
}

// Cards only change with their item and hover state, so they are drawn once
var cardCache = map[cardKey]*ebiten.Image{}

// DrawCarousel renders every front-facing card back to front at the
// displayed (possibly mid-ease) rotation.
func DrawCarousel(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Carousel.Each(ecs.World, func(entry *donburi.Entry) {
		data := components.Carousel.Get(entry)

		cx, cy := carouselCenter(float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))

		for _, p := range data.Carousel.ProjectAll(data.DisplayDeg, cfg.Carousel.Perspective) {
			if !p.Visible() {
				continue
			}
			img := cardImage(data.Carousel.Item(p.Index), p.Index == data.Hovered)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-cfg.Carousel.CardWidth/2, -cfg.Carousel.CardHeight/2)
			op.GeoM.Scale(p.Facing*p.Scale, p.Scale)
			op.GeoM.Translate(cx+p.X, cy)
			op.ColorScale.ScaleAlpha(float32(0.35 + 0.65*p.Facing))
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op)
		}
	})
}

func cardImage(item ring.Item, hovered bool) *ebiten.Image {
	key := cardKey{item: item, hovered: hovered}
	if img, ok := cardCache[key]; ok {
		return img
	}
	img := renderCard(item, hovered)
	cardCache[key] = img
	return img
}

// cardStyle holds what changes on a card while the pointer is over it
type cardStyle struct {
	border       color.RGBA
	strokeWidth  float32
	imageOpacity float64
	showAction   bool
}

func cardStyleFor(hovered bool) cardStyle {
	c := cfg.Carousel
	if hovered {
		return cardStyle{border: c.HoverBorderColor, strokeWidth: 2, imageOpacity: c.HoverImageOpacity, showAction: true}
	}
	return cardStyle{border: c.CardBorderColor, strokeWidth: 1, imageOpacity: c.ImageOpacity}
}

// renderCard draws the flat card: artwork tint, bottom shade, border, text
func renderCard(item ring.Item, hovered bool) *ebiten.Image {
	c := cfg.Carousel
	style := cardStyleFor(hovered)
	w, h := float32(c.CardWidth), float32(c.CardHeight)
	img := ebiten.NewImage(int(c.CardWidth), int(c.CardHeight))

	vector.FillRect(img, 0, 0, w, h, premultiply(c.CardColor), false)
	if tint, ok := cfg.ProjectTints[item.Image]; ok {
		vector.FillRect(img, 0, 0, w, h, withOpacity(tint, style.imageOpacity), false)
	}

	// Shade toward the bottom so the text stays readable
	const bands = 32
	bandH := h / bands
	for i := 0; i < bands; i++ {
		a := float64(i) / bands
		vector.FillRect(img, 0, float32(i)*bandH, w, bandH+1, withOpacity(cfg.Black, a*a), false)
	}

	vector.StrokeRect(img, 1, 1, w-2, h-2, style.strokeWidth, premultiply(style.border), true)

	drawCardText(img, item, style.showAction)
	return img
}

func drawCardText(img *ebiten.Image, item ring.Item, showAction bool) {
	c := cfg.Carousel
	x := int(c.CardPadding)
	y := int(c.CardHeight - c.CardPadding)

	if showAction {
		text.Draw(img, "View Case Study ->", fonts.Label.Get(), x, y, c.TitleColor)
		y -= 26
	}

	desc := wrapText(item.Description, c.DescriptionWrap, 3)
	for i := len(desc) - 1; i >= 0; i-- {
		text.Draw(img, desc[i], fonts.Body.Get(), x, y, c.DescriptionColor)
		y -= 16
	}
	y -= 10

	text.Draw(img, item.Title, fonts.Title.Get(), x, y, c.TitleColor)
	y -= 30
	text.Draw(img, item.Category, fonts.Label.Get(), x, y, c.CategoryColor)
}

// premultiply converts a straight-alpha config color for drawing
func premultiply(c color.RGBA) color.RGBA {
	return withOpacity(c, 1)
}
