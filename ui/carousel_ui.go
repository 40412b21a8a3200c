package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/blobreel/components"
	cfg "github.com/automoto/blobreel/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// CarouselUI holds the ebitenui navigation controls under the carousel
type CarouselUI struct {
	UI       *ebitenui.UI
	Carousel *components.CarouselData

	// Callbacks
	OnPrev func()
	OnNext func()

	// Widget references for updates
	titleLabel    *widget.Label
	categoryLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	buttonFace text.Face
	titleFace  text.Face
	smallFace  text.Face
}

// NewCarouselUI creates the prev/next buttons and active item labels
func NewCarouselUI(carousel *components.CarouselData, onPrev, onNext func()) *CarouselUI {
	cui := &CarouselUI{
		Carousel: carousel,
		OnPrev:   onPrev,
		OnNext:   onNext,
	}

	cui.loadFonts()
	cui.buildUI()
	cui.UpdateUI()

	return cui
}

func (cui *CarouselUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	cui.buttonFace = &text.GoTextFace{Source: fontSource, Size: 20}
	cui.titleFace = &text.GoTextFace{Source: fontSource, Size: 16}
	cui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (cui *CarouselUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bottom := cfg.HUD.ButtonBottom
	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: bottom}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	cui.categoryLabel = newLabel(&cui.smallFace, cfg.LightPurple)
	content.AddChild(cui.categoryLabel)

	cui.titleLabel = newLabel(&cui.titleFace, cfg.White)
	content.AddChild(cui.titleLabel)

	content.AddChild(cui.buildButtonsContainer())
	rootContainer.AddChild(content)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func newLabel(face *text.Face, idle color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{
			Idle: idle,
		}),
	)
}

func (cui *CarouselUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(cfg.HUD.ButtonSpacing),
		)),
	)

	container.AddChild(cui.navButton("<", func() {
		if cui.OnPrev != nil {
			cui.OnPrev()
		}
	}))
	container.AddChild(cui.navButton(">", func() {
		if cui.OnNext != nil {
			cui.OnNext()
		}
	}))

	return container
}

func (cui *CarouselUI) navButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.HUD.ButtonWidth, cfg.HUD.ButtonHeight),
		),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text(label, &cui.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{0, 0, 0, 255},
			Pressed: color.RGBA{40, 40, 40, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (cui *CarouselUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{255, 255, 255, 13})
	hover := image.NewNineSliceColor(color.RGBA{255, 255, 255, 255})
	pressed := image.NewNineSliceColor(color.RGBA{200, 200, 200, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the labels from the carousel state
func (cui *CarouselUI) UpdateUI() {
	if cui.Carousel == nil {
		return
	}
	item := cui.Carousel.Carousel.ActiveItem()
	cui.titleLabel.Label = item.Title
	cui.categoryLabel.Label = item.Category
}

// Update runs one frame: widget input first, so button clicks queue their
// commands, then step, then the labels from the state step left behind.
func (cui *CarouselUI) Update(step func()) {
	if cui.UI != nil {
		cui.UI.Update()
	}
	if step != nil {
		step()
	}
	cui.UpdateUI()
}
