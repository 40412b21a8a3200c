package config

import (
	"image/color"

	"github.com/automoto/blobreel/shared/ring"
)

// Projects are the cards shown on the carousel
var Projects = []ring.Item{
	{
		Title:       "Furni Home",
		Category:    "E-Commerce UI",
		Image:       "furni-home",
		Description: "A scalable e-commerce interface focusing on conversion optimization and seamless product filtering.",
	},
	{
		Title:       "Morning Brew",
		Category:    "Hospitality UX",
		Image:       "cafe",
		Description: "Digital storefront concept designed to capture local traffic and showcase brand atmosphere.",
	},
	{
		Title:       "Modern Agency",
		Category:    "Corporate Identity",
		Image:       "cube",
		Description: "Minimalist B2B portfolio layout emphasizing typography, speed, and clear value propositions.",
	},
}

// ProjectTints stand in for card artwork, keyed by Item.Image. They are
// drawn at CarouselConfig.ImageOpacity.
var ProjectTints = map[string]color.RGBA{
	"furni-home": {R: 120, G: 86, B: 60, A: 255},
	"cafe":       {R: 92, G: 64, B: 51, A: 255},
	"cube":       {R: 70, G: 60, B: 140, A: 255},
}
