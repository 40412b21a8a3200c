package tags

import "github.com/yohamta/donburi"

var (
	Cursor   = donburi.NewTag().SetName("Cursor")
	Carousel = donburi.NewTag().SetName("Carousel")
)
