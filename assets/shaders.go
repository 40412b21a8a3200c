package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GooShader blurs the blob layer and sharpens its alpha so nearby
	// blobs melt into each other
	GooShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	gooSrc, err := shaderFS.ReadFile("shaders/goo.kage")
	if err != nil {
		return err
	}
	GooShader, err = ebiten.NewShader(gooSrc)
	if err != nil {
		return err
	}

	return nil
}
