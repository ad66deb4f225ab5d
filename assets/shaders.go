package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// AuroraShader paints the animated page background
	AuroraShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	auroraSrc, err := shaderFS.ReadFile("shaders/aurora.kage")
	if err != nil {
		return err
	}
	AuroraShader, err = ebiten.NewShader(auroraSrc)
	if err != nil {
		return err
	}

	return nil
}
