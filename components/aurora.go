package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AuroraData is the parallax offset of the animated background.
type AuroraData struct {
	Offset math.Vec2
	Time   float64 // seconds, fed to the shader
}

var Aurora = donburi.NewComponentType[AuroraData]()
