package components

import (
	"github.com/codroidhub/aurora/timing"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScrollData is the page scroll position and its derived opacities.
type ScrollData struct {
	Offset float64
	Max    float64

	Overlay     float64
	Indicator   float64
	NavbarSolid bool

	Pending *timing.FrameRequest // set while a refresh computation is queued
	Updates int

	Anchor       *gween.Tween
	AnchorTarget string

	Timers *timing.Arena
}

var Scroll = donburi.NewComponentType[ScrollData]()
