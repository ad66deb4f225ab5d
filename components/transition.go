package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransitionData drives the fade and cover that precede navigation.
type TransitionData struct {
	Active    bool
	StartedAt time.Duration

	Fade        *gween.Tween
	ViewOpacity float64 // loading view, 1 -> 0

	Cover        *gween.Tween
	CoverStarted bool
	CoverAt      time.Duration
	CoverOpacity float64 // opaque cover, 0 -> 1

	Navigations int
	Destination string
}

var Transition = donburi.NewComponentType[TransitionData]()
