package components

import (
	"github.com/codroidhub/aurora/timing"
	"github.com/yohamta/donburi"
)

// ClockData is the scene's virtual clock, advanced once per Update.
type ClockData struct {
	*timing.Clock
}

var Clock = donburi.NewComponentType[ClockData]()
