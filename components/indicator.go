package components

import (
	"github.com/codroidhub/aurora/timing"
	"github.com/yohamta/donburi"
)

// IndicatorData is the blinking square shown next to the counter.
type IndicatorData struct {
	Visible bool
	Stopped bool // blinking ended; the square stays fully visible
	Blink   *timing.Timer
	Timers  *timing.Arena
}

var Indicator = donburi.NewComponentType[IndicatorData]()
