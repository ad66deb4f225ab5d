package systems

import (
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartBlink toggles the indicator every blink interval until StopBlink.
func StartBlink(e *ecs.ECS) {
	entry, ok := tags.Indicator.First(e.World)
	if !ok {
		return
	}
	ind := components.Indicator.Get(entry)
	if ind.Stopped || ind.Blink.Active() {
		return
	}
	ind.Visible = true
	ind.Blink = ind.Timers.Every(cfg.Loader.BlinkInterval, func() {
		ind := components.Indicator.Get(entry)
		ind.Visible = !ind.Visible
	})
}

// StopBlink ends blinking and pins the indicator fully visible.
func StopBlink(w donburi.World) {
	entry, ok := tags.Indicator.First(w)
	if !ok {
		return
	}
	ind := components.Indicator.Get(entry)
	ind.Blink.Stop()
	ind.Stopped = true
	ind.Visible = true
}
