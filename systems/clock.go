package systems

import (
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the scene clock by one frame. Timers due inside the
// frame fire here, followed by the refresh callbacks.
func UpdateClock(e *ecs.ECS) {
	clock := sceneClock(e.World)
	if clock == nil {
		return
	}
	clock.Tick(cfg.FrameDuration())
}

func sceneClock(w donburi.World) *timing.Clock {
	entry, ok := components.Clock.First(w)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry).Clock
}
