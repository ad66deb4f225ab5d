package factory

import (
	"github.com/codroidhub/aurora/archetypes"
	"github.com/codroidhub/aurora/components"
	"github.com/codroidhub/aurora/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Clock: timing.NewClock()})
	return clock
}

// newArena binds a fresh arena to the scene clock, creating the clock on first use.
func newArena(ecs *ecs.ECS) *timing.Arena {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = CreateClock(ecs)
	}
	return components.Clock.Get(entry).NewArena()
}

// ReleaseArenas stops every component arena in the world. Scenes call it on teardown.
func ReleaseArenas(w donburi.World) {
	release := func(a *timing.Arena) {
		if a != nil {
			a.Release()
		}
	}
	components.Counter.Each(w, func(e *donburi.Entry) { release(components.Counter.Get(e).Timers) })
	components.Indicator.Each(w, func(e *donburi.Entry) { release(components.Indicator.Get(e).Timers) })
	components.Emitter.Each(w, func(e *donburi.Entry) { release(components.Emitter.Get(e).Timers) })
	components.Cursor.Each(w, func(e *donburi.Entry) { release(components.Cursor.Get(e).Timers) })
	components.Scroll.Each(w, func(e *donburi.Entry) { release(components.Scroll.Get(e).Timers) })
}
