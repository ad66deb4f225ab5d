package systems

import (
	"testing"
	"time"

	"github.com/codroidhub/aurora/assets"
	"github.com/codroidhub/aurora/components"
	"github.com/codroidhub/aurora/systems/factory"
	"github.com/codroidhub/aurora/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	return e
}

func testClock(t *testing.T, e *ecs.ECS) *timing.Clock {
	t.Helper()
	clock := sceneClock(e.World)
	if clock == nil {
		t.Fatal("no clock in world")
	}
	return clock
}

// runFrames ticks the clock n times at the given frame length, calling each
// per-frame system after the tick.
func runFrames(e *ecs.ECS, clock *timing.Clock, n int, frame time.Duration, systems ...ecs.System) {
	for i := 0; i < n; i++ {
		clock.Tick(frame)
		for _, sys := range systems {
			sys(e)
		}
	}
}

func testLayout() *assets.Layout {
	return &assets.Layout{
		Name:   "test",
		Width:  1280,
		Height: 2400,
		Sections: []assets.Element{
			{Rect: assets.Rect{Y: 0, Width: 1280, Height: 720}, Name: "hero"},
			{Rect: assets.Rect{Y: 720, Width: 1280, Height: 480}, Name: "about"},
			{Rect: assets.Rect{Y: 2000, Width: 1280, Height: 400}, Name: "contact"},
		},
	}
}

func addLayout(e *ecs.ECS, layout *assets.Layout) {
	entry := e.World.Entry(e.World.Create(components.Layout))
	components.Layout.SetValue(entry, components.LayoutData{Layout: layout})
}
