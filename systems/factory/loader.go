package factory

import (
	"github.com/codroidhub/aurora/archetypes"
	"github.com/codroidhub/aurora/assets"
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCounter builds the loading counter in the Idle state.
func CreateCounter(ecs *ecs.ECS, rect assets.Rect) *donburi.Entry {
	counter := archetypes.Counter.Spawn(ecs, components.Element)
	components.Counter.SetValue(counter, components.CounterData{
		Target:     cfg.Loader.Target,
		Increment:  cfg.Loader.Increment,
		BaseDelay:  cfg.Loader.BaseDelay,
		State:      cfg.LoaderIdle,
		Milestones: append([]int(nil), cfg.Loader.Milestones...),
		Scale:      1,
		Timers:     newArena(ecs),
	})
	components.Transition.SetValue(counter, components.TransitionData{ViewOpacity: 1})
	components.Element.SetValue(counter, boundsOnly(rect))
	return counter
}

func CreateIndicator(ecs *ecs.ECS, rect assets.Rect) *donburi.Entry {
	indicator := archetypes.Indicator.Spawn(ecs, components.Element)
	components.Indicator.SetValue(indicator, components.IndicatorData{
		Visible: true,
		Timers:  newArena(ecs),
	})
	components.Element.SetValue(indicator, boundsOnly(rect))
	return indicator
}
