package factory

import (
	"github.com/codroidhub/aurora/archetypes"
	"github.com/codroidhub/aurora/assets"
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/yohamta/donburi/ecs"
)

// CreatePage populates a world from a layout. Components whose element is
// missing from the layout are simply not created.
func CreatePage(ecs *ecs.ECS, layout *assets.Layout) {
	CreateClock(ecs)
	CreateViewport(ecs, cfg.C.Width, cfg.C.Height)
	CreateAurora(ecs)

	layoutEntry := archetypes.Layout.Spawn(ecs)
	components.Layout.SetValue(layoutEntry, components.LayoutData{Layout: layout})

	if layout.Counter != nil {
		CreateCounter(ecs, *layout.Counter)
	}
	if layout.Indicator != nil {
		CreateIndicator(ecs, *layout.Indicator)
	}
	if layout.Particles != nil {
		CreateEmitter(ecs, *layout.Particles, cfg.Particles.Seed)
	}

	spaceEntry := CreateSpace(ecs, int(layout.Width), int(layout.Height), HitCellSize, HitCellSize)
	space := components.Space.Get(spaceEntry)
	for _, el := range layout.Interactive {
		CreateInteractive(ecs, space, el)
	}
	CreateProbe(ecs, space)

	CreateCursor(ecs)
	CreateScroll(ecs, layout.ScrollRange(float64(cfg.C.Height)))
}
