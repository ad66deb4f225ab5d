package scenes

import (
	"github.com/codroidhub/aurora/assets"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/systems"
	"github.com/codroidhub/aurora/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scene is one page of the application.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Disposer is implemented by scenes that own scheduled work.
type Disposer interface {
	Dispose()
}

// Resizer is implemented by scenes that react to window size changes.
type Resizer interface {
	Resize(width, height int)
}

// newPageECS builds the world shared by every page: the layout entities,
// the ambient effects and the input systems. The returned world has its
// emitter and cursor running.
func newPageECS(layout *assets.Layout, nav systems.Navigator) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreatePage(e, layout)

	// Input first, the clock after every system that requests frames
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePointer)
	e.AddSystem(systems.NewUpdateCursor(systems.DetectCapability))
	e.AddSystem(systems.NewUpdateLinks(nav))
	e.AddSystem(systems.UpdateScroll)
	e.AddSystem(systems.UpdateAurora)
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateCounter)
	e.AddSystem(systems.UpdateParticles)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.ClearViewportFlags)

	e.AddRenderer(cfg.LayerBackground, systems.DrawBackground)
	e.AddRenderer(cfg.LayerBackground, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawPage)
	e.AddRenderer(cfg.LayerCursor, systems.DrawCursor)
	e.AddRenderer(cfg.LayerDebug, systems.DrawDebug)

	systems.StartEmitter(e)
	systems.StartCursor(e, systems.DetectCapability)
	return e
}

func loadLayout(name string) *assets.Layout {
	layout, err := assets.GetLayout(name)
	if err != nil {
		panic("failed to load layout: " + err.Error())
	}
	return layout
}
