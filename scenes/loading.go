package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/systems"
	"github.com/codroidhub/aurora/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// LoadingScene counts to 100 and then hands over to the destination page.
type LoadingScene struct {
	ecs    *ecs.ECS
	router *Router
	once   sync.Once
}

func NewLoadingScene(r *Router) *LoadingScene {
	return &LoadingScene{router: r}
}

func (ls *LoadingScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LoadingScene) Resize(width, height int) {
	if ls.ecs != nil {
		systems.Resize(ls.ecs.World, width, height)
	}
}

func (ls *LoadingScene) Dispose() {
	if ls.ecs != nil {
		factory.ReleaseArenas(ls.ecs.World)
	}
}

func (ls *LoadingScene) configure() {
	ls.ecs = newPageECS(loadLayout("loading"), ls.router)

	ls.ecs.AddRenderer(cfg.Default, systems.DrawLoader)
	ls.ecs.AddRenderer(cfg.LayerCover, systems.DrawCover)

	systems.StartBlink(ls.ecs)
	systems.StartLoader(ls.ecs, ls.router)
}
