package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/systems"
	"github.com/codroidhub/aurora/systems/factory"
	"github.com/codroidhub/aurora/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// PageScene is a scrollable content page with the navbar on top.
type PageScene struct {
	ecs    *ecs.ECS
	router *Router
	name   string
	navbar *ui.Navbar
	once   sync.Once
}

func NewPageScene(r *Router, layoutName string) *PageScene {
	return &PageScene{router: r, name: layoutName}
}

// Name returns the layout the page shows.
func (ps *PageScene) Name() string {
	return ps.name
}

func (ps *PageScene) Update() {
	ps.once.Do(ps.configure)

	input := systems.InputOf(ps.ecs)
	if input != nil && systems.GetAction(input, cfg.ActionToggleMenu).JustPressed {
		ps.navbar.ToggleMenu()
	}

	ps.navbar.Update()
	ps.ecs.Update()
}

func (ps *PageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PageScene) Resize(width, height int) {
	if ps.ecs != nil {
		systems.Resize(ps.ecs.World, width, height)
	}
}

func (ps *PageScene) Dispose() {
	if ps.ecs != nil {
		factory.ReleaseArenas(ps.ecs.World)
	}
}

func (ps *PageScene) configure() {
	layout := loadLayout(ps.name)
	ps.ecs = newPageECS(layout, ps.router)

	ps.navbar = ui.NewNavbar("CODROIDHUB", ui.LinksFromLayout(layout), func(href string) {
		systems.Activate(ps.ecs.World, ps.router, href)
	})

	// Navbar sits over the page and under the cursor
	ps.ecs.AddRenderer(cfg.Default, systems.DrawNavbar)
	ps.ecs.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		ps.navbar.Draw(screen)
	})
}
