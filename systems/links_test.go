package systems

import (
	"testing"

	"github.com/codroidhub/aurora/assets"
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

type linkFixture struct {
	e       *ecs.ECS
	paths   []string
	update  ecs.System
	pointer *components.PointerData
}

func newLinkFixture(t *testing.T) *linkFixture {
	t.Helper()
	e := newTestECS(t)
	factory.CreateViewport(e, cfg.C.Width, cfg.C.Height)
	addLayout(e, testLayout())
	factory.CreateScroll(e, testLayout().ScrollRange(float64(cfg.C.Height)))

	space := components.Space.Get(factory.CreateSpace(e, 1280, 2400, factory.HitCellSize, factory.HitCellSize))
	for _, el := range []assets.Element{
		{Rect: assets.Rect{X: 200, Y: 300, Width: 100, Height: 40}, Category: "explore-btn", Href: "/about"},
		{Rect: assets.Rect{X: 500, Y: 300, Width: 80, Height: 20}, Category: "a", Href: "#contact"},
		{Rect: assets.Rect{X: 700, Y: 300, Width: 80, Height: 20}, Category: "button"},
		{Rect: assets.Rect{X: 1000, Y: 10, Width: 80, Height: 30}, Category: "nav-link", Href: "/home", Fixed: true},
	} {
		factory.CreateInteractive(e, space, el)
	}
	factory.CreateProbe(e, space)

	f := &linkFixture{e: e}
	f.update = NewUpdateLinks(NavigatorFunc(func(path string) { f.paths = append(f.paths, path) }))
	f.pointer = getPointer(e.World)
	require.NotNil(t, f.pointer)
	f.pointer.InWindow = true
	return f
}

func (f *linkFixture) click(x, y float64) {
	f.pointer.X, f.pointer.Y = x, y
	f.pointer.JustReleased = true
	f.update(f.e)
	ClearViewportFlags(f.e)
}

func TestLinksNavigateOnClick(t *testing.T) {
	f := newLinkFixture(t)

	f.pointer.X, f.pointer.Y = 250, 320
	f.update(f.e)
	assert.Empty(t, f.paths, "hover alone does nothing")

	f.click(250, 320)
	assert.Equal(t, []string{"/about"}, f.paths)
}

func TestLinksScrollToAnchor(t *testing.T) {
	f := newLinkFixture(t)
	f.click(510, 305)

	assert.Empty(t, f.paths)
	entry, ok := components.Scroll.First(f.e.World)
	require.True(t, ok)
	assert.Equal(t, "contact", components.Scroll.Get(entry).AnchorTarget)
}

func TestLinksIgnoreInertAndFixedElements(t *testing.T) {
	f := newLinkFixture(t)
	f.click(710, 305)
	f.click(1010, 20)
	f.click(5, 5)
	assert.Empty(t, f.paths)
}

func TestLinksIgnoreClicksOutsideWindow(t *testing.T) {
	f := newLinkFixture(t)
	f.pointer.InWindow = false
	f.pointer.X, f.pointer.Y, f.pointer.JustReleased = 250, 320, true
	f.update(f.e)
	assert.Empty(t, f.paths)
}

func TestActivate(t *testing.T) {
	e := newTestECS(t)
	var paths []string
	nav := NavigatorFunc(func(path string) { paths = append(paths, path) })

	Activate(e.World, nav, "")
	Activate(e.World, nav, "#about")
	Activate(e.World, nav, "/about")
	assert.Equal(t, []string{"/about"}, paths)
}
