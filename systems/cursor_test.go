package systems

import (
	"math"
	"testing"
	"time"

	"github.com/codroidhub/aurora/assets"
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/systems/factory"
	"github.com/codroidhub/aurora/timing"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	mathf "github.com/yohamta/donburi/features/math"
)

const frame = time.Second / 60

func TestCursorStepConverges(t *testing.T) {
	c := &components.CursorData{
		Target:    mathf.Vec2{X: 400, Y: -120},
		Smoothing: 0.25,
	}

	prevX, prevY := c.Target.X-c.Display.X, c.Target.Y-c.Display.Y
	for i := 0; i < 40; i++ {
		c.Step()
		errX, errY := c.Target.X-c.Display.X, c.Target.Y-c.Display.Y

		assert.InDelta(t, prevX*0.75, errX, 1e-9, "tick %d", i)
		assert.InDelta(t, prevY*0.75, errY, 1e-9, "tick %d", i)
		assert.GreaterOrEqual(t, errX, 0.0, "never overshoots on x")
		assert.LessOrEqual(t, errY, 0.0, "never overshoots on y")
		prevX, prevY = errX, errY
	}
	assert.InDelta(t, 400*math.Pow(0.75, 40), c.Target.X-c.Display.X, 1e-9)
	assert.Equal(t, 40, c.Ticks)
}

func TestCursorStepFullSmoothingSnaps(t *testing.T) {
	c := &components.CursorData{Target: mathf.Vec2{X: 5, Y: 6}, Smoothing: 1}
	c.Step()
	assert.Equal(t, c.Target, c.Display)
}

type cursorFixture struct {
	e       *ecs.ECS
	capable bool
	modes   []ebiten.CursorModeType
	entry   *donburi.Entry
	pointer *components.PointerData
	update  ecs.System
	clock   *timing.Clock
}

func newCursorFixture(t *testing.T, capable bool) *cursorFixture {
	t.Helper()
	e := newTestECS(t)
	factory.CreateViewport(e, 1280, 720)

	f := &cursorFixture{e: e, capable: capable, clock: testClock(t, e)}
	prev := setSystemCursor
	setSystemCursor = func(mode ebiten.CursorModeType) { f.modes = append(f.modes, mode) }
	t.Cleanup(func() { setSystemCursor = prev })
	f.entry = factory.CreateCursor(e)
	f.pointer = getPointer(e.World)
	require.NotNil(t, f.pointer)
	f.pointer.InWindow = true

	capability := func(donburi.World) bool { return f.capable }
	StartCursor(e, capability)
	f.update = NewUpdateCursor(capability)
	return f
}

// run performs n game-loop iterations: input systems first, then the clock.
func (f *cursorFixture) run(n int) {
	for i := 0; i < n; i++ {
		f.update(f.e)
		ClearViewportFlags(f.e)
		f.clock.Tick(frame)
	}
}

func (f *cursorFixture) cursor() *components.CursorData {
	return components.Cursor.Get(f.entry)
}

func (f *cursorFixture) hover(x, y float64) bool {
	f.pointer.X, f.pointer.Y, f.pointer.Moved = x, y, true
	f.run(1)
	return f.cursor().Hovering
}

// addHoverSpace registers a button at (100,100), a stat item at (400,800)
// and a fixed nav link at (1000,10) in a page-sized hit-test space.
func addHoverSpace(e *ecs.ECS) {
	spaceEntry := factory.CreateSpace(e, 1280, 2400, factory.HitCellSize, factory.HitCellSize)
	space := components.Space.Get(spaceEntry)
	for _, el := range []assets.Element{
		{Rect: assets.Rect{X: 100, Y: 100, Width: 50, Height: 20}, Category: "button"},
		{Rect: assets.Rect{X: 400, Y: 800, Width: 60, Height: 40}, Category: "stat-item"},
		{Rect: assets.Rect{X: 1000, Y: 10, Width: 80, Height: 30}, Category: "nav-link", Href: "#about", Fixed: true},
	} {
		factory.CreateInteractive(e, space, el)
	}
	factory.CreateProbe(e, space)
}

func TestCursorFollowsPointerEachRefresh(t *testing.T) {
	f := newCursorFixture(t, true)
	require.True(t, f.cursor().Enabled)

	f.pointer.X, f.pointer.Y, f.pointer.Moved = 200, 100, true
	f.run(1)
	c := f.cursor()
	assert.Equal(t, mathf.Vec2{X: 200, Y: 100}, c.Target)
	assert.InDelta(t, 50, c.Display.X, 1e-9)
	assert.InDelta(t, 25, c.Display.Y, 1e-9)

	f.run(9)
	assert.Equal(t, 10, c.Ticks, "exactly one smoothing step per refresh")
	assert.InDelta(t, 200*math.Pow(0.75, 10), 200-c.Display.X, 1e-9)
	assert.Equal(t, 1.0, c.Opacity())
}

func TestCursorDisabledWithoutCapability(t *testing.T) {
	f := newCursorFixture(t, false)
	f.pointer.X, f.pointer.Y, f.pointer.Moved = 200, 100, true
	f.run(10)

	c := f.cursor()
	assert.False(t, c.Enabled)
	assert.Zero(t, c.Ticks)
	assert.Equal(t, mathf.Vec2{}, c.Display)
	assert.Equal(t, 0.0, c.Opacity(), "hidden")
	assert.False(t, c.Frame.Pending())
	assert.Zero(t, f.clock.Frames.Len())
}

func TestCursorCapabilityReevaluatedOnResize(t *testing.T) {
	f := newCursorFixture(t, true)
	f.run(3)
	require.Equal(t, 3, f.cursor().Ticks)

	// A capability change alone does nothing until the next resize.
	f.capable = false
	f.run(3)
	assert.True(t, f.cursor().Enabled)
	assert.Equal(t, 6, f.cursor().Ticks)

	Resize(f.e.World, 800, 600)
	f.run(5)
	c := f.cursor()
	assert.False(t, c.Enabled)
	assert.Equal(t, 6, c.Ticks, "tracking stops with the capability")
	assert.Equal(t, 0.0, c.Opacity())

	f.capable = true
	Resize(f.e.World, 1280, 720)
	f.run(1)
	assert.True(t, f.cursor().Enabled)
	assert.Equal(t, 7, f.cursor().Ticks, "tracking resumes on the next refresh")
	f.run(1)
	assert.Equal(t, 8, f.cursor().Ticks, "a single refresh loop after re-enabling")
}

func TestCursorHidesSystemCursorWhileEnabled(t *testing.T) {
	f := newCursorFixture(t, true)
	assert.Equal(t, []ebiten.CursorModeType{ebiten.CursorModeHidden}, f.modes)

	f.capable = false
	Resize(f.e.World, 800, 600)
	f.run(1)
	assert.Equal(t, ebiten.CursorModeVisible, f.modes[len(f.modes)-1])

	f.capable = true
	Resize(f.e.World, 1280, 720)
	f.run(1)
	assert.Equal(t, ebiten.CursorModeHidden, f.modes[len(f.modes)-1])

	Resize(f.e.World, 1024, 768)
	f.run(1)
	assert.Len(t, f.modes, 3, "unchanged capability leaves the OS cursor alone")
}

func TestCursorKeepsSystemCursorWithoutCapability(t *testing.T) {
	f := newCursorFixture(t, false)
	assert.Equal(t, []ebiten.CursorModeType{ebiten.CursorModeVisible}, f.modes)
}

func TestCursorResizeWithSameCapabilityKeepsOneLoop(t *testing.T) {
	f := newCursorFixture(t, true)
	Resize(f.e.World, 800, 600)
	f.run(4)
	assert.Equal(t, 4, f.cursor().Ticks)
	assert.Equal(t, 1, f.clock.Frames.Len())
}

func TestCursorPressedMarker(t *testing.T) {
	f := newCursorFixture(t, true)

	f.pointer.JustPressed = true
	f.run(1)
	assert.True(t, f.cursor().Pressed)
	f.run(1)
	assert.True(t, f.cursor().Pressed, "held until release")

	f.pointer.JustReleased = true
	f.run(1)
	assert.False(t, f.cursor().Pressed)
}

func TestCursorWindowLeave(t *testing.T) {
	f := newCursorFixture(t, true)
	f.pointer.InWindow = false
	f.run(1)
	assert.Equal(t, 0.0, f.cursor().Opacity())
	f.pointer.InWindow = true
	f.run(1)
	assert.Equal(t, 1.0, f.cursor().Opacity())
}

func TestCursorHoverInteractiveElements(t *testing.T) {
	f := newCursorFixture(t, true)
	addHoverSpace(f.e)
	factory.CreateScroll(f.e, 1680)

	assert.True(t, f.hover(120, 110), "inside the button")
	assert.False(t, f.hover(155, 110), "same grid cell, outside the button")
	assert.False(t, f.hover(5, 5))
	assert.True(t, f.hover(1010, 20), "fixed nav link")

	// Page elements scroll away, fixed ones stay under the viewport.
	OnScroll(f.e.World, 750)
	f.run(1)
	assert.False(t, f.hover(120, 110))
	assert.True(t, f.hover(410, 60), "stat item scrolled into view")
	assert.True(t, f.hover(1010, 20), "fixed nav link followed the viewport")
}

func TestCursorIgnoresHoverOutsideWindow(t *testing.T) {
	f := newCursorFixture(t, true)
	addHoverSpace(f.e)
	f.pointer.InWindow = false
	assert.False(t, f.hover(120, 110))
}

func TestDetectCapability(t *testing.T) {
	saved := cfg.Cursor.Capability
	t.Cleanup(func() { cfg.Cursor.Capability = saved })

	e := newTestECS(t)
	factory.CreateViewport(e, 1280, 720)

	cfg.Cursor.Capability = "auto"
	assert.True(t, DetectCapability(e.World))
	getPointer(e.World).Touched = true
	assert.False(t, DetectCapability(e.World), "a touch marks a coarse pointer")

	cfg.Cursor.Capability = "fine"
	assert.True(t, DetectCapability(e.World))
	cfg.Cursor.Capability = "coarse"
	assert.False(t, DetectCapability(e.World))
}

func TestHoverOnlyCountsCursorCategories(t *testing.T) {
	e := newTestECS(t)
	space := components.Space.Get(factory.CreateSpace(e, 1280, 720, factory.HitCellSize, factory.HitCellSize))
	factory.CreateInteractive(e, space, assets.Element{Rect: assets.Rect{X: 0, Y: 0, Width: 100, Height: 100}, Category: "div"})
	factory.CreateInteractive(e, space, assets.Element{Rect: assets.Rect{X: 200, Y: 0, Width: 100, Height: 100}, Category: "textarea"})
	factory.CreateProbe(e, space)

	_, ok := HoveredElement(e.World, 50, 50)
	assert.False(t, ok)
	el, ok := HoveredElement(e.World, 250, 50)
	require.True(t, ok)
	assert.Equal(t, "textarea", el.Category)
}
