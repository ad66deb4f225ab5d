package factory

import (
	"math/rand/v2"

	"github.com/codroidhub/aurora/archetypes"
	"github.com/codroidhub/aurora/assets"
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEmitter builds a particle emitter over the container rect. A zero
// seed draws one at random.
func CreateEmitter(ecs *ecs.ECS, rect assets.Rect, seed uint64) *donburi.Entry {
	if seed == 0 {
		seed = rand.Uint64()
	}
	emitter := archetypes.Emitter.Spawn(ecs)
	components.Emitter.SetValue(emitter, components.EmitterData{
		X:      rect.X,
		Y:      rect.Y,
		Width:  rect.Width,
		Height: rect.Height,
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Timers: newArena(ecs),
	})
	return emitter
}

func CreateCursor(ecs *ecs.ECS) *donburi.Entry {
	cursor := archetypes.Cursor.Spawn(ecs)
	components.Cursor.SetValue(cursor, components.CursorData{
		Smoothing: cfg.Cursor.Smoothing,
		InWindow:  true,
		Timers:    newArena(ecs),
	})
	return cursor
}

func CreateScroll(ecs *ecs.ECS, maxOffset float64) *donburi.Entry {
	scroll := archetypes.Scroll.Spawn(ecs)
	components.Scroll.SetValue(scroll, components.ScrollData{
		Max:       maxOffset,
		Overlay:   cfg.Scroll.OverlayBase,
		Indicator: 1,
		Timers:    newArena(ecs),
	})
	return scroll
}

func CreateAurora(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Aurora.Spawn(ecs)
}

func CreateViewport(ecs *ecs.ECS, width, height int) *donburi.Entry {
	viewport := archetypes.Viewport.Spawn(ecs)
	components.Viewport.SetValue(viewport, components.ViewportData{Width: width, Height: height})
	return viewport
}

// boundsOnly wraps a layout rect as an element that is not part of any space.
func boundsOnly(rect assets.Rect) components.ElementData {
	return components.ElementData{
		Object: resolv.NewObject(rect.X, rect.Y, rect.Width, rect.Height),
		BaseY:  rect.Y,
	}
}
