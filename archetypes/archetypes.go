package archetypes

import (
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Clock = newArchetype(
		components.Clock,
	)
	Viewport = newArchetype(
		components.Viewport,
		components.Pointer,
	)
	Layout = newArchetype(
		components.Layout,
	)
	Space = newArchetype(
		components.Space,
	)
	Counter = newArchetype(
		tags.Counter,
		components.Counter,
		components.Transition,
	)
	Indicator = newArchetype(
		tags.Indicator,
		components.Indicator,
	)
	Emitter = newArchetype(
		tags.Emitter,
		components.Emitter,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Cursor = newArchetype(
		tags.Cursor,
		components.Cursor,
	)
	Interactive = newArchetype(
		tags.Interactive,
		components.Element,
	)
	Probe = newArchetype(
		tags.Probe,
		components.Element,
	)
	Scroll = newArchetype(
		components.Scroll,
	)
	Aurora = newArchetype(
		components.Aurora,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
