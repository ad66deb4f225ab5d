package factory

import (
	"github.com/codroidhub/aurora/archetypes"
	"github.com/codroidhub/aurora/assets"
	"github.com/codroidhub/aurora/components"
	"github.com/codroidhub/aurora/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HitCellSize is the resolv grid cell edge used for hover hit-testing.
const HitCellSize = 32

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateInteractive registers a layout element in the hit-test space.
func CreateInteractive(ecs *ecs.ECS, space *resolv.Space, el assets.Element) *donburi.Entry {
	entry := archetypes.Interactive.Spawn(ecs)

	objTags := []string{tags.ResolvInteractive}
	if el.Fixed {
		objTags = append(objTags, tags.ResolvFixed)
	}
	obj := resolv.NewObject(el.X, el.Y, el.Width, el.Height, objTags...)
	obj.Data = entry
	space.Add(obj)

	components.Element.SetValue(entry, components.ElementData{
		Object:   obj,
		Category: el.Category,
		Label:    el.Label,
		Href:     el.Href,
		Fixed:    el.Fixed,
		BaseY:    el.Y,
	})
	return entry
}

// CreateProbe adds the 1x1 pointer probe used by hover checks.
func CreateProbe(ecs *ecs.ECS, space *resolv.Space) *donburi.Entry {
	entry := archetypes.Probe.Spawn(ecs)
	obj := resolv.NewObject(-1, -1, 1, 1, tags.ResolvProbe)
	obj.Data = entry
	space.Add(obj)
	components.Element.SetValue(entry, components.ElementData{Object: obj})
	return entry
}
