package systems

import (
	"slices"

	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/tags"
	"github.com/yohamta/donburi"
)

// HoveredElement returns the interactive element under the screen point, if
// any. Only the configured cursor categories count. The probe is moved into
// page space and checked against the resolv grid; the grid only narrows
// candidates, containment is tested exactly.
func HoveredElement(w donburi.World, x, y float64) (*components.ElementData, bool) {
	probeEntry, ok := tags.Probe.First(w)
	if !ok {
		return nil, false
	}
	probe := components.Element.Get(probeEntry)

	px, py := x, y+scrollOffset(w)
	probe.X, probe.Y = px, py
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvInteractive)
	if check == nil {
		return nil, false
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvInteractive) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		el := components.Element.Get(entry)
		if !slices.Contains(cfg.Cursor.Categories, el.Category) {
			continue
		}
		if el.Contains(px, py) {
			return el, true
		}
	}
	return nil, false
}

// syncFixedElements keeps viewport-anchored elements under the viewport as
// the page scrolls.
func syncFixedElements(w donburi.World, offset float64) {
	tags.Interactive.Each(w, func(entry *donburi.Entry) {
		el := components.Element.Get(entry)
		if !el.Fixed {
			return
		}
		el.Y = el.BaseY + offset
		el.Update()
	})
}
