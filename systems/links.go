package systems

import (
	"strings"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Activate follows a link: "#name" scrolls to a section on the current page,
// anything else is handed to the navigator as a route.
func Activate(w donburi.World, nav Navigator, href string) {
	switch {
	case href == "":
		return
	case strings.HasPrefix(href, "#"):
		ScrollToAnchor(w, href)
	default:
		nav.Navigate(href)
	}
}

// NewUpdateLinks activates page elements on click. Fixed elements belong to
// the navbar, which handles its own clicks.
func NewUpdateLinks(nav Navigator) ecs.System {
	return func(e *ecs.ECS) {
		pointer := getPointer(e.World)
		if pointer == nil || !pointer.JustReleased || !pointer.InWindow {
			return
		}
		el, ok := HoveredElement(e.World, pointer.X, pointer.Y)
		if !ok || el.Fixed {
			return
		}
		Activate(e.World, nav, el.Href)
	}
}
