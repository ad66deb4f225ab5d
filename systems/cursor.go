package systems

import (
	"log"
	"time"

	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// setSystemCursor switches the OS cursor; replaced in tests.
var setSystemCursor = ebiten.SetCursorMode

// showSystemCursor hides the OS arrow while the smoothed cursor draws in its place.
func showSystemCursor(show bool) {
	if show {
		setSystemCursor(ebiten.CursorModeVisible)
	} else {
		setSystemCursor(ebiten.CursorModeHidden)
	}
}

// CapabilityFunc reports whether the pointer is precise and can hover.
type CapabilityFunc func(w donburi.World) bool

// DetectCapability honours the configured override and otherwise treats the
// pointer as fine until a touch has been seen.
func DetectCapability(w donburi.World) bool {
	switch cfg.Cursor.Capability {
	case "fine":
		return true
	case "coarse":
		return false
	}
	if pointer := getPointer(w); pointer != nil {
		return !pointer.Touched
	}
	return true
}

// StartCursor evaluates the capability once and starts tracking when present.
// Without it the tracker stays constructed but inert and hidden.
func StartCursor(e *ecs.ECS, capable CapabilityFunc) {
	entry, ok := tags.Cursor.First(e.World)
	if !ok {
		return
	}
	enabled := capable(e.World)
	setCursorEnabled(entry, enabled)
	if !enabled {
		showSystemCursor(true)
		log.Println("[cursor] no fine pointer, custom cursor hidden")
	}
}

// NewUpdateCursor creates the per-tick cursor input system. The capability is
// re-evaluated only when the viewport was resized.
func NewUpdateCursor(capable CapabilityFunc) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := tags.Cursor.First(e.World)
		if !ok {
			return
		}
		if vp := getViewport(e.World); vp != nil && vp.Resized {
			setCursorEnabled(entry, capable(e.World))
		}

		c := components.Cursor.Get(entry)
		if !c.Enabled {
			return
		}
		pointer := getPointer(e.World)
		if pointer == nil {
			return
		}

		if pointer.Moved {
			c.Target.X = pointer.X
			c.Target.Y = pointer.Y
		}
		c.InWindow = pointer.InWindow

		if pointer.JustPressed {
			c.Pressed = true
		}
		if pointer.JustReleased {
			c.Pressed = false
		}

		c.Hovering = false
		if c.InWindow {
			_, c.Hovering = HoveredElement(e.World, pointer.X, pointer.Y)
		}
	}
}

// setCursorEnabled applies a capability result. Enabling starts the refresh
// loop; disabling cancels it and clears the markers.
func setCursorEnabled(entry *donburi.Entry, enabled bool) {
	c := components.Cursor.Get(entry)
	if c.Enabled == enabled && (!enabled || c.Frame.Pending()) {
		return
	}
	if c.Enabled != enabled {
		showSystemCursor(!enabled)
	}
	c.Enabled = enabled
	if !enabled {
		c.Timers.Cancel()
		c.Frame = nil
		c.Hovering = false
		c.Pressed = false
		return
	}
	requestCursorFrame(entry)
}

// requestCursorFrame smooths the display position once per refresh and
// re-requests itself while the tracker is enabled.
func requestCursorFrame(entry *donburi.Entry) {
	c := components.Cursor.Get(entry)
	c.Frame = c.Timers.Frame(func(time.Duration) {
		if !entry.Valid() {
			return
		}
		c := components.Cursor.Get(entry)
		if !c.Enabled {
			return
		}
		c.Step()
		requestCursorFrame(entry)
	})
}
