package systems

import (
	"github.com/codroidhub/aurora/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Resize records a new outer window size. The flag stays up for one Update so
// every system sees it.
func Resize(w donburi.World, width, height int) {
	vp := getViewport(w)
	if vp == nil {
		return
	}
	if vp.Width == width && vp.Height == height {
		return
	}
	vp.Width, vp.Height = width, height
	vp.Resized = true
}

// ClearViewportFlags runs last and lowers the per-frame flags.
func ClearViewportFlags(e *ecs.ECS) {
	if vp := getViewport(e.World); vp != nil {
		vp.Resized = false
	}
	if pointer := getPointer(e.World); pointer != nil {
		pointer.Moved = false
		pointer.JustPressed = false
		pointer.JustReleased = false
	}
}

func getViewport(w donburi.World) *components.ViewportData {
	entry, ok := components.Viewport.First(w)
	if !ok {
		return nil
	}
	return components.Viewport.Get(entry)
}
