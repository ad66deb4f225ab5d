package components

import (
	"github.com/codroidhub/aurora/timing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CursorData is the smoothed custom cursor.
type CursorData struct {
	Target    math.Vec2
	Display   math.Vec2
	Smoothing float64

	Enabled  bool // pointer capability present
	InWindow bool
	Hovering bool
	Pressed  bool
	Ticks    int

	Frame  *timing.FrameRequest
	Timers *timing.Arena
}

// Step moves Display toward Target by the smoothing factor.
func (c *CursorData) Step() {
	c.Display.X += (c.Target.X - c.Display.X) * c.Smoothing
	c.Display.Y += (c.Target.Y - c.Display.Y) * c.Smoothing
	c.Ticks++
}

// Opacity is 1 while the pointer is inside an enabled window.
func (c *CursorData) Opacity() float64 {
	if c.Enabled && c.InWindow {
		return 1
	}
	return 0
}

var Cursor = donburi.NewComponentType[CursorData]()
