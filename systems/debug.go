package systems

import (
	"fmt"
	"image/color"

	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.ShowState = !cfg.Debug.ShowState
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowState {
		return
	}
	offset := scrollOffset(ecs.World)

	// Draw hit-test objects
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x := obj.X
			y := obj.Y - offset

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvFixed) {
				c = color.RGBA{255, 200, 0, 255} // Amber
			} else if obj.HasTags(tags.ResolvProbe) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			}

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	ebitenutil.DebugPrintAt(screen, debugText(ecs), 8, cfg.C.Height-96)
}

func debugText(ecs *ecs.ECS) string {
	s := fmt.Sprintf("TPS %.0f  FPS %.0f\n", ebiten.ActualTPS(), ebiten.ActualFPS())
	if clock := sceneClock(ecs.World); clock != nil {
		s += fmt.Sprintf("t=%v timers=%d frames=%d\n", clock.Now(), clock.Timers.Pending(), clock.Frames.Len())
	}
	if entry, ok := tags.Counter.First(ecs.World); ok {
		c := components.Counter.Get(entry)
		s += fmt.Sprintf("loader %s %d/%d pulses=%d\n", c.State, c.Current, c.Target, c.PulseCount)
	}
	if entry, ok := tags.Emitter.First(ecs.World); ok {
		em := components.Emitter.Get(entry)
		s += fmt.Sprintf("particles live=%d spawned=%d\n", em.Spawned-em.Destroyed, em.Spawned)
	}
	if entry, ok := tags.Cursor.First(ecs.World); ok {
		c := components.Cursor.Get(entry)
		s += fmt.Sprintf("cursor on=%t hover=%t pressed=%t\n", c.Enabled, c.Hovering, c.Pressed)
	}
	if entry, ok := components.Scroll.First(ecs.World); ok {
		sc := components.Scroll.Get(entry)
		s += fmt.Sprintf("scroll %.0f overlay=%.2f updates=%d\n", sc.Offset, sc.Overlay, sc.Updates)
	}
	return s
}
