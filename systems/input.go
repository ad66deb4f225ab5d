package systems

import (
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw keyboard, gamepad and wheel input into the InputComponent.
// Must run BEFORE the systems that read actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	_, wheelY := ebiten.Wheel()
	input.WheelY = -wheelY
}

// UpdatePointer samples mouse and touch state into the Pointer component.
func UpdatePointer(ecs *ecs.ECS) {
	pointer := getPointer(ecs.World)
	if pointer == nil {
		return
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])

	var x, y int
	pressed := false
	if len(touchIDs) > 0 {
		pointer.Touched = true
		x, y = ebiten.TouchPosition(touchIDs[0])
		pressed = true
	} else {
		x, y = ebiten.CursorPosition()
		pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}

	fx, fy := float64(x), float64(y)
	pointer.Moved = fx != pointer.X || fy != pointer.Y
	pointer.X, pointer.Y = fx, fy
	pointer.InWindow = ebiten.IsFocused() &&
		x >= 0 && y >= 0 && x < cfg.C.Width && y < cfg.C.Height

	pointer.JustPressed = pressed && !pointer.Pressed
	pointer.JustReleased = !pressed && pointer.Pressed
	pointer.Pressed = pressed
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func getPointer(w donburi.World) *components.PointerData {
	entry, ok := components.Pointer.First(w)
	if !ok {
		return nil
	}
	return components.Pointer.Get(entry)
}

// InputOf returns the input sampled on the last Update, or nil before the first one.
func InputOf(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}
