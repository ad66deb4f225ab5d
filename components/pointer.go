package components

import "github.com/yohamta/donburi"

// PointerData is the input sample for the current tick.
type PointerData struct {
	X, Y     float64
	Moved    bool
	InWindow bool

	Pressed      bool
	JustPressed  bool
	JustReleased bool

	// Touched is set once any touch has been seen, which marks a coarse pointer.
	Touched bool
}

var Pointer = donburi.NewComponentType[PointerData]()
