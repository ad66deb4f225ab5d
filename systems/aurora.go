package systems

import (
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAurora shifts the background toward the pointer and advances the
// shader time.
func UpdateAurora(e *ecs.ECS) {
	entry, ok := components.Aurora.First(e.World)
	if !ok {
		return
	}
	aurora := components.Aurora.Get(entry)
	aurora.Time += cfg.FrameDuration().Seconds()

	pointer := getPointer(e.World)
	if pointer == nil || !pointer.Moved {
		return
	}
	aurora.Offset.X = AuroraOffset(pointer.X, float64(cfg.C.Width))
	aurora.Offset.Y = AuroraOffset(pointer.Y, float64(cfg.C.Height))
}

// AuroraOffset maps a pointer coordinate on an axis of the given size to a
// parallax shift in [-strength/2, strength/2].
func AuroraOffset(pos, size float64) float64 {
	if size <= 0 {
		return 0
	}
	return (pos/size - 0.5) * cfg.Page.AuroraStrength
}
