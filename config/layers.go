package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in ascending order.
const (
	LayerBackground ecs.LayerID = iota
	Default
	LayerCursor
	LayerCover
	LayerDebug
)
