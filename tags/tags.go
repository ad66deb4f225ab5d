package tags

import "github.com/yohamta/donburi"

var (
	Counter     = donburi.NewTag().SetName("Counter")
	Indicator   = donburi.NewTag().SetName("Indicator")
	Particle    = donburi.NewTag().SetName("Particle")
	Emitter     = donburi.NewTag().SetName("Emitter")
	Cursor      = donburi.NewTag().SetName("Cursor")
	Interactive = donburi.NewTag().SetName("Interactive")
	Probe       = donburi.NewTag().SetName("Probe")
)

// Resolv tags for hit-testing
const (
	ResolvInteractive = "interactive"
	ResolvFixed       = "fixed"
	ResolvProbe       = "probe"
)
