package components

import (
	"time"

	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/timing"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CounterData is the loading progress state machine.
type CounterData struct {
	Current   int // displayed value, never above Target
	Target    int
	Increment int
	BaseDelay time.Duration
	State     cfg.LoaderStateID

	Steps      int // increments applied since start
	Milestones []int

	// Milestone pulse overlay. Active only while Pulse is non-nil.
	Scale      float64
	Pulse      *PulseData
	PulseCount int

	Timers *timing.Arena
}

// PulseData is a transient scale-up then revert, keyed on scene time.
type PulseData struct {
	Milestone int
	StartedAt time.Duration
	Up        *gween.Tween
	Down      *gween.Tween
	Revert    *timing.Timer
}

var Counter = donburi.NewComponentType[CounterData]()
