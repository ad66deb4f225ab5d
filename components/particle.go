package components

import (
	"math/rand/v2"
	"time"

	"github.com/codroidhub/aurora/timing"
	"github.com/yohamta/donburi"
)

// ParticleData is one decorative particle. Y is derived each frame from the
// drift progress.
type ParticleData struct {
	X         float64
	Y         float64
	Opacity   float64
	Drift     time.Duration // rise duration
	Lifetime  time.Duration
	CreatedAt time.Duration
}

// EmitterData spawns particles inside Region on a fixed interval.
type EmitterData struct {
	X, Y, Width, Height float64

	Rand   *rand.Rand
	Timers *timing.Arena
	Ticker *timing.Timer

	Spawned   int
	Destroyed int
}

var (
	Particle = donburi.NewComponentType[ParticleData]()
	Emitter  = donburi.NewComponentType[EmitterData]()
)

// Progress is the drift fraction in [0, 1] at scene time now.
func (p *ParticleData) Progress(now time.Duration) float64 {
	if p.Drift <= 0 {
		return 1
	}
	f := float64(now-p.CreatedAt) / float64(p.Drift)
	return max(0, min(1, f))
}

// Drifting reports whether the particle is still rising and visible.
func (p *ParticleData) Drifting(now time.Duration) bool {
	return now-p.CreatedAt < p.Drift
}
