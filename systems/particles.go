package systems

import (
	"log"
	"time"

	"github.com/codroidhub/aurora/archetypes"
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartEmitter begins spawning particles on the configured interval. It runs
// until the emitter's arena is released with the scene.
func StartEmitter(e *ecs.ECS) {
	entry, ok := tags.Emitter.First(e.World)
	if !ok {
		log.Println("[particles] no particle container, emitter disabled")
		return
	}
	em := components.Emitter.Get(entry)
	if em.Ticker.Active() {
		return
	}
	em.Ticker = em.Timers.Every(cfg.Particles.Interval, func() {
		SpawnParticle(e, entry)
	})
}

// SpawnParticle creates one particle with randomized position, drift and
// opacity, and schedules its removal exactly one lifetime later.
func SpawnParticle(e *ecs.ECS, emitterEntry *donburi.Entry) *donburi.Entry {
	em := components.Emitter.Get(emitterEntry)
	now := em.Timers.Now()

	driftSpan := int64(cfg.Particles.DriftMax - cfg.Particles.DriftMin)
	drift := cfg.Particles.DriftMin
	if driftSpan > 0 {
		drift += time.Duration(em.Rand.Int64N(driftSpan))
	}

	particle := archetypes.Particle.Spawn(e)
	components.Particle.SetValue(particle, components.ParticleData{
		X:         em.X + em.Rand.Float64()*em.Width,
		Y:         em.Y + em.Height,
		Opacity:   cfg.Particles.OpacityMin + em.Rand.Float64()*cfg.Particles.OpacitySpan,
		Drift:     drift,
		Lifetime:  cfg.Particles.Lifetime,
		CreatedAt: now,
	})
	em.Spawned++

	em.Timers.After(cfg.Particles.Lifetime, func() {
		if !particle.Valid() {
			return
		}
		e.World.Remove(particle.Entity())
		components.Emitter.Get(emitterEntry).Destroyed++
	})
	return particle
}

// UpdateParticles moves particles from the container bottom to its top over
// their drift duration.
func UpdateParticles(e *ecs.ECS) {
	entry, ok := tags.Emitter.First(e.World)
	if !ok {
		return
	}
	em := components.Emitter.Get(entry)
	now := em.Timers.Now()

	components.Particle.Each(e.World, func(pe *donburi.Entry) {
		p := components.Particle.Get(pe)
		p.Y = em.Y + em.Height*(1-p.Progress(now))
	})
}
