package systems

import (
	"log"
	"slices"
	"time"

	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Navigator performs the page change at the end of the loading sequence.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// StepDelay returns the pause that follows the counter reaching count.
func StepDelay(count, target int, base time.Duration) time.Duration {
	return time.Duration(float64(base) * cfg.BandFor(count, target).Multiplier())
}

// StartLoader schedules the loading sequence. Without a counter element the
// sequence is a no-op; a second call while a sequence exists is ignored.
func StartLoader(e *ecs.ECS, nav Navigator) {
	entry, ok := tags.Counter.First(e.World)
	if !ok {
		log.Println("[loader] no counter element, loading sequence disabled")
		return
	}
	counter := components.Counter.Get(entry)
	if counter.State != cfg.LoaderIdle || counter.Timers.Live() > 0 {
		return
	}

	run := &loaderRun{world: e.World, entry: entry, nav: nav}
	counter.Timers.After(cfg.Loader.StartDelay, run.begin)
}

// loaderRun is the scheduled continuation chain of one loading sequence.
type loaderRun struct {
	world donburi.World
	entry *donburi.Entry
	nav   Navigator
}

func (r *loaderRun) counter() *components.CounterData {
	return components.Counter.Get(r.entry)
}

func (r *loaderRun) begin() {
	r.counter().State = cfg.LoaderCounting
	r.show()
}

// show handles the value now on display and schedules the next step.
func (r *loaderRun) show() {
	c := r.counter()
	if slices.Contains(c.Milestones, c.Current) {
		r.pulse(c.Current)
	}
	if c.Current >= c.Target {
		r.complete()
		return
	}

	next := min(c.Current+c.Increment, c.Target)
	c.Timers.After(StepDelay(next, c.Target, c.BaseDelay), func() {
		c := r.counter()
		c.Current = next
		c.Steps++
		r.show()
	})
}

// pulse starts the milestone overlay. A pulse arriving while another is
// running replaces it, so at most one revert is ever pending.
func (r *loaderRun) pulse(milestone int) {
	c := r.counter()
	if c.Pulse != nil {
		c.Pulse.Revert.Stop()
	}

	half := float32(cfg.Loader.PulseDuration.Seconds() / 2)
	peak := float32(cfg.Loader.PulseScale)
	p := &components.PulseData{
		Milestone: milestone,
		StartedAt: c.Timers.Now(),
		Up:        gween.New(1, peak, half, ease.OutQuad),
		Down:      gween.New(peak, 1, half, ease.InQuad),
	}
	p.Revert = c.Timers.After(cfg.Loader.PulseDuration, func() {
		c := r.counter()
		if c.Pulse == p {
			c.Pulse = nil
			c.Scale = 1
		}
	})
	c.Pulse = p
	c.PulseCount++
}

func (r *loaderRun) complete() {
	c := r.counter()
	c.State = cfg.LoaderComplete
	log.Printf("[loader] complete at %v", c.Timers.Now())

	StopBlink(r.world)
	c.Timers.After(cfg.Loader.CompleteHold, r.transition)
}

func (r *loaderRun) transition() {
	c := r.counter()
	c.State = cfg.LoaderTransitioning

	tr := components.Transition.Get(r.entry)
	tr.Active = true
	tr.StartedAt = c.Timers.Now()
	tr.ViewOpacity = 1
	tr.Fade = gween.New(1, 0, float32(cfg.Transition.FadeDuration.Seconds()), ease.InOutQuad)

	c.Timers.After(cfg.Transition.CoverDelay, func() {
		tr := components.Transition.Get(r.entry)
		tr.CoverStarted = true
		tr.CoverAt = r.counter().Timers.Now()
		tr.Cover = gween.New(0, 1, float32(cfg.Transition.CoverDuration.Seconds()), ease.InOutQuad)
	})
	c.Timers.After(cfg.Transition.NavigateDelay, r.navigate)
}

func (r *loaderRun) navigate() {
	c := r.counter()
	if c.State == cfg.LoaderNavigated {
		return
	}
	c.State = cfg.LoaderNavigated

	tr := components.Transition.Get(r.entry)
	tr.CoverOpacity = 1
	tr.Navigations++
	tr.Destination = cfg.Transition.Destination

	// Nothing of the sequence outlives navigation.
	c.Timers.Release()

	log.Printf("[loader] navigating to %s", tr.Destination)
	if r.nav != nil {
		r.nav.Navigate(tr.Destination)
	}
}

// UpdateCounter samples the pulse and transition tweens at the current scene time.
func UpdateCounter(e *ecs.ECS) {
	entry, ok := tags.Counter.First(e.World)
	if !ok {
		return
	}
	c := components.Counter.Get(entry)
	now := c.Timers.Now()

	if p := c.Pulse; p != nil {
		elapsed := float32((now - p.StartedAt).Seconds())
		half := float32(cfg.Loader.PulseDuration.Seconds() / 2)
		var scale float32
		if elapsed < half {
			scale, _ = p.Up.Set(elapsed)
		} else {
			scale, _ = p.Down.Set(elapsed - half)
		}
		c.Scale = float64(scale)
	}

	tr := components.Transition.Get(entry)
	if tr.Active && tr.Fade != nil {
		v, _ := tr.Fade.Set(float32((now - tr.StartedAt).Seconds()))
		tr.ViewOpacity = float64(v)
	}
	if tr.CoverStarted && tr.Cover != nil && c.State != cfg.LoaderNavigated {
		v, _ := tr.Cover.Set(float32((now - tr.CoverAt).Seconds()))
		tr.CoverOpacity = float64(v)
	}
}
