package systems

import (
	"testing"
	"time"

	"github.com/codroidhub/aurora/assets"
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/systems/factory"
	"github.com/codroidhub/aurora/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const base = 45 * time.Millisecond

func TestStepDelayBands(t *testing.T) {
	slow := 67500 * time.Microsecond
	fast := 18 * time.Millisecond

	for count := 0; count <= 100; count++ {
		got := StepDelay(count, 100, base)
		switch {
		case count < 10 || count > 90:
			assert.Equal(t, slow, got, "count %d is an edge value", count)
		case count > 30 && count < 70:
			assert.Equal(t, fast, got, "count %d is a middle value", count)
		default:
			assert.Equal(t, base, got, "count %d is a normal value", count)
		}
	}
}

func TestStepDelayScalesWithTarget(t *testing.T) {
	assert.Equal(t, base, StepDelay(100, 1000, base), "10% of 1000")
	assert.Equal(t, 18*time.Millisecond, StepDelay(500, 1000, base))
	assert.Equal(t, 67500*time.Microsecond, StepDelay(999, 1000, base))
}

type loaderFixture struct {
	ecs       *ecs.ECS
	counter   *donburi.Entry
	indicator *donburi.Entry
	navs      []string
	navAt     []time.Duration
	navCount  []int
}

func newLoaderFixture(t *testing.T) *loaderFixture {
	t.Helper()
	e := newTestECS(t)
	f := &loaderFixture{
		ecs:       e,
		counter:   factory.CreateCounter(e, assets.Rect{X: 500, Y: 300, Width: 200, Height: 100}),
		indicator: factory.CreateIndicator(e, assets.Rect{X: 720, Y: 340, Width: 20, Height: 20}),
	}
	return f
}

func (f *loaderFixture) Navigate(path string) {
	f.navs = append(f.navs, path)
	f.navAt = append(f.navAt, sceneClock(f.ecs.World).Now())
	f.navCount = append(f.navCount, components.Counter.Get(f.counter).Current)
}

func totalStepTime() time.Duration {
	var total time.Duration
	for k := 1; k <= cfg.Loader.Target; k++ {
		total += StepDelay(k, cfg.Loader.Target, cfg.Loader.BaseDelay)
	}
	return total
}

func TestLoaderReachesTargetAndNavigatesOnce(t *testing.T) {
	f := newLoaderFixture(t)
	clock := testClock(t, f.ecs)
	StartLoader(f.ecs, f)

	prev := 0
	for i := 0; i < 9000; i++ {
		clock.Tick(time.Millisecond)
		c := components.Counter.Get(f.counter)
		require.GreaterOrEqual(t, c.Current, prev, "counter never goes backwards")
		require.LessOrEqual(t, c.Current, c.Target, "counter never exceeds target")
		if len(f.navs) == 0 {
			assert.NotEqual(t, cfg.LoaderNavigated, c.State)
		}
		prev = c.Current
	}

	c := components.Counter.Get(f.counter)
	assert.Equal(t, 100, c.Current)
	assert.Equal(t, 100, c.Steps)
	assert.Equal(t, cfg.LoaderNavigated, c.State)

	require.Equal(t, []string{"/home"}, f.navs, "navigation happens exactly once")
	assert.Equal(t, []int{100}, f.navCount, "navigation only after completion")

	assert.Equal(t, 3874500*time.Microsecond, totalStepTime())
	wantNav := cfg.Loader.StartDelay + totalStepTime() + cfg.Loader.CompleteHold + cfg.Transition.NavigateDelay
	assert.Equal(t, wantNav, f.navAt[0])

	tr := components.Transition.Get(f.counter)
	assert.Equal(t, 1, tr.Navigations)
	assert.Equal(t, 1.0, tr.CoverOpacity)
	assert.Zero(t, c.Timers.Live(), "nothing left scheduled after navigation")
}

func TestLoaderStateMachine(t *testing.T) {
	f := newLoaderFixture(t)
	clock := testClock(t, f.ecs)
	StartLoader(f.ecs, f)
	c := func() *components.CounterData { return components.Counter.Get(f.counter) }

	assert.Equal(t, cfg.LoaderIdle, c().State)
	clock.Timers.Advance(cfg.Loader.StartDelay - time.Nanosecond)
	assert.Equal(t, cfg.LoaderIdle, c().State)
	clock.Timers.Advance(time.Nanosecond)
	assert.Equal(t, cfg.LoaderCounting, c().State)
	assert.Equal(t, 0, c().Current)

	clock.Timers.Advance(totalStepTime())
	assert.Equal(t, cfg.LoaderComplete, c().State)
	assert.Equal(t, 100, c().Current)

	ind := components.Indicator.Get(f.indicator)
	assert.True(t, ind.Stopped, "blinking stops on completion")
	assert.True(t, ind.Visible)

	clock.Timers.Advance(cfg.Loader.CompleteHold)
	assert.Equal(t, cfg.LoaderTransitioning, c().State)
	tr := components.Transition.Get(f.counter)
	assert.True(t, tr.Active)
	assert.False(t, tr.CoverStarted)

	clock.Timers.Advance(cfg.Transition.CoverDelay)
	assert.True(t, tr.CoverStarted)
	clock.Timers.Advance(cfg.Transition.CoverDuration)
	UpdateCounter(f.ecs)
	assert.InDelta(t, 1.0, tr.CoverOpacity, 1e-6, "cover fully raised")
	assert.InDelta(t, 0.0, tr.ViewOpacity, 1e-6, "loading view faded out")
	assert.Empty(t, f.navs)

	clock.Timers.Advance(cfg.Transition.NavigateDelay - cfg.Transition.CoverDelay - cfg.Transition.CoverDuration)
	assert.Equal(t, cfg.LoaderNavigated, c().State)
	assert.Len(t, f.navs, 1)

	clock.Timers.Advance(10 * time.Second)
	assert.Len(t, f.navs, 1)
}

func TestMilestonePulses(t *testing.T) {
	f := newLoaderFixture(t)
	clock := testClock(t, f.ecs)
	StartLoader(f.ecs, f)

	type pulse struct {
		milestone  int
		start, end time.Duration
		peak       float64
	}
	var pulses []pulse
	var active *pulse

	for i := 0; i < 6000; i++ {
		clock.Tick(time.Millisecond)
		UpdateCounter(f.ecs)
		c := components.Counter.Get(f.counter)

		switch {
		case c.Pulse != nil && active == nil:
			pulses = append(pulses, pulse{
				milestone: c.Pulse.Milestone,
				start:     c.Pulse.StartedAt,
				end:       c.Pulse.Revert.Deadline(),
			})
			active = &pulses[len(pulses)-1]
		case c.Pulse == nil && active != nil:
			assert.GreaterOrEqual(t, clock.Now(), active.end, "pulse ends at its revert deadline")
			assert.Less(t, clock.Now()-active.end, time.Millisecond)
			assert.Equal(t, 1.0, c.Scale, "scale reverts with the pulse")
			active = nil
		}
		if active != nil {
			active.peak = max(active.peak, c.Scale)
		}
	}

	require.Len(t, pulses, 3)
	for i, want := range []int{25, 50, 75} {
		p := pulses[i]
		assert.Equal(t, want, p.milestone)
		assert.LessOrEqual(t, p.end-p.start, cfg.Loader.PulseDuration, "pulse %d reverts within its duration", want)
		assert.Greater(t, p.peak, 1.0)
		assert.LessOrEqual(t, p.peak, cfg.Loader.PulseScale+1e-6)
	}
	assert.Equal(t, 3, components.Counter.Get(f.counter).PulseCount)
}

func TestOverlappingPulsesCoalesce(t *testing.T) {
	f := newLoaderFixture(t)
	clock := testClock(t, f.ecs)
	c := components.Counter.Get(f.counter)
	c.Milestones = []int{1, 2}
	c.BaseDelay = 10 * time.Millisecond
	StartLoader(f.ecs, f)

	// Milestones one step apart start their pulses 15ms apart.
	clock.Timers.Advance(cfg.Loader.StartDelay + 31*time.Millisecond)
	c = components.Counter.Get(f.counter)
	require.NotNil(t, c.Pulse)
	assert.Equal(t, 2, c.Pulse.Milestone)
	assert.Equal(t, 2, c.PulseCount)

	started := c.Pulse.StartedAt
	clock.Timers.Advance(started + cfg.Loader.PulseDuration - clock.Now() - time.Nanosecond)
	assert.NotNil(t, components.Counter.Get(f.counter).Pulse, "first revert does not cut the second pulse short")
	clock.Timers.Advance(time.Nanosecond)
	assert.Nil(t, components.Counter.Get(f.counter).Pulse)
}

func TestStartLoaderTwiceRunsOneSequence(t *testing.T) {
	f := newLoaderFixture(t)
	clock := testClock(t, f.ecs)
	StartLoader(f.ecs, f)
	StartLoader(f.ecs, f)
	clock.Timers.Advance(cfg.Loader.StartDelay + time.Millisecond)
	StartLoader(f.ecs, f)

	clock.Timers.Advance(20 * time.Second)
	assert.Equal(t, 100, components.Counter.Get(f.counter).Steps)
	assert.Len(t, f.navs, 1)
}

func TestLoaderReleaseStopsSequence(t *testing.T) {
	f := newLoaderFixture(t)
	clock := testClock(t, f.ecs)
	StartLoader(f.ecs, f)

	clock.Timers.Advance(2 * time.Second)
	current := components.Counter.Get(f.counter).Current
	require.Greater(t, current, 0)

	factory.ReleaseArenas(f.ecs.World)
	clock.Timers.Advance(20 * time.Second)

	assert.Equal(t, current, components.Counter.Get(f.counter).Current)
	assert.Empty(t, f.navs)
	assert.Zero(t, clock.Timers.Pending())
}

func TestLoaderWithoutCounterIsNoop(t *testing.T) {
	e := newTestECS(t)
	clock := testClock(t, e)
	navigated := false

	assert.NotPanics(t, func() {
		StartLoader(e, NavigatorFunc(func(string) { navigated = true }))
		UpdateCounter(e)
		StopBlink(e.World)
	})
	clock.Timers.Advance(time.Minute)
	assert.False(t, navigated)
	assert.Zero(t, clock.Timers.Pending())
}

func TestLoaderWithoutIndicator(t *testing.T) {
	e := newTestECS(t)
	clock := testClock(t, e)
	counter := factory.CreateCounter(e, assets.Rect{Width: 10, Height: 10})
	var navs []string
	StartLoader(e, NavigatorFunc(func(p string) { navs = append(navs, p) }))

	clock.Timers.Advance(time.Minute)
	assert.Equal(t, 100, components.Counter.Get(counter).Current)
	assert.Equal(t, []string{"/home"}, navs)
	_, ok := tags.Indicator.First(e.World)
	assert.False(t, ok)
}

func TestBlinkToggles(t *testing.T) {
	e := newTestECS(t)
	clock := testClock(t, e)
	entry := factory.CreateIndicator(e, assets.Rect{Width: 20, Height: 20})
	StartBlink(e)
	StartBlink(e)

	ind := components.Indicator.Get(entry)
	assert.True(t, ind.Visible)
	clock.Timers.Advance(cfg.Loader.BlinkInterval)
	assert.False(t, ind.Visible)
	clock.Timers.Advance(cfg.Loader.BlinkInterval)
	assert.True(t, ind.Visible, "a second StartBlink does not add a second toggle")
	clock.Timers.Advance(cfg.Loader.BlinkInterval)
	assert.False(t, ind.Visible)

	StopBlink(e.World)
	assert.True(t, ind.Visible)
	clock.Timers.Advance(5 * cfg.Loader.BlinkInterval)
	assert.True(t, ind.Visible)
	assert.False(t, ind.Blink.Active())
}
