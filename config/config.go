package config

import (
	"image/color"
	"time"
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // Update ticks per second; one tick advances the clock by one frame
}

// LoaderConfig contains the loading counter configuration
type LoaderConfig struct {
	Target    int           `yaml:"target"`
	Increment int           `yaml:"increment"`
	BaseDelay time.Duration `yaml:"base_delay"`

	// Band multipliers applied to BaseDelay
	EdgeMultiplier   float64 `yaml:"edge_multiplier"`   // below 10% and above 90%
	MiddleMultiplier float64 `yaml:"middle_multiplier"` // strictly between 30% and 70%

	// Milestone pulse
	Milestones    []int         `yaml:"milestones"`
	PulseScale    float64       `yaml:"pulse_scale"`
	PulseDuration time.Duration `yaml:"pulse_duration"` // scale returns to 1.0 within this window

	StartDelay    time.Duration `yaml:"start_delay"`
	CompleteHold  time.Duration `yaml:"complete_hold"`
	BlinkInterval time.Duration `yaml:"blink_interval"`

	// Visual
	FontSize  float64    `yaml:"font_size"`
	TextColor color.RGBA `yaml:"-"`
}

// TransitionConfig contains the completion transition configuration
type TransitionConfig struct {
	FadeDuration  time.Duration `yaml:"fade_duration"`  // loading view fade-out
	CoverDelay    time.Duration `yaml:"cover_delay"`    // from transition start
	CoverDuration time.Duration `yaml:"cover_duration"` // cover opacity 0 -> 1
	NavigateDelay time.Duration `yaml:"navigate_delay"` // from transition start
	Destination   string        `yaml:"destination"`
	CoverColor    color.RGBA    `yaml:"-"`
}

// ParticleConfig contains ambient particle emitter configuration
type ParticleConfig struct {
	Interval    time.Duration `yaml:"interval"`
	Lifetime    time.Duration `yaml:"lifetime"`
	DriftMin    time.Duration `yaml:"drift_min"`
	DriftMax    time.Duration `yaml:"drift_max"` // exclusive
	OpacityMin  float64       `yaml:"opacity_min"`
	OpacitySpan float64       `yaml:"opacity_span"` // opacity is drawn from [OpacityMin, OpacityMin+OpacitySpan)
	Radius      float32       `yaml:"radius"`
	Seed        uint64        `yaml:"seed"` // 0 picks a random seed
	Color       color.RGBA    `yaml:"-"`
}

// CursorConfig contains the custom cursor configuration
type CursorConfig struct {
	Smoothing float64 `yaml:"smoothing"`

	// Capability forces the pointer capability: "auto", "fine" or "coarse".
	// "auto" treats the pointer as fine unless touches were seen.
	Capability string `yaml:"capability"`

	// Interactive element categories that set the hover marker
	Categories []string `yaml:"categories"`

	Radius       float32    `yaml:"radius"`
	HoverScale   float64    `yaml:"hover_scale"`
	PressedScale float64    `yaml:"pressed_scale"`
	Color        color.RGBA `yaml:"-"`
}

// ScrollConfig contains scroll-linked effect configuration
type ScrollConfig struct {
	OverlayBase       float64 `yaml:"overlay_base"`
	OverlayFloor      float64 `yaml:"overlay_floor"`
	OverlayRate       float64 `yaml:"overlay_rate"` // opacity lost per pixel scrolled
	IndicatorDistance float64 `yaml:"indicator_distance"`
	NavbarThreshold   float64 `yaml:"navbar_threshold"`

	AnchorDuration time.Duration `yaml:"anchor_duration"`
	WheelStep      float64       `yaml:"wheel_step"`
	KeyStep        float64       `yaml:"key_step"`
	PageStep       float64       `yaml:"page_step"`
}

// PageConfig contains page-wide visual configuration
type PageConfig struct {
	AuroraStrength float64    `yaml:"aurora_strength"` // parallax travel in pixels
	NavbarHeight   float64    `yaml:"navbar_height"`
	Background     color.RGBA `yaml:"-"`
	Overlay        color.RGBA `yaml:"-"`
	NavbarSolid    color.RGBA `yaml:"-"`
	Text           color.RGBA `yaml:"-"`
	Accent         color.RGBA `yaml:"-"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipLoader bool // Go straight to the destination page
	ShowState  bool // Draw component state in a corner overlay
}

// Global configuration instances
var C *Config
var Loader LoaderConfig
var Transition TransitionConfig
var Particles ParticleConfig
var Cursor CursorConfig
var Scroll ScrollConfig
var Page PageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Charcoal     = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 204} // rgba(0,0,0,0.8)
	Teal         = color.RGBA{R: 0, G: 212, B: 170, A: 255}
	SoftTeal     = color.RGBA{R: 140, G: 255, B: 230, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Aurora",
		TPS:    60,
	}

	Loader = LoaderConfig{
		Target:    100,
		Increment: 1,
		BaseDelay: 45 * time.Millisecond,

		EdgeMultiplier:   1.5,
		MiddleMultiplier: 0.4,

		Milestones:    []int{25, 50, 75},
		PulseScale:    1.1,
		PulseDuration: 200 * time.Millisecond,

		StartDelay:    time.Second,
		CompleteHold:  time.Second,
		BlinkInterval: 500 * time.Millisecond,

		FontSize:  96,
		TextColor: White,
	}

	Transition = TransitionConfig{
		FadeDuration:  300 * time.Millisecond,
		CoverDelay:    100 * time.Millisecond,
		CoverDuration: 800 * time.Millisecond,
		NavigateDelay: 1200 * time.Millisecond,
		Destination:   "/home",
		CoverColor:    Charcoal,
	}

	Particles = ParticleConfig{
		Interval:    200 * time.Millisecond,
		Lifetime:    5 * time.Second,
		DriftMin:    2 * time.Second,
		DriftMax:    5 * time.Second,
		OpacityMin:  0.1,
		OpacitySpan: 0.5,
		Radius:      2,
		Color:       SoftTeal,
	}

	Cursor = CursorConfig{
		Smoothing:  0.25,
		Capability: "auto",
		Categories: []string{
			"a", "button", "nav-link", "explore-btn",
			"company-badge", "stat-item", "input", "textarea",
		},
		Radius:       10,
		HoverScale:   1.5,
		PressedScale: 0.8,
		Color:        Teal,
	}

	Scroll = ScrollConfig{
		OverlayBase:       0.8,
		OverlayFloor:      0.3,
		OverlayRate:       0.001,
		IndicatorDistance: 100,
		NavbarThreshold:   50,

		AnchorDuration: 600 * time.Millisecond,
		WheelStep:      40,
		KeyStep:        40,
		PageStep:       600,
	}

	Page = PageConfig{
		AuroraStrength: 20,
		NavbarHeight:   64,
		Background:     Black,
		Overlay:        Black,
		NavbarSolid:    BlackOverlay,
		Text:           White,
		Accent:         Teal,
	}
}

// FrameDuration is the virtual time covered by one Update tick.
func FrameDuration() time.Duration {
	if C.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(C.TPS)
}
