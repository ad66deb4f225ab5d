package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when an override file decodes but fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// overrideDoc mirrors the global configuration. Decoding happens on copies of
// the current values so keys missing from the file keep their defaults.
type overrideDoc struct {
	Window     Config            `yaml:"window"`
	Loader     LoaderConfig      `yaml:"loader"`
	Transition TransitionConfig  `yaml:"transition"`
	Particles  ParticleConfig    `yaml:"particles"`
	Cursor     CursorConfig      `yaml:"cursor"`
	Scroll     ScrollConfig      `yaml:"scroll"`
	Page       PageConfig        `yaml:"page"`
	Colors     map[string]string `yaml:"colors"`
}

// LoadOverrides reads a YAML file and applies it over the defaults. Nothing is
// applied unless the whole file is valid.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides decodes YAML bytes over the current configuration.
func ApplyOverrides(data []byte) error {
	doc := overrideDoc{
		Window:     *C,
		Loader:     Loader,
		Transition: Transition,
		Particles:  Particles,
		Cursor:     Cursor,
		Scroll:     Scroll,
		Page:       Page,
	}
	// Slices are shared with the globals until the decoder replaces them.
	doc.Loader.Milestones = append([]int(nil), Loader.Milestones...)
	doc.Cursor.Categories = append([]string(nil), Cursor.Categories...)

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := applyColors(&doc); err != nil {
		return err
	}
	if err := doc.validate(); err != nil {
		return err
	}

	*C = doc.Window
	Loader = doc.Loader
	Transition = doc.Transition
	Particles = doc.Particles
	Cursor = doc.Cursor
	Scroll = doc.Scroll
	Page = doc.Page
	return nil
}

func applyColors(doc *overrideDoc) error {
	targets := map[string]*color.RGBA{
		"counter":    &doc.Loader.TextColor,
		"cover":      &doc.Transition.CoverColor,
		"particle":   &doc.Particles.Color,
		"cursor":     &doc.Cursor.Color,
		"background": &doc.Page.Background,
		"overlay":    &doc.Page.Overlay,
		"navbar":     &doc.Page.NavbarSolid,
		"text":       &doc.Page.Text,
		"accent":     &doc.Page.Accent,
	}
	for name, value := range doc.Colors {
		dst, ok := targets[name]
		if !ok {
			return fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, name)
		}
		c, err := ParseHexColor(value)
		if err != nil {
			return fmt.Errorf("%w: color %s: %v", ErrInvalidConfig, name, err)
		}
		*dst = c
	}
	return nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (d *overrideDoc) validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(d.Window.Width > 0 && d.Window.Height > 0, "window size must be positive")
	check(d.Window.TPS > 0, "window.tps must be positive")

	check(d.Loader.Target > 0, "loader.target must be positive")
	check(d.Loader.Increment > 0, "loader.increment must be positive")
	check(d.Loader.BaseDelay > 0, "loader.base_delay must be positive")
	check(d.Loader.PulseScale >= 1, "loader.pulse_scale must be at least 1")
	check(d.Loader.PulseDuration > 0, "loader.pulse_duration must be positive")
	check(d.Loader.BlinkInterval > 0, "loader.blink_interval must be positive")
	for _, m := range d.Loader.Milestones {
		check(m > 0 && m < d.Loader.Target, fmt.Sprintf("loader milestone %d outside (0, target)", m))
	}

	check(d.Transition.Destination != "", "transition.destination must be set")
	check(d.Transition.CoverDuration > 0, "transition.cover_duration must be positive")

	check(d.Particles.Interval > 0, "particles.interval must be positive")
	check(d.Particles.Lifetime > 0, "particles.lifetime must be positive")
	check(d.Particles.DriftMin > 0 && d.Particles.DriftMax > d.Particles.DriftMin, "particles drift range is empty")
	check(d.Particles.OpacityMin >= 0 && d.Particles.OpacityMin+d.Particles.OpacitySpan <= 1, "particles opacity range outside [0, 1]")

	check(d.Cursor.Smoothing > 0 && d.Cursor.Smoothing <= 1, "cursor.smoothing must be in (0, 1]")
	switch d.Cursor.Capability {
	case "auto", "fine", "coarse":
	default:
		problems = append(problems, fmt.Sprintf("cursor.capability %q is not auto, fine or coarse", d.Cursor.Capability))
	}

	check(d.Scroll.OverlayFloor <= d.Scroll.OverlayBase, "scroll.overlay_floor above overlay_base")
	check(d.Scroll.IndicatorDistance > 0, "scroll.indicator_distance must be positive")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
