package systems

import (
	"log"
	"strings"
	"time"

	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OverlayOpacity maps a scroll offset to the hero overlay opacity,
// clamped to [OverlayFloor, OverlayBase].
func OverlayOpacity(offset float64) float64 {
	s := cfg.Scroll
	return clamp(s.OverlayBase-offset*s.OverlayRate, s.OverlayFloor, s.OverlayBase)
}

// IndicatorOpacity fades the scroll hint out over the first IndicatorDistance pixels.
func IndicatorOpacity(offset float64) float64 {
	return clamp(1-offset/cfg.Scroll.IndicatorDistance, 0, 1)
}

// NavbarSolid reports whether the navbar switches to its solid background.
func NavbarSolid(offset float64) bool {
	return offset > cfg.Scroll.NavbarThreshold
}

// OnScroll records a new offset. The opacities are recomputed on the next
// refresh from whatever offset is current then; events arriving while a
// recompute is pending only update the offset.
func OnScroll(w donburi.World, offset float64) {
	entry, ok := components.Scroll.First(w)
	if !ok {
		return
	}
	s := components.Scroll.Get(entry)
	s.Offset = clamp(offset, 0, s.Max)
	s.NavbarSolid = NavbarSolid(s.Offset)

	if s.Pending.Pending() {
		return
	}
	s.Pending = s.Timers.Frame(func(time.Duration) {
		if !entry.Valid() {
			return
		}
		s := components.Scroll.Get(entry)
		s.Pending = nil
		s.Overlay = OverlayOpacity(s.Offset)
		s.Indicator = IndicatorOpacity(s.Offset)
		s.Updates++
		syncFixedElements(w, s.Offset)
	})
}

// ScrollBy moves the page by delta, cancelling any anchor animation.
func ScrollBy(w donburi.World, delta float64) {
	entry, ok := components.Scroll.First(w)
	if !ok {
		return
	}
	s := components.Scroll.Get(entry)
	s.Anchor = nil
	s.AnchorTarget = ""
	OnScroll(w, s.Offset+delta)
}

// ScrollToAnchor animates the page to a layout section. href is "#name" or "name".
func ScrollToAnchor(w donburi.World, href string) bool {
	entry, ok := components.Scroll.First(w)
	if !ok {
		return false
	}
	layout := getLayout(w)
	if layout == nil {
		return false
	}
	name := strings.TrimPrefix(href, "#")
	section, ok := layout.Section(name)
	if !ok {
		log.Printf("[scroll] unknown anchor %q", href)
		return false
	}

	s := components.Scroll.Get(entry)
	target := clamp(section.Y, 0, s.Max)
	s.Anchor = gween.New(float32(s.Offset), float32(target), float32(cfg.Scroll.AnchorDuration.Seconds()), ease.InOutQuad)
	s.AnchorTarget = name
	return true
}

// UpdateScroll applies keyboard and wheel scrolling, advances anchor
// animations, and tracks the scroll range across resizes.
func UpdateScroll(e *ecs.ECS) {
	entry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	s := components.Scroll.Get(entry)

	if vp := getViewport(e.World); vp != nil && vp.Resized {
		if layout := getLayout(e.World); layout != nil {
			s.Max = layout.ScrollRange(float64(cfg.C.Height))
			if s.Offset > s.Max {
				OnScroll(e.World, s.Max)
			}
		}
	}

	if s.Anchor != nil {
		v, done := s.Anchor.Update(float32(cfg.FrameDuration().Seconds()))
		if done {
			s.Anchor = nil
			s.AnchorTarget = ""
		}
		OnScroll(e.World, float64(v))
	}

	input, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(input)
	delta := in.WheelY * cfg.Scroll.WheelStep
	if GetAction(in, cfg.ActionScrollDown).Pressed {
		delta += cfg.Scroll.KeyStep
	}
	if GetAction(in, cfg.ActionScrollUp).Pressed {
		delta -= cfg.Scroll.KeyStep
	}
	if GetAction(in, cfg.ActionPageDown).JustPressed {
		delta += cfg.Scroll.PageStep
	}
	if GetAction(in, cfg.ActionPageUp).JustPressed {
		delta -= cfg.Scroll.PageStep
	}
	if GetAction(in, cfg.ActionScrollTop).JustPressed {
		delta = -s.Offset
	}
	if GetAction(in, cfg.ActionScrollBottom).JustPressed {
		delta = s.Max - s.Offset
	}
	if delta != 0 {
		ScrollBy(e.World, delta)
	}
}

func getLayout(w donburi.World) *components.LayoutData {
	entry, ok := components.Layout.First(w)
	if !ok {
		return nil
	}
	l := components.Layout.Get(entry)
	if l.Layout == nil {
		return nil
	}
	return l
}

func scrollOffset(w donburi.World) float64 {
	entry, ok := components.Scroll.First(w)
	if !ok {
		return 0
	}
	return components.Scroll.Get(entry).Offset
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
