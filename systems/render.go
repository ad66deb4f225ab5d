package systems

import (
	"image/color"
	"math"
	"strconv"

	"github.com/codroidhub/aurora/assets"
	"github.com/codroidhub/aurora/components"
	cfg "github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/fonts"
	"github.com/codroidhub/aurora/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawBackground fills the page and paints the aurora shader over it.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Page.Background)
	if assets.AuroraShader == nil {
		return
	}
	entry, ok := components.Aurora.First(e.World)
	if !ok {
		return
	}
	aurora := components.Aurora.Get(entry)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Time":       float32(aurora.Time),
		"Offset":     []float32{float32(aurora.Offset.X), float32(aurora.Offset.Y)},
		"Resolution": []float32{float32(w), float32(h)},
	}
	screen.DrawRectShader(w, h, assets.AuroraShader, op)
}

// DrawLoader renders the counter and blinking square, faded by the transition.
func DrawLoader(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Counter.First(e.World)
	if !ok {
		return
	}
	counter := components.Counter.Get(entry)
	tr := components.Transition.Get(entry)
	bounds := components.Element.Get(entry)
	view := tr.ViewOpacity

	face := fonts.Counter.Get()
	s := strconv.Itoa(counter.Current)
	rect := text.BoundString(face, s)
	cx, cy := bounds.X+bounds.W/2, bounds.Y+bounds.H/2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(rect.Dx())/2-float64(rect.Min.X), -float64(rect.Dy())/2-float64(rect.Min.Y))
	op.GeoM.Scale(counter.Scale, counter.Scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(cfg.Loader.TextColor)
	op.ColorScale.ScaleAlpha(float32(view))
	text.DrawWithOptions(screen, s, face, op)

	if ind, ok := tags.Indicator.First(e.World); ok {
		data := components.Indicator.Get(ind)
		if data.Visible {
			b := components.Element.Get(ind)
			vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fade(cfg.Page.Accent, view), false)
		}
	}

	if layout := getLayout(e.World); layout != nil {
		drawTexts(screen, layout.Texts, 0, view)
	}
}

// DrawPage renders the static copy, hero overlay, interactive elements and
// scroll hint of a content page.
func DrawPage(e *ecs.ECS, screen *ebiten.Image) {
	layout := getLayout(e.World)
	if layout == nil {
		return
	}
	offset := 0.0
	overlay, indicator := cfg.Scroll.OverlayBase, 1.0
	if entry, ok := components.Scroll.First(e.World); ok {
		s := components.Scroll.Get(entry)
		offset, overlay, indicator = s.Offset, s.Overlay, s.Indicator
	}

	if r := layout.Overlay; r != nil {
		vector.FillRect(screen, float32(r.X), float32(r.Y-offset), float32(r.Width), float32(r.Height), fade(cfg.Page.Overlay, overlay), false)
	}

	drawTexts(screen, layout.Texts, offset, 1)

	hovered := map[*components.ElementData]bool{}
	if pointer := getPointer(e.World); pointer != nil && pointer.InWindow {
		if el, ok := HoveredElement(e.World, pointer.X, pointer.Y); ok {
			hovered[el] = true
		}
	}
	tags.Interactive.Each(e.World, func(entry *donburi.Entry) {
		el := components.Element.Get(entry)
		if el.Fixed {
			return // drawn by the navbar
		}
		y := el.Y - offset
		if y+el.H < 0 || y > float64(screen.Bounds().Dy()) {
			return
		}
		border := fade(cfg.Page.Text, 0.35)
		if hovered[el] {
			border = cfg.Page.Accent
		}
		vector.StrokeRect(screen, float32(el.X), float32(y), float32(el.W), float32(el.H), 1.5, border, true)
		if el.Label != "" {
			face := fonts.Body.Get()
			rect := text.BoundString(face, el.Label)
			tx := int(el.X + (el.W-float64(rect.Dx()))/2)
			ty := int(y + (el.H+float64(rect.Dy()))/2)
			text.Draw(screen, el.Label, face, tx, ty, cfg.Page.Text)
		}
	})

	if r := layout.ScrollIndicator; r != nil && indicator > 0 {
		c := fade(cfg.Page.Text, indicator)
		cx := float32(r.X + r.Width/2)
		top := float32(r.Y - offset)
		mid := top + float32(r.Height)/2
		vector.StrokeLine(screen, float32(r.X), top, cx, mid, 2, c, true)
		vector.StrokeLine(screen, cx, mid, float32(r.X+r.Width), top, 2, c, true)
	}
}

// DrawNavbar paints the navbar background once the page has scrolled past
// the threshold. The navbar widgets draw over it.
func DrawNavbar(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Scroll.First(e.World)
	if !ok || !components.Scroll.Get(entry).NavbarSolid {
		return
	}
	w := float32(screen.Bounds().Dx())
	vector.FillRect(screen, 0, 0, w, float32(cfg.Page.NavbarHeight), cfg.Page.NavbarSolid, false)
}

// DrawParticles renders every particle that is still rising.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	clock := sceneClock(e.World)
	if clock == nil {
		return
	}
	now := clock.Now()
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if !p.Drifting(now) {
			return
		}
		// Fade in and out over the first and last tenth of the rise.
		progress := p.Progress(now)
		alpha := p.Opacity * math.Min(1, math.Min(progress, 1-progress)*10)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), cfg.Particles.Radius, fade(cfg.Particles.Color, alpha), true) //nolint:staticcheck
	})
}

// DrawCursor renders the smoothed cursor ring.
func DrawCursor(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Cursor.First(e.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	opacity := c.Opacity()
	if opacity == 0 {
		return
	}
	radius := float64(cfg.Cursor.Radius)
	if c.Hovering {
		radius *= cfg.Cursor.HoverScale
	}
	if c.Pressed {
		radius *= cfg.Cursor.PressedScale
	}
	vector.StrokeCircle(screen, float32(c.Display.X), float32(c.Display.Y), float32(radius), 2, fade(cfg.Cursor.Color, opacity), true)
	if c.Hovering {
		vector.DrawFilledCircle(screen, float32(c.Display.X), float32(c.Display.Y), float32(radius), fade(cfg.Cursor.Color, 0.2*opacity), true) //nolint:staticcheck
	}
}

// DrawCover renders the opaque cover raised before navigation.
func DrawCover(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Counter.First(e.World)
	if !ok {
		return
	}
	tr := components.Transition.Get(entry)
	if !tr.CoverStarted || tr.CoverOpacity <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), fade(cfg.Transition.CoverColor, tr.CoverOpacity), false)
}

func drawTexts(screen *ebiten.Image, blocks []assets.TextBlock, offset, opacity float64) {
	for _, b := range blocks {
		var face font.Face
		switch {
		case b.Size >= 40:
			face = fonts.Sized(b.Size)
		case b.Size >= 28:
			face = fonts.Title.Get()
		default:
			face = fonts.Body.Get()
		}
		rect := text.BoundString(face, b.Body)
		x := int(b.X + (b.Width-float64(rect.Dx()))/2)
		y := int(b.Y - offset + (b.Height+float64(rect.Dy()))/2)
		text.Draw(screen, b.Body, face, x, y, fade(cfg.Page.Text, opacity))
	}
}

// fade scales a premultiplied color by opacity.
func fade(c color.RGBA, opacity float64) color.RGBA {
	a := clamp(opacity, 0, 1) * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * clamp(opacity, 0, 1)),
	}
}
