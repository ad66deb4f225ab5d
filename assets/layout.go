package assets

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Rect is an axis-aligned box in page coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the middle of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Element is an interactive page element.
type Element struct {
	Rect
	Name     string
	Category string // a, button, nav-link, explore-btn, ...
	Label    string
	Href     string // route path or "#section"
	Fixed    bool   // positioned against the viewport rather than the page
}

// TextBlock is static copy drawn on the page.
type TextBlock struct {
	Rect
	Body string
	Size float64
}

// Layout is a page parsed from a Tiled map. Optional elements are nil when
// the map does not define them; the matching component then stays disabled.
type Layout struct {
	Name   string
	Width  float64
	Height float64

	Counter         *Rect
	Indicator       *Rect
	Particles       *Rect
	Overlay         *Rect
	ScrollIndicator *Rect

	Interactive []Element
	Sections    []Element
	Texts       []TextBlock
}

// Section returns the anchor section with the given name.
func (l *Layout) Section(name string) (Element, bool) {
	for _, s := range l.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Element{}, false
}

// ScrollRange is how far the page scrolls in a viewport of the given height.
func (l *Layout) ScrollRange(viewportHeight float64) float64 {
	if l.Height <= viewportHeight {
		return 0
	}
	return l.Height - viewportHeight
}

// LoadLayout parses the Tiled map at path inside fsys.
func LoadLayout(fsys fs.FS, path string) (*Layout, error) {
	pageMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}

	layout := &Layout{
		Name:   path,
		Width:  float64(pageMap.Width * pageMap.TileWidth),
		Height: float64(pageMap.Height * pageMap.TileHeight),
	}

	for _, og := range pageMap.ObjectGroups {
		switch og.Name {
		case "Counter":
			layout.Counter = firstRect(og)
		case "Indicator":
			layout.Indicator = firstRect(og)
		case "Particles":
			layout.Particles = firstRect(og)
		case "Overlay":
			layout.Overlay = firstRect(og)
		case "ScrollIndicator":
			layout.ScrollIndicator = firstRect(og)
		case "Interactive":
			for _, o := range og.Objects {
				layout.Interactive = append(layout.Interactive, toElement(o))
			}
		case "Sections":
			for _, o := range og.Objects {
				layout.Sections = append(layout.Sections, toElement(o))
			}
			sort.Slice(layout.Sections, func(i, j int) bool {
				return layout.Sections[i].Y < layout.Sections[j].Y
			})
		case "Text":
			for _, o := range og.Objects {
				size := o.Properties.GetFloat("size")
				if size <= 0 {
					size = 18
				}
				layout.Texts = append(layout.Texts, TextBlock{
					Rect: Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Body: o.Properties.GetString("body"),
					Size: size,
				})
			}
		}
	}

	return layout, nil
}

func firstRect(og *tiled.ObjectGroup) *Rect {
	if len(og.Objects) == 0 {
		return nil
	}
	o := og.Objects[0]
	return &Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

func toElement(o *tiled.Object) Element {
	category := o.Class
	if category == "" {
		category = o.Type //nolint:staticcheck // TMX uses type= attribute
	}
	return Element{
		Rect:     Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
		Name:     o.Name,
		Category: category,
		Label:    o.Properties.GetString("label"),
		Href:     o.Properties.GetString("href"),
		Fixed:    o.Properties.GetBool("fixed"),
	}
}
