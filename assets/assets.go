package assets

import (
	"embed"
	"fmt"
	"path"
)

//go:embed all:layouts
var layoutFS embed.FS

// LayoutLoader parses embedded page layouts once and caches them.
type LayoutLoader struct {
	cache map[string]*Layout
}

func NewLayoutLoader() *LayoutLoader {
	return &LayoutLoader{cache: make(map[string]*Layout)}
}

// Load returns the layout named name (without extension).
func (l *LayoutLoader) Load(name string) (*Layout, error) {
	if layout, ok := l.cache[name]; ok {
		return layout, nil
	}
	layout, err := LoadLayout(layoutFS, path.Join("layouts", name+".tmx"))
	if err != nil {
		return nil, err
	}
	layout.Name = name
	l.cache[name] = layout
	return layout, nil
}

// MustLoad panics when the layout cannot be parsed.
func (l *LayoutLoader) MustLoad(name string) *Layout {
	layout, err := l.Load(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load layout %s: %v", name, err))
	}
	return layout
}

// Names lists the embedded layouts.
func (l *LayoutLoader) Names() ([]string, error) {
	entries, err := layoutFS.ReadDir("layouts")
	if err != nil {
		return nil, fmt.Errorf("read layouts: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name()[:len(entry.Name())-len(".tmx")])
		}
	}
	return names, nil
}

var layouts = NewLayoutLoader()

// GetLayout loads a page layout through the shared cache.
func GetLayout(name string) (*Layout, error) {
	return layouts.Load(name)
}
