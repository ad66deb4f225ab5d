package ui

import (
	"sort"

	"github.com/codroidhub/aurora/assets"
)

// NavLink is one entry of the navbar.
type NavLink struct {
	Label string
	Href  string
}

// LinksFromLayout collects the fixed nav links of a layout, left to right.
func LinksFromLayout(layout *assets.Layout) []NavLink {
	if layout == nil {
		return nil
	}
	var els []assets.Element
	for _, el := range layout.Interactive {
		if el.Fixed && el.Category == "nav-link" && el.Href != "" {
			els = append(els, el)
		}
	}
	sort.SliceStable(els, func(i, j int) bool { return els[i].X < els[j].X })

	links := make([]NavLink, 0, len(els))
	for _, el := range els {
		label := el.Label
		if label == "" {
			label = el.Name
		}
		links = append(links, NavLink{Label: label, Href: el.Href})
	}
	return links
}
