package components

import "github.com/yohamta/donburi"

type ViewportData struct {
	Width, Height int
	Resized       bool // set by Layout, cleared after the resize systems ran
}

var Viewport = donburi.NewComponentType[ViewportData]()
