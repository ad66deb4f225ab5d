package components

import (
	"github.com/codroidhub/aurora/assets"
	"github.com/yohamta/donburi"
)

type LayoutData struct {
	*assets.Layout
}

var Layout = donburi.NewComponentType[LayoutData]()
