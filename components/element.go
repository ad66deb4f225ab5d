package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ElementData is an interactive page element registered in the hit-test space.
type ElementData struct {
	*resolv.Object
	Category string
	Label    string
	Href     string
	Fixed    bool    // anchored to the viewport
	BaseY    float64 // Y at scroll offset zero
}

// Contains reports whether the point lies inside the element bounds.
func (e *ElementData) Contains(x, y float64) bool {
	return x >= e.X && x < e.X+e.W && y >= e.Y && y < e.Y+e.H
}

var (
	Element = donburi.NewComponentType[ElementData]()
	Space   = donburi.NewComponentType[resolv.Space]()
)
