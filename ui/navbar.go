package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Navbar is the fixed page header: brand, nav links and the hamburger menu.
// The background is painted by the page renderer so it can follow the scroll.
type Navbar struct {
	UI *ebitenui.UI

	// OnNavigate receives the href of a clicked link.
	OnNavigate func(href string)

	links    []NavLink
	menu     *widget.Container
	menuOpen bool

	brandFace  text.Face
	normalFace text.Face
}

func NewNavbar(brand string, links []NavLink, onNavigate func(href string)) *Navbar {
	n := &Navbar{
		OnNavigate: onNavigate,
		links:      links,
	}
	n.loadFonts()
	n.buildUI(brand)
	return n
}

func (n *Navbar) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load navbar font: %v", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load navbar font: %v", err)
	}

	n.brandFace = &text.GoTextFace{Source: bold, Size: 20}
	n.normalFace = &text.GoTextFace{Source: regular, Size: 15}
}

func (n *Navbar) buildUI(brand string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	brandLabel := widget.NewLabel(
		widget.LabelOpts.Text(brand, &n.brandFace, &widget.LabelColor{
			Idle: color.RGBA{64, 224, 208, 255},
		}),
	)
	brandContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Left: 32}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	brandContainer.AddChild(brandLabel)
	rootContainer.AddChild(brandContainer)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 14, Right: 24}),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	column.AddChild(n.buildBar())

	n.menu = n.buildMenu()
	n.menu.GetWidget().Visibility = widget.Visibility_Hide
	column.AddChild(n.menu)

	rootContainer.AddChild(column)

	n.UI = &ebitenui.UI{Container: rootContainer}
}

func (n *Navbar) buildBar() *widget.Container {
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	for _, link := range n.links {
		bar.AddChild(n.linkButton(link, color.RGBA{0, 0, 0, 0}))
	}

	hamburger := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 34)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{30, 30, 30, 200}),
			Hover:   image.NewNineSliceColor(color.RGBA{50, 50, 50, 220}),
			Pressed: image.NewNineSliceColor(color.RGBA{20, 20, 20, 240}),
		}),
		widget.ButtonOpts.Text("Menu", &n.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{64, 224, 208, 255},
			Pressed: color.RGBA{64, 224, 208, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			n.ToggleMenu()
		}),
	)
	bar.AddChild(hamburger)

	return bar
}

func (n *Navbar) buildMenu() *widget.Container {
	menu := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{26, 26, 26, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	for _, link := range n.links {
		menu.AddChild(n.linkButton(link, color.RGBA{40, 40, 40, 255}))
	}
	return menu
}

func (n *Navbar) linkButton(link NavLink, idle color.RGBA) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 34)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(idle),
			Hover:   image.NewNineSliceColor(color.RGBA{64, 224, 208, 40}),
			Pressed: image.NewNineSliceColor(color.RGBA{64, 224, 208, 80}),
		}),
		widget.ButtonOpts.Text(link.Label, &n.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{230, 230, 230, 255},
			Hover:   color.RGBA{64, 224, 208, 255},
			Pressed: color.RGBA{64, 224, 208, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			n.SetMenuOpen(false)
			if n.OnNavigate != nil {
				n.OnNavigate(link.Href)
			}
		}),
	)
}

// ToggleMenu opens or closes the dropdown menu.
func (n *Navbar) ToggleMenu() {
	n.SetMenuOpen(!n.menuOpen)
}

func (n *Navbar) SetMenuOpen(open bool) {
	n.menuOpen = open
	if n.menu == nil {
		return
	}
	if open {
		n.menu.GetWidget().Visibility = widget.Visibility_Show
	} else {
		n.menu.GetWidget().Visibility = widget.Visibility_Hide
	}
}

func (n *Navbar) MenuOpen() bool {
	return n.menuOpen
}

func (n *Navbar) Update() {
	n.UI.Update()
}

func (n *Navbar) Draw(screen *ebiten.Image) {
	n.UI.Draw(screen)
}
