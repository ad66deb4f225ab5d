package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"log"
	"os"

	"github.com/codroidhub/aurora/assets"
	"github.com/codroidhub/aurora/config"
	"github.com/codroidhub/aurora/fonts"
	"github.com/codroidhub/aurora/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	outer  image.Point
	scene  scenes.Scene
	router *scenes.Router

	configPath string
	reload     <-chan struct{}
}

// ChangeScene switches to a new scene, releasing the old one's scheduled work.
func (g *Game) ChangeScene(scene interface{}) {
	if d, ok := g.scene.(scenes.Disposer); ok {
		d.Dispose()
	}
	g.scene = scene.(scenes.Scene)
}

func NewGame(route string) *Game {
	if err := fonts.LoadDefaults(config.Loader.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// The page still renders on the plain background without the shader
	if err := assets.LoadShaders(); err != nil {
		log.Printf("[assets] shader unavailable: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.router = scenes.NewRouter(g)
	g.router.Navigate(route)

	return g
}

func (g *Game) Update() error {
	select {
	case <-g.reload:
		if err := config.LoadOverrides(g.configPath); err != nil {
			log.Printf("[config] reload failed, keeping current values: %v", err)
		} else {
			log.Printf("[config] reloaded %s", g.configPath)
		}
	default:
	}

	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)

	outer := image.Pt(width, height)
	if outer != g.outer {
		first := g.outer == image.Point{}
		g.outer = outer
		if r, ok := g.scene.(scenes.Resizer); ok && !first {
			r.Resize(width, height)
		}
	}
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	route := flag.String("route", scenes.RouteLoading, "route to open at start")
	skipLoader := flag.Bool("skip-loader", false, "open the destination page without the loading screen")
	debug := flag.Bool("debug", false, "show the state overlay")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Printf("[config] %s not found, using defaults", *configPath)
			} else {
				log.Printf("[config] ignoring overrides: %v", err)
			}
		}
	}
	if *skipLoader {
		config.Debug.SkipLoader = true
	}
	if *debug {
		config.Debug.ShowState = true
	}

	game := NewGame(*route)
	if *configPath != "" {
		w, err := config.WatchOverrides(context.Background(), *configPath)
		if err != nil {
			log.Printf("[config] live reload disabled: %v", err)
		} else {
			defer w.Close()
			game.configPath = *configPath
			game.reload = w.Changed()
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Print(err)
	}
}
