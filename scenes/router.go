package scenes

import (
	"log"
	"strings"

	cfg "github.com/codroidhub/aurora/config"
)

const (
	RouteLoading = "/"
	RouteHome    = "/home"
	RouteAbout   = "/about"
)

// Router maps paths to scenes. It is the navigator handed to every scene.
type Router struct {
	sceneChanger SceneChanger
	routes       map[string]func() Scene
	aliases      map[string]string
	current      string
}

func NewRouter(sc SceneChanger) *Router {
	r := &Router{sceneChanger: sc}
	r.routes = map[string]func() Scene{
		RouteLoading: func() Scene { return NewLoadingScene(r) },
		RouteHome:    func() Scene { return NewPageScene(r, "home") },
		RouteAbout:   func() Scene { return NewPageScene(r, "about") },
	}
	r.aliases = map[string]string{
		"/index":      RouteHome,
		"/index.html": RouteHome,
	}
	return r
}

// Resolve maps a path to a known route. Unknown paths fall back to home.
func (r *Router) Resolve(path string) string {
	if path == "" {
		return RouteLoading
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if _, ok := r.routes[path]; ok {
		return path
	}
	if alias, ok := r.aliases[path]; ok {
		return alias
	}
	log.Printf("[router] unknown route %q, falling back to %s", path, RouteHome)
	return RouteHome
}

// Navigate switches to the scene for path.
func (r *Router) Navigate(path string) {
	route := r.Resolve(path)
	if route == RouteLoading && cfg.Debug.SkipLoader {
		route = RouteHome
	}
	log.Printf("[router] navigate %s", route)
	r.current = route
	r.sceneChanger.ChangeScene(r.routes[route]())
}

// Current returns the route of the active scene.
func (r *Router) Current() string {
	return r.current
}
