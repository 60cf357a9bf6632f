// Package stackrouter provides a stack-based Router for the navigation
// container: routes are registered by name with optional deep-link path
// patterns, NAVIGATE pushes, BACK pops, and SET_PARAMS rewrites a single
// route's params while sharing every untouched node with the previous state.
//
// Path patterns use {param} placeholders:
//
//	stackrouter.Route{Name: "profile", Path: "profile/{id}"}
//
// resolves "profile/42" to a NavigateAction with params {"id": "42"}.
package stackrouter

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli"
	"go.uber.org/atomic"
)

// Route declares a navigable screen. Path is the deep-link pattern; when
// empty the route is not reachable from URLs.
type Route struct {
	Name string
	Path string
}

// Router is a stack-based stromboli.Router. Values returned from
// StateForAction share every node the action did not touch with the input
// state, as the container's reference-identity contract requires.
type Router struct {
	routes  []Route
	byName  map[string]Route
	initial string
	keys    atomic.Int64
}

var _ stromboli.Router = (*Router)(nil)

// New creates a Router whose initial state holds the named route. The
// initial route must be among the registered routes.
func New(initial string, routes ...Route) (*Router, error) {
	r := &Router{
		routes:  routes,
		byName:  make(map[string]Route, len(routes)),
		initial: initial,
	}
	for _, route := range routes {
		r.byName[route.Name] = route
	}
	if _, ok := r.byName[initial]; !ok {
		return nil, fmt.Errorf("stackrouter: initial route %q not registered", initial)
	}
	return r, nil
}

// StateForAction implements stromboli.Router.
func (r *Router) StateForAction(action stromboli.Action, state *stromboli.State) *stromboli.State {
	switch a := action.(type) {
	case stromboli.InitAction:
		if state != nil {
			return state
		}
		return &stromboli.State{
			Index:  0,
			Routes: []*stromboli.Route{r.newRoute(r.initial, nil)},
		}

	case stromboli.NavigateAction:
		if state == nil {
			return nil
		}
		if _, ok := r.byName[a.Name]; !ok {
			return nil
		}
		routes := make([]*stromboli.Route, len(state.Routes)+1)
		copy(routes, state.Routes)
		routes[len(routes)-1] = r.newRoute(a.Name, a.Params)
		return &stromboli.State{Index: len(routes) - 1, Routes: routes}

	case stromboli.BackAction:
		if state == nil || len(state.Routes) <= 1 {
			return nil
		}
		cut := len(state.Routes) - 1
		if a.Key != "" {
			cut = -1
			for i, route := range state.Routes {
				if route.Key == a.Key {
					cut = i
					break
				}
			}
			if cut <= 0 {
				// Unknown key, or popping the root.
				return nil
			}
		}
		return &stromboli.State{Index: cut - 1, Routes: state.Routes[:cut]}

	case stromboli.SetParamsAction:
		if state == nil {
			return nil
		}
		for i, route := range state.Routes {
			if route.Key != a.Key {
				continue
			}
			routes := make([]*stromboli.Route, len(state.Routes))
			copy(routes, state.Routes)
			routes[i] = route.WithParams(a.Params)
			return &stromboli.State{Index: state.Index, Routes: routes}
		}
		return nil
	}

	return nil
}

// ActionForPath implements stromboli.Router. Registered routes are tried in
// registration order; the first matching pattern wins. Params extracted from
// the path are merged over the supplied params.
func (r *Router) ActionForPath(path string, params map[string]string) stromboli.Action {
	for _, route := range r.routes {
		if route.Path == "" {
			continue
		}
		extracted, ok := matchPath(route.Path, path)
		if !ok {
			continue
		}
		merged := make(map[string]any, len(params)+len(extracted))
		for k, v := range params {
			merged[k] = v
		}
		for k, v := range extracted {
			merged[k] = v
		}
		if len(merged) == 0 {
			merged = nil
		}
		return stromboli.NavigateAction{Name: route.Name, Params: merged}
	}
	return nil
}

func (r *Router) newRoute(name string, params map[string]any) *stromboli.Route {
	return &stromboli.Route{
		Key:    fmt.Sprintf("%s-%d", name, r.keys.Inc()),
		Name:   name,
		Params: params,
	}
}

// matchPath matches a path against a {param} pattern. Segment counts must
// agree; literal segments must match exactly.
func matchPath(pattern, path string) (map[string]string, bool) {
	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternParts) != len(pathParts) {
		return nil, false
	}

	params := make(map[string]string)
	for i, part := range patternParts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			params[strings.Trim(part, "{}")] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return nil, false
		}
	}
	return params, true
}
