package stromboli

// Route is a node in the navigation state tree. A route that carries its own
// Routes slice is a child navigator (a stack inside a tab, for example).
//
// Routes are immutable by convention: state transitions build new nodes with
// the copy-on-write helpers below and never modify a node in place. Keys are
// unique among siblings at a given tree level, not globally.
type Route struct {
	Key    string         // Unique among siblings
	Name   string         // Route name as registered with the router
	Params map[string]any // Router-defined params, nil when absent
	Index  int            // Active child index for child navigators
	Routes []*Route       // Child routes, nil for leaf routes
}

// State is the root of a navigation route tree. It is an immutable snapshot:
// every committed dispatch replaces the whole value, and unchanged subtrees
// keep their previous references.
type State struct {
	Index  int
	Routes []*Route
}

// ActiveRoute returns the route at the state's current index, or nil when
// the index is out of range.
func (s *State) ActiveRoute() *Route {
	if s == nil || s.Index < 0 || s.Index >= len(s.Routes) {
		return nil
	}
	return s.Routes[s.Index]
}

// WithParams returns a copy of the route with the given params merged over
// the existing ones. The receiver is left untouched; child routes are shared
// with the copy.
func (r *Route) WithParams(params map[string]any) *Route {
	next := *r
	merged := make(map[string]any, len(r.Params)+len(params))
	for k, v := range r.Params {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}
	next.Params = merged
	return &next
}

// WithRoutes returns a copy of the route with a new child list and active
// index. The receiver is left untouched.
func (r *Route) WithRoutes(routes []*Route, index int) *Route {
	next := *r
	next.Routes = routes
	next.Index = index
	return &next
}

// FindRoute returns the first route with the given key in the slice, or nil.
func FindRoute(routes []*Route, key string) *Route {
	for _, r := range routes {
		if r.Key == key {
			return r
		}
	}
	return nil
}
