package stromboli

// Router is the pluggable policy that maps actions to navigation states and
// deep-link paths to actions. The Container consumes this contract but does
// not implement it; see the stackrouter package for a reference
// implementation.
//
// StateForAction returns the state that results from applying the action to
// the current state. It returns nil when the action does not apply, and the
// identical *State pointer when the action causes no change; the Container
// treats both as a no-op. When called with a nil state and an InitAction it
// returns the initial state.
//
// Routers must preserve structural sharing: subtrees untouched by an action
// keep their previous references in the returned state. The Container's
// change detection and route merging compare by pointer identity, so this is
// part of the contract, not an optimization.
//
// ActionForPath resolves a deep-link path and its params into an action, or
// nil when no route matches. A nil result is not an error.
type Router interface {
	StateForAction(action Action, state *State) *State
	ActionForPath(path string, params map[string]string) Action
}
