package stromboli

// Helpers is the navigation handle passed to routed components: the current
// state snapshot plus dispatch and its convenience action creators.
//
// A Helpers value is immutable; the Container builds a new one only when the
// underlying state reference changes, so components may memoize on the
// handle itself.
type Helpers struct {
	dispatch func(Action) bool
	state    *State
}

// NewHelpers builds a navigation handle from a dispatch capability and a
// state snapshot.
func NewHelpers(dispatch func(Action) bool, state *State) *Helpers {
	return &Helpers{dispatch: dispatch, state: state}
}

// State returns the state snapshot the handle was built from.
func (h *Helpers) State() *State {
	return h.state
}

// Dispatch forwards an action to the owning container.
func (h *Helpers) Dispatch(action Action) bool {
	return h.dispatch(action)
}

// Navigate dispatches a NavigateAction for the named route.
func (h *Helpers) Navigate(name string, params map[string]any) bool {
	return h.dispatch(NavigateAction{Name: name, Params: params})
}

// Back dispatches a BackAction for the active route.
func (h *Helpers) Back() bool {
	return h.dispatch(BackAction{})
}

// SetParams dispatches a SetParamsAction targeting the route with the given
// key.
func (h *Helpers) SetParams(key string, params map[string]any) bool {
	return h.dispatch(SetParamsAction{Key: key, Params: params})
}
