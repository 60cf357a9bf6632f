package stromboli

// Built-in action type tags. Routers may define additional tags; the
// Container treats unknown tags as opaque and forwards them unchanged.
const (
	ActionInit      = "INIT"
	ActionBack      = "BACK"
	ActionNavigate  = "NAVIGATE"
	ActionSetParams = "SET_PARAMS"
)

// Action is an immutable instruction describing a requested navigation
// change. Implementations must not be mutated after construction.
type Action interface {
	// ActionType returns the string tag identifying the action kind.
	ActionType() string
}

// InitAction asks the router to produce its initial navigation state.
// The Container synthesizes one at construction time in stateful mode.
type InitAction struct{}

// ActionType implements Action.
func (InitAction) ActionType() string { return ActionInit }

// BackAction requests backward navigation. When Key is set, the router
// should navigate back from the route with that key; when empty, from the
// active route.
type BackAction struct {
	Key string
}

// ActionType implements Action.
func (BackAction) ActionType() string { return ActionBack }

// NavigateAction requests forward navigation to a named route.
type NavigateAction struct {
	Name   string
	Params map[string]any
}

// ActionType implements Action.
func (NavigateAction) ActionType() string { return ActionNavigate }

// SetParamsAction updates the params of the route identified by Key.
//
// Parameter updates are the one action class the Container does not commit
// by wholesale state replacement: several screens may each update their own
// params while mounting, so commits are reconciled with MergeRoutes against
// the latest state rather than the state captured at dispatch time.
type SetParamsAction struct {
	Key    string
	Params map[string]any
}

// ActionType implements Action.
func (SetParamsAction) ActionType() string { return ActionSetParams }

// TargetKey implements ParamsUpdate.
func (a SetParamsAction) TargetKey() string { return a.Key }

// ParamsUpdate is the capability a parameter-update action must carry so the
// Container can reconcile it with MergeRoutes. Router-defined actions using
// the ActionSetParams tag should implement it; an action carrying the tag
// without the capability falls back to wholesale state replacement.
type ParamsUpdate interface {
	Action
	TargetKey() string
}
