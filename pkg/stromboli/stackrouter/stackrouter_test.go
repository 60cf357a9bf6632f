package stackrouter

import (
	"context"
	"testing"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	r, err := New("home",
		Route{Name: "home", Path: "home"},
		Route{Name: "profile", Path: "profile/{id}"},
		Route{Name: "settings"},
	)
	require.NoError(t, err)
	return r
}

func TestNewUnknownInitialRoute(t *testing.T) {
	_, err := New("missing", Route{Name: "home"})
	require.Error(t, err)
}

func TestInit(t *testing.T) {
	r := newTestRouter(t)

	state := r.StateForAction(stromboli.InitAction{}, nil)

	require.NotNil(t, state)
	require.Len(t, state.Routes, 1)
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, "home", state.Routes[0].Name)
	assert.NotEmpty(t, state.Routes[0].Key)

	// Init against an existing state is a no-op by reference.
	assert.Same(t, state, r.StateForAction(stromboli.InitAction{}, state))
}

func TestNavigatePushes(t *testing.T) {
	r := newTestRouter(t)
	state := r.StateForAction(stromboli.InitAction{}, nil)

	next := r.StateForAction(stromboli.NavigateAction{
		Name:   "profile",
		Params: map[string]any{"id": "42"},
	}, state)

	require.NotNil(t, next)
	require.Len(t, next.Routes, 2)
	assert.Equal(t, 1, next.Index)
	assert.Equal(t, "profile", next.Routes[1].Name)
	assert.Equal(t, "42", next.Routes[1].Params["id"])
	// The untouched route is shared with the previous state.
	assert.Same(t, state.Routes[0], next.Routes[0])
}

func TestNavigateUnknownRoute(t *testing.T) {
	r := newTestRouter(t)
	state := r.StateForAction(stromboli.InitAction{}, nil)

	assert.Nil(t, r.StateForAction(stromboli.NavigateAction{Name: "missing"}, state))
}

func TestBackPops(t *testing.T) {
	r := newTestRouter(t)
	state := r.StateForAction(stromboli.InitAction{}, nil)
	state = r.StateForAction(stromboli.NavigateAction{Name: "profile"}, state)

	next := r.StateForAction(stromboli.BackAction{}, state)

	require.NotNil(t, next)
	require.Len(t, next.Routes, 1)
	assert.Equal(t, 0, next.Index)
	assert.Equal(t, "home", next.Routes[0].Name)
}

func TestBackAtRoot(t *testing.T) {
	r := newTestRouter(t)
	state := r.StateForAction(stromboli.InitAction{}, nil)

	assert.Nil(t, r.StateForAction(stromboli.BackAction{}, state))
}

func TestBackFromKey(t *testing.T) {
	r := newTestRouter(t)
	state := r.StateForAction(stromboli.InitAction{}, nil)
	state = r.StateForAction(stromboli.NavigateAction{Name: "profile"}, state)
	state = r.StateForAction(stromboli.NavigateAction{Name: "settings"}, state)

	// Back from the profile route pops it and everything above it.
	next := r.StateForAction(stromboli.BackAction{Key: state.Routes[1].Key}, state)

	require.NotNil(t, next)
	require.Len(t, next.Routes, 1)
	assert.Equal(t, "home", next.Routes[0].Name)

	// Popping the root, or an unknown key, does not apply.
	assert.Nil(t, r.StateForAction(stromboli.BackAction{Key: state.Routes[0].Key}, state))
	assert.Nil(t, r.StateForAction(stromboli.BackAction{Key: "missing"}, state))
}

func TestSetParamsStructuralSharing(t *testing.T) {
	r := newTestRouter(t)
	state := r.StateForAction(stromboli.InitAction{}, nil)
	state = r.StateForAction(stromboli.NavigateAction{
		Name:   "profile",
		Params: map[string]any{"id": "42"},
	}, state)

	next := r.StateForAction(stromboli.SetParamsAction{
		Key:    state.Routes[1].Key,
		Params: map[string]any{"id": "43"},
	}, state)

	require.NotNil(t, next)
	assert.Equal(t, "43", next.Routes[1].Params["id"])
	assert.Same(t, state.Routes[0], next.Routes[0])
	assert.NotSame(t, state.Routes[1], next.Routes[1])
	assert.Equal(t, "42", state.Routes[1].Params["id"])
}

func TestSetParamsUnknownKey(t *testing.T) {
	r := newTestRouter(t)
	state := r.StateForAction(stromboli.InitAction{}, nil)

	assert.Nil(t, r.StateForAction(stromboli.SetParamsAction{Key: "missing"}, state))
}

func TestActionForPath(t *testing.T) {
	r := newTestRouter(t)

	action := r.ActionForPath("profile/42", map[string]string{"ref": "share"})

	require.NotNil(t, action)
	nav, ok := action.(stromboli.NavigateAction)
	require.True(t, ok)
	assert.Equal(t, "profile", nav.Name)
	assert.Equal(t, "42", nav.Params["id"])
	assert.Equal(t, "share", nav.Params["ref"])
}

func TestActionForPathNoMatch(t *testing.T) {
	r := newTestRouter(t)

	assert.Nil(t, r.ActionForPath("profile/42/posts", nil))
	assert.Nil(t, r.ActionForPath("nowhere", nil))
	// "settings" has no path pattern, so it is not deep-linkable.
	assert.Nil(t, r.ActionForPath("settings", nil))
}

// End to end: a stateful container over a stack router starts at the
// router's initial state, and a back dispatch at the root is a no-op.
func TestContainerEndToEnd(t *testing.T) {
	r := newTestRouter(t)

	c, err := stromboli.New(stromboli.Config{Router: r})
	require.NoError(t, err)
	require.NoError(t, c.Mount(context.Background()))
	defer c.Unmount()

	initial := c.State()
	require.Len(t, initial.Routes, 1)
	assert.Equal(t, "home", initial.Routes[0].Name)

	assert.False(t, c.Dispatch(stromboli.BackAction{}))
	assert.Same(t, initial, c.State())

	require.True(t, c.OpenURL("myapp://profile/42"))
	assert.Equal(t, "profile", c.State().ActiveRoute().Name)
	assert.Equal(t, "42", c.State().ActiveRoute().Params["id"])

	assert.True(t, c.Dispatch(stromboli.BackAction{}))
	assert.Equal(t, "home", c.State().ActiveRoute().Name)
}
