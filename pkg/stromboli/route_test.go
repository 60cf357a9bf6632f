package stromboli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// WithParams merges over existing params on a copy and leaves the receiver
// and its children untouched.
func TestRouteWithParams(t *testing.T) {
	child := &Route{Key: "child-1"}
	r := &Route{
		Key:    "profile-1",
		Params: map[string]any{"id": "42", "tab": "posts"},
		Routes: []*Route{child},
	}

	next := r.WithParams(map[string]any{"id": "43"})

	assert.Equal(t, "43", next.Params["id"])
	assert.Equal(t, "posts", next.Params["tab"])
	assert.Equal(t, "42", r.Params["id"])
	assert.Same(t, child, next.Routes[0])
}

func TestStateActiveRoute(t *testing.T) {
	s := &State{
		Index: 1,
		Routes: []*Route{
			{Key: "home-1"},
			{Key: "detail-2"},
		},
	}

	require.NotNil(t, s.ActiveRoute())
	assert.Equal(t, "detail-2", s.ActiveRoute().Key)

	var nilState *State
	assert.Nil(t, nilState.ActiveRoute())
	assert.Nil(t, (&State{Index: 3}).ActiveRoute())
}

func TestFindRoute(t *testing.T) {
	routes := []*Route{{Key: "a"}, {Key: "b"}}

	assert.Same(t, routes[1], FindRoute(routes, "b"))
	assert.Nil(t, FindRoute(routes, "c"))
}
