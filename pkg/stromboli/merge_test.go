package stromboli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tabsOfStacks() []*Route {
	return []*Route{
		{Key: "tab1", Name: "tab1", Routes: []*Route{
			{Key: "A", Name: "screenA", Params: map[string]any{"x": 1}},
		}},
		{Key: "tab2", Name: "tab2", Routes: []*Route{
			{Key: "B", Name: "screenB", Params: map[string]any{"y": 1}},
		}},
	}
}

// A parameter update aimed at one key keeps every other key's in-flight
// change: merging a next tree whose unrelated branch is stale must preserve
// the previous branch.
func TestMergeRoutesInterleavedUpdatesSurvive(t *testing.T) {
	prev := tabsOfStacks()
	// prev already carries an update to B that next does not know about.
	prev[1].Routes[0] = prev[1].Routes[0].WithParams(map[string]any{"y": 2})

	next := tabsOfStacks()
	next[0].Routes[0] = next[0].Routes[0].WithParams(map[string]any{"x": 2})

	merged := MergeRoutes("A", prev, next)

	require.Len(t, merged, 2)
	assert.Equal(t, 2, merged[0].Routes[0].Params["x"])
	assert.Equal(t, 2, merged[1].Routes[0].Params["y"])
}

// Children whose key is not the target pass through from prev by reference.
func TestMergeRoutesUntouchedChildrenShared(t *testing.T) {
	prev := tabsOfStacks()
	next := tabsOfStacks()
	next[0].Routes[0] = next[0].Routes[0].WithParams(map[string]any{"x": 2})

	merged := MergeRoutes("A", prev, next)

	assert.Same(t, next[0].Routes[0], merged[0].Routes[0])
	assert.Same(t, prev[1].Routes[0], merged[1].Routes[0])
}

// A target key absent from next's children keeps the previous child.
func TestMergeRoutesMissingMatch(t *testing.T) {
	prev := tabsOfStacks()
	next := tabsOfStacks()
	next[0].Routes = nil

	merged := MergeRoutes("A", prev, next)

	assert.Same(t, prev[0].Routes[0], merged[0].Routes[0])
}

// A next list shorter than prev keeps the extra prev branches whole.
func TestMergeRoutesShorterNext(t *testing.T) {
	prev := tabsOfStacks()
	next := []*Route{prev[0]}

	merged := MergeRoutes("B", prev, next)

	require.Len(t, merged, 2)
	assert.Same(t, prev[1], merged[1])
}

// Output ordering and length always follow prev.
func TestMergeRoutesPreservesOrder(t *testing.T) {
	prev := tabsOfStacks()
	next := tabsOfStacks()

	merged := MergeRoutes("A", prev, next)

	require.Len(t, merged, len(prev))
	for i := range prev {
		assert.Equal(t, prev[i].Key, merged[i].Key)
	}
}
