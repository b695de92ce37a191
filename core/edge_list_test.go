// Package core_test contains functional tests for NewGraphFromPairs, the
// bulk edge-list constructor: validation order, index bounds, policy
// propagation and directedness handling.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphforge/petersen/core"
)

// TestNewGraphFromPairs_Square builds a 4-cycle from a flat pair list and
// verifies counts and mirrored adjacency.
func TestNewGraphFromPairs_Square(t *testing.T) {
	t.Parallel()

	// 0-1, 1-2, 2-3, 3-0.
	g, err := core.NewGraphFromPairs([]int{0, 1, 1, 2, 2, 3, 3, 0}, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount()) // one vertex per index
	assert.Equal(t, 4, g.EdgeCount())   // one edge per pair
	assert.True(t, g.HasEdge("0", "1")) // pair order
	assert.True(t, g.HasEdge("1", "0")) // undirected mirror
	assert.False(t, g.HasEdge("0", "2"))
}

// TestNewGraphFromPairs_IsolatedVertices verifies that indices absent from
// the pair list still become vertices.
func TestNewGraphFromPairs_IsolatedVertices(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraphFromPairs([]int{0, 1}, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasVertex("4")) // isolated but present
}

// TestNewGraphFromPairs_Validation covers the fail-fast validation paths:
// nothing is constructed when any precondition fails.
func TestNewGraphFromPairs_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pairs   []int
		vc      int
		wantErr error
	}{
		{name: "zero vertex count", pairs: []int{0, 1}, vc: 0, wantErr: core.ErrBadVertexCount},
		{name: "negative vertex count", pairs: nil, vc: -3, wantErr: core.ErrBadVertexCount},
		{name: "odd pair list", pairs: []int{0, 1, 2}, vc: 3, wantErr: core.ErrOddPairList},
		{name: "negative index", pairs: []int{0, -1}, vc: 2, wantErr: core.ErrIndexOutOfRange},
		{name: "index at bound", pairs: []int{0, 2}, vc: 2, wantErr: core.ErrIndexOutOfRange},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := core.NewGraphFromPairs(tc.pairs, tc.vc)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestNewGraphFromPairs_PolicyPropagation verifies that AddEdge policy
// rejections surface through the bulk constructor unchanged.
func TestNewGraphFromPairs_PolicyPropagation(t *testing.T) {
	t.Parallel()

	// Self-loop with loops disabled.
	_, err := core.NewGraphFromPairs([]int{0, 0}, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// Self-loop with loops enabled.
	g, err := core.NewGraphFromPairs([]int{0, 0}, 1, core.WithLoops())
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	// Duplicate pair with multi-edges disabled (mirror makes 1-0 a duplicate of 0-1).
	_, err = core.NewGraphFromPairs([]int{0, 1, 1, 0}, 2)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// Duplicate pair with multi-edges enabled.
	g, err = core.NewGraphFromPairs([]int{0, 1, 1, 0}, 2, core.WithMultiEdges())
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

// TestNewGraphFromPairs_Directed verifies one-way adjacency under the
// directed option.
func TestNewGraphFromPairs_Directed(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraphFromPairs([]int{0, 1, 1, 2}, 3, core.WithDirected(true))
	require.NoError(t, err)

	assert.True(t, g.HasEdge("0", "1"))
	assert.False(t, g.HasEdge("1", "0")) // no mirror on directed graphs
	assert.Equal(t, 2, g.EdgeCount())
}
