// SPDX-License-Identifier: MIT
//
// File: edge_list.go
// Role: Bulk graph construction from a flat vertex-index pair list.
// Policy:
//   - Validation is complete before any vertex or edge is created: a Graph
//     is never observable in a partially-validated state.
//   - Vertex IDs are the decimal renderings of the indices 0..vertexCount-1.
//   - Edge i connects pairs[2i] and pairs[2i+1], in list order.

package core

import (
	"fmt"
	"strconv"
)

const pairStride = 2 // two indices per edge in the flat list

// NewGraphFromPairs builds a Graph from a flat sequence of vertex-index
// pairs: positions 2i and 2i+1 form edge i. vertexCount vertices are created
// with decimal IDs "0".."vertexCount-1", so indices not mentioned in pairs
// still yield (isolated) vertices. Directedness, weights, loops and
// multi-edge policy follow the supplied GraphOptions; every edge is created
// with weight 0.
//
// Validation (all before any mutation):
//   - vertexCount ≥ 1, else ErrBadVertexCount.
//   - len(pairs) is even, else ErrOddPairList.
//   - every index lies in [0, vertexCount), else ErrIndexOutOfRange.
//
// Edge creation failures (loop/multi-edge policy violations) propagate from
// AddEdge wrapped with the offending pair's position.
//
// The builder package materializes its constructors through its own path so
// it can honor custom ID schemes and weight policies; for default decimal IDs
// and zero weights the two paths produce identical graphs, and the builder
// tests pin that equivalence.
//
// Complexity: O(len(pairs) + vertexCount).
func NewGraphFromPairs(pairs []int, vertexCount int, opts ...GraphOption) (*Graph, error) {
	// Validate the vertex budget first: an empty graph is not constructible
	// from an edge list (vertex count drives the ID range).
	if vertexCount < 1 {
		return nil, fmt.Errorf("NewGraphFromPairs: vertexCount=%d: %w", vertexCount, ErrBadVertexCount)
	}
	// A flat pair list must contain complete pairs.
	if len(pairs)%pairStride != 0 {
		return nil, fmt.Errorf("NewGraphFromPairs: len(pairs)=%d: %w", len(pairs), ErrOddPairList)
	}
	// Range-check every index before touching the graph.
	for pos, idx := range pairs {
		if idx < 0 || idx >= vertexCount {
			return nil, fmt.Errorf("NewGraphFromPairs: pairs[%d]=%d outside [0,%d): %w",
				pos, idx, vertexCount, ErrIndexOutOfRange)
		}
	}

	// Allocate the graph only after validation succeeded.
	g := NewGraph(opts...)

	// Create all vertices up front so isolated indices are represented.
	for i := 0; i < vertexCount; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("NewGraphFromPairs: AddVertex(%d): %w", i, err)
		}
	}

	// Emit edges in list order; AddEdge enforces loop/multi-edge policy.
	for i := 0; i+1 < len(pairs); i += pairStride {
		u := strconv.Itoa(pairs[i])
		v := strconv.Itoa(pairs[i+1])
		if _, err := g.AddEdge(u, v, 0); err != nil {
			return nil, fmt.Errorf("NewGraphFromPairs: AddEdge(%s→%s) at pair %d: %w",
				u, v, i/pairStride, err)
		}
	}

	return g, nil
}
