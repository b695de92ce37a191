// Package builder provides internal helper functions used by Constructor
// implementations to materialize accumulated edge lists into a core.Graph.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the canonical method tag.
//   - Performance: avoid unnecessary allocations; reuse loop variables.
package builder

import (
	"fmt"
	"strconv"

	"github.com/graphforge/petersen/core"
)

// ringIDFn returns the index→ID mapping for a two-ring topology on 2n
// vertices. With ring prefixes enabled, outer index j maps to outerPrefix+j
// and inner index n+j to innerPrefix+j; otherwise cfg.idFn is applied to the
// global index directly.
// Complexity: O(1) to build; O(digits) per call.
func ringIDFn(cfg builderConfig, n int) IDFn {
	if !cfg.ringPrefixed {
		// Plain scheme: global indices 0..2n-1 through the configured IDFn.
		return cfg.idFn
	}
	return func(idx int) string {
		if idx < n {
			return cfg.outerPrefix + strconv.Itoa(idx)
		}
		return cfg.innerPrefix + strconv.Itoa(idx-n)
	}
}

// applyPairs materializes a fully validated edge-pair sequence into g:
// it adds vertexCount vertices via vid(0..vertexCount-1), then emits each
// pair as an edge in sequence order. Weight policy: if g.Weighted() then
// cfg.weightFn(cfg.rng) per edge, else 0. For directed graphs every pair is
// mirrored to preserve the undirected topology's symmetry.
//
// Any core failure is wrapped with the method tag AND ErrConstructFailed so
// callers can branch on either sentinel.
//
// Complexity: O(vertexCount + edges); O(1) extra space.
func applyPairs(g *core.Graph, cfg builderConfig, method string, seq pairSeq, vertexCount int, vid IDFn) error {
	var (
		i   int
		err error
	)
	// Add all vertices first so the hand-off is never partially indexed.
	for i = 0; i < vertexCount; i++ {
		if err = g.AddVertex(vid(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, vid(i), ErrConstructFailed, err)
		}
	}

	// Cache mode flags once for single-branch logic in the tight loop.
	useWeight := g.Weighted()
	directed := g.Directed()

	flat := seq.pairs()
	var uID, vID string
	var w int64
	for i = 0; i+1 < len(flat); i += indicesPerEdge {
		uID = vid(flat[i])
		vID = vid(flat[i+1])

		// Decide weight exactly once per realized edge (deterministic per rng state).
		if useWeight {
			w = cfg.weightFn(cfg.rng)
		} else {
			w = 0
		}

		// Add the edge; core enforces loop/multi-edge policy.
		if _, err = g.AddEdge(uID, vID, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w: %w", method, uID, vID, w, ErrConstructFailed, err)
		}
		// Mirror for directed graphs to preserve ring symmetry explicitly.
		if directed {
			if _, err = g.AddEdge(vID, uID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w: %w", method, vID, uID, w, ErrConstructFailed, err)
			}
		}
	}

	return nil
}
