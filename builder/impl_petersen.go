// SPDX-License-Identifier: MIT
// Package: petersen/builder
//
// impl_petersen.go — implementation of GeneralizedPetersen(n,k) constructor.
//
// Canonical definition:
//   • GP(n,k) = outer n-cycle on vertices 0..n-1, inner shift-k structure on
//     vertices n..2n-1 (inner vertex n+j corresponds to outer vertex j), and
//     a perfect matching of spokes i — i+n.
//   • 2n vertices, 3n edges: n outer-cycle edges, n spokes, n inner edges.
//   • When gcd(k,n) > 1 the inner edges form gcd(k,n) disjoint cycles. That
//     decomposition is an emergent property of the edge set: the edge count
//     stays n and nothing here computes or exposes the cycle count.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • 0 < k and 2k < n (else ErrShiftOutOfRange); the bound keeps the inner
//     shift clear of half the ring, where edges degenerate or duplicate.
//   • 6n must fit in int (else ErrTooManyVertices) — no silent wrapping.
//   • All validation precedes the pair-buffer allocation: a failed call has
//     no side effects on g.
//   • Emission order per index i: outer (i, (i+1) mod n), spoke (i, i+n),
//     inner (i+n, ((i+k) mod n)+n).
//   • Vertex IDs via the resolved ring mapping (cfg.idFn over global indices,
//     or ring prefixes when WithRingPrefix is set).
//   • Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   • Honors core mode flags (Directed/Loops/Multigraph) without silent degrade.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) — single pass, O(1) work per index, no data-dependent
//     branching beyond the modulo wraps.
//   • Space: O(n) scratch for the pair buffer, released on return.
//
// Determinism:
//   • Deterministic IDs via the resolved mapping.
//   • Deterministic edge emission order by increasing i.
//   • Deterministic weights given fixed cfg.rng/weightFn.

package builder

import (
	"github.com/graphforge/petersen/core"
)

// petersenBudgetPerIndex is the scratch multiplier validated against
// overflow: each ring index contributes 3 edges = 6 buffered indices.
const petersenBudgetPerIndex = petersenRings * petersenEdgeKinds

// GeneralizedPetersen returns a Constructor that builds GP(n,k).
func GeneralizedPetersen(n, k int) Constructor {
	// Return a closure capturing (n,k); BuildGraph will pass (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate the ring size first (fail fast, no work on invalid input).
		if err := validateMin(MethodGeneralizedPetersen, n, MinPetersenRing); err != nil {
			return err
		}
		// Then the inner-shift constraint 0 < k, 2k < n.
		if err := validateShift(MethodGeneralizedPetersen, n, k); err != nil {
			return err
		}
		// Then the overflow guard on 2n/3n/6n before any allocation.
		if err := validateVertexBudget(MethodGeneralizedPetersen, n, petersenBudgetPerIndex); err != nil {
			return err
		}

		// Reserve the pair buffer for exactly 3n edges; capacity hint only,
		// correctness does not depend on it.
		seq := newPairSeq(petersenEdgeKinds * n)

		// Single pass: emit the three edge kinds for each ring index.
		// All operands are non-negative, so % is the mathematical remainder.
		for i := 0; i < n; i++ {
			// Outer-cycle edge: consecutive outer vertices, wrapping at n.
			seq.appendPair(i, (i+1)%n)
			// Spoke edge: outer vertex i to its corresponding inner vertex.
			seq.appendPair(i, i+n)
			// Inner edge: shift by k within the inner ring's own index space.
			seq.appendPair(i+n, ((i+k)%n)+n)
		}

		// Materialize the validated edge list: 2n vertices, 3n edges.
		return applyPairs(g, cfg, MethodGeneralizedPetersen, seq, petersenRings*n, ringIDFn(cfg, n))
	}
}
