// SPDX-License-Identifier: MIT
// Package: petersen/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); 2n must fit in int (else ErrTooManyVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   • Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   • Honors core mode flags (Directed/Loops/Multigraph) without silent degrade.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(n) scratch for the pair buffer, released on return.
//
// Determinism:
//   • Deterministic IDs via cfg.idFn.
//   • Deterministic edge emission order by increasing i.
//   • Deterministic weights given fixed cfg.rng/weightFn.

package builder

import (
	"github.com/graphforge/petersen/core"
)

// cycleBudgetPerIndex is the scratch multiplier for C_n: one edge = two
// buffered indices per ring index.
const cycleBudgetPerIndex = indicesPerEdge * cycleEdgeKinds

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// C_n is the outer-ring primitive of the GP family: GP(n,k) contains it as
// its outer cycle.
func Cycle(n int) Constructor {
	// Return a closure capturing n; BuildGraph will pass (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		// Overflow guard on the 2n-int pair buffer.
		if err := validateVertexBudget(MethodCycle, n, cycleBudgetPerIndex); err != nil {
			return err
		}

		// Reserve exactly n ring edges.
		seq := newPairSeq(cycleEdgeKinds * n)

		// Emit ring edges in ascending i; i==n-1 wraps back to 0.
		for i := 0; i < n; i++ {
			seq.appendPair(i, (i+1)%n)
		}

		// Materialize: n vertices through the plain configured ID scheme.
		return applyPairs(g, cfg, MethodCycle, seq, n, cfg.idFn)
	}
}
