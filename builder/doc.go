// Package builder provides “functional-options”-style constructors for the
// generalized Petersen graph family GP(n,k) on top of the core package. It
// centralizes configuration, ID schemes, weight distributions, and validation
// logic, keeping implementations DRY, testable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID-scheme, weight function, ring prefixes.
//   - Topology constructors:
//     – GeneralizedPetersen(n,k): outer n-cycle + inner shift-k structure +
//     perfect matching of spokes; 2n vertices, 3n edges.
//     – Cycle(n):          the plain ring primitive C_n.
//     – Famous(name):      catalog of famous GP members (Petersen, Dürer,
//     Möbius–Kantor, dodecahedral, Desargues, Nauru).
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//     – WithRingPrefix:    ring-aware labels ("o0"… outer, "i0"… inner).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//   - Validation helpers:
//     – validateMin:          ensure integer ≥ minimum.
//     – validateShift:        ensure 0 < k and 2k < n.
//     – validateVertexBudget: guard against integer overflow on 2n/3n/6n.
//
// Guarantees:
//
//   - Fail-fast validation: every parameter check runs before the edge
//     buffer is allocated; an invalid call leaves no partial side effects.
//   - Determinism: the same (n,k) and options always produce the same graph.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; topology constructors never panic, they return sentinel
//     errors branchable with errors.Is.
//   - Reentrancy: constructors retain no state across calls; concurrent
//     builds of independent graphs need no synchronization.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package builder
