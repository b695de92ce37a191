// SPDX-License-Identifier: MIT
// Package: petersen/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Topology constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic weight draws
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early and keep invariants tight.
// Ignored by GeneralizedPetersen when WithRingPrefix is also set.
// Complexity: O(1).
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		// Assign the provided function; used by all topology builders.
		c.idFn = fn
	}
}

// WithRingPrefix enables ring-aware vertex labels for GeneralizedPetersen:
// outer vertex j becomes outer+"j", inner vertex n+j becomes inner+"j".
// Empty values are allowed and interpreted as “use defaults” ("o"/"i").
// Complexity: O(1).
func WithRingPrefix(outer, inner string) BuilderOption {
	return func(c *builderConfig) {
		// Store as provided; defaults are resolved in newBuilderConfig.
		c.ringPrefixed = true
		c.outerPrefix, c.innerPrefix = outer, inner
	}
}

// WithRand provides an explicit RNG for stochastic weight distributions.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible weight draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator.
// The function receives the (possibly nil) RNG and MUST be pure w.r.t.
// input RNG state to preserve determinism. Panics on nil.
// Complexity: O(1).
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		// Fail fast; weight policy must be explicit if customized.
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		// Store generator; used only when the core graph is weighted.
		c.weightFn = fn
	}
}
