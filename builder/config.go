// SPDX-License-Identifier: MIT
// Package: petersen/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn    (constant DefaultEdgeWeight)
//   • ring prefix = disabled           (global indices 0..2n-1)

package builder

import (
	"math/rand" // RNG for stochastic weight distributions
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic weight draws; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn WeightFn

	// Ring-aware labeling for two-ring topologies. When enabled, outer
	// vertices are labeled outerPrefix+j and inner vertices innerPrefix+j,
	// overriding idFn for GeneralizedPetersen. Empty prefixes resolve to
	// defaults below.
	ringPrefixed bool
	outerPrefix  string
	innerPrefix  string
}

// Deterministic defaults (named, no magic strings).
const (
	defaultOuterPrefix = "o" // outer-ring label prefix
	defaultInnerPrefix = "i" // inner-ring label prefix
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Options may leave the prefix fields empty; we resolve
// those to defaults here to keep downstream code branch-free.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		idFn:     DefaultIDFn,     // "0","1","2",...
		rng:      nil,             // no RNG unless explicitly set
		weightFn: DefaultWeightFn, // constant DefaultEdgeWeight
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve empty ring prefixes to defaults (deterministic fallback).
	if cfg.ringPrefixed {
		if cfg.outerPrefix == "" {
			cfg.outerPrefix = defaultOuterPrefix
		}
		if cfg.innerPrefix == "" {
			cfg.innerPrefix = defaultInnerPrefix
		}
	}

	// Return by value to encourage immutability for callers.
	return cfg
}
