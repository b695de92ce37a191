// SPDX-License-Identifier: MIT
// Package: petersen/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are implemented in impl_*.go / variants.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/graphforge/petersen/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/loops/multigraph/weighted).
//   - Preserve determinism for the same config and call order.
//
// Rationale: isolates topology logic behind a uniform function type.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted by design.
//
// Rationale:
//   - Single public entry-point ensures consistent option resolution & error wrapping.
//   - Enforces deterministic composition order of constructors.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrShiftOutOfRange, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// Create a new graph using the provided core graph options (O(1) here).
	g := core.NewGraph(gopts...)

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		// Defensive: reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			// Use a sentinel that communicates construction failure; keep %w for Is().
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		// Execute the constructor. Implementations must not panic; they must return errors.
		if err := fn(g, cfg); err != nil {
			// Wrap once at the API boundary; inner layers already added method context.
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// Success: return the fully constructed graph (deterministic for equal inputs).
	return g, nil
}

// BuildGeneralizedPetersen is a thin one-call helper: it creates a graph with
// gopts, resolves bopts, and runs GeneralizedPetersen(n,k) on it. The result
// has exactly 2n vertices and 3n edges (doubled for directed graphs).
// It returns sentinel errors; it never panics.
// Complexity: O(len(bopts)) + O(n).
func BuildGeneralizedPetersen(n, k int, gopts []core.GraphOption, bopts ...BuilderOption) (*core.Graph, error) {
	// Delegate to the orchestrator so option resolution and error wrapping
	// stay identical to composed builds.
	return BuildGraph(gopts, bopts, GeneralizedPetersen(n, k))
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go / variants.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via the resolved ID mapping in ascending index order.
//   - Emit edges in a stable, documented order.
//   - Honor core flags (Directed/Weighted/Loops/Multigraph) without silent degrade.
//   - Return only sentinel errors; NEVER panic at runtime.

// GeneralizedPetersen builds GP(n,k): 2n vertices, 3n edges (n ≥ 3, 0 < k, 2k < n).
// Complexity: O(n) vertices + O(n) edges; O(n) scratch for the pair buffer.
//func GeneralizedPetersen(n, k int) Constructor

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
// Complexity: O(n) vertices + O(n) edges; O(n) scratch for the pair buffer.
//func Cycle(n int) Constructor

// Famous builds a named famous member of the GP family (catalog in variants.go).
// Complexity: O(n) for the member's ring size.
//func Famous(name FamousName) Constructor
