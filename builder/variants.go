// SPDX-License-Identifier: MIT
// Package: petersen/builder
//
// variants.go — canonical catalog of famous generalized Petersen members.
//
// Design:
//   • Single source of truth for the named GP(n,k) members.
//   • Public-neutral type FamousName and an internal parameter dataset.
//   • The dataset is immutable; entries are part of the public contract.
//
// Determinism:
//   • Famous(name) delegates to GeneralizedPetersen(n,k), so labeling,
//     emission order and weights follow the same rules as direct calls.

package builder

import (
	"fmt"

	"github.com/graphforge/petersen/core"
)

// FamousName identifies a famous member of the GP family by name.
// Use these names in the Famous constructor.
type FamousName string

const (
	// Petersen is the classical Petersen graph GP(5,2): 10 vertices, 15 edges, 3-regular.
	Petersen FamousName = "petersen"
	// Duerer is the Dürer graph GP(6,2): 12 vertices, 18 edges.
	Duerer FamousName = "duerer"
	// MoebiusKantor is the Möbius–Kantor graph GP(8,3): 16 vertices, 24 edges.
	MoebiusKantor FamousName = "moebius-kantor"
	// Dodecahedral is the dodecahedral graph GP(10,2): 20 vertices, 30 edges.
	Dodecahedral FamousName = "dodecahedral"
	// Desargues is the Desargues graph GP(10,3): 20 vertices, 30 edges.
	Desargues FamousName = "desargues"
	// Nauru is the Nauru graph GP(12,5): 24 vertices, 36 edges.
	Nauru FamousName = "nauru"
)

// gpParams holds the (n,k) parameters of one catalog member.
type gpParams struct {
	N int // outer ring size
	K int // inner shift
}

// famousParams maps each FamousName to its GP(n,k) parameters.
// Every entry satisfies n ≥ 3, 0 < k, 2k < n by construction.
var famousParams = map[FamousName]gpParams{
	Petersen:      {N: 5, K: 2},
	Duerer:        {N: 6, K: 2},
	MoebiusKantor: {N: 8, K: 3},
	Dodecahedral:  {N: 10, K: 2},
	Desargues:     {N: 10, K: 3},
	Nauru:         {N: 12, K: 5},
}

// Famous returns a Constructor that builds the named catalog member.
// Unknown names surface as ErrOptionViolation (invalid parameter domain).
// Complexity: O(n) for the member's ring size.
func Famous(name FamousName) Constructor {
	// Capture name; BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// O(1) catalog lookup.
		p, ok := famousParams[name]
		if !ok {
			return fmt.Errorf("%s: unknown member %q: %w", MethodFamous, name, ErrOptionViolation)
		}
		// Delegate to the parametrized constructor with the same (g,cfg).
		return GeneralizedPetersen(p.N, p.K)(g, cfg)
	}
}
