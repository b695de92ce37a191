// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGeneralizedPetersen is the canonical name for the GeneralizedPetersen constructor.
	MethodGeneralizedPetersen = "GeneralizedPetersen"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodFamous is the canonical name for the Famous catalog constructor.
	MethodFamous = "Famous"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops or
// multi-edges. Complexity impact: Cycle builds O(n) edges; n >= MinCycleNodes.
const MinCycleNodes = 3

// MinPetersenRing is the smallest outer-ring size for GP(n,k). The outer ring
// is an n-cycle, so the cycle minimum applies; together with 2k < n this
// leaves GP(3,1) as the smallest member (6 vertices, 9 edges).
const MinPetersenRing = 3

//-----------------------------------------------------------------------------
// Petersen Family Shape Multipliers
//-----------------------------------------------------------------------------

// petersenRings is the vertex multiplier of GP(n,k): outer + inner ring.
const petersenRings = 2

// petersenEdgeKinds is the edge multiplier of GP(n,k): each ring index emits
// one outer-cycle edge, one spoke, and one inner edge.
const petersenEdgeKinds = 3

// cycleEdgeKinds is the edge multiplier of C_n: one ring edge per index.
const cycleEdgeKinds = 1

//-----------------------------------------------------------------------------
// Default Weights
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the default weight assigned to each edge on weighted
// graphs when no custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1
