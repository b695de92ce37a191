// Package builder provides edge-weight distribution helpers used by graph
// constructors on weighted graphs. Unweighted graphs never observe these.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces the weight for one edge. It receives the configured
// RNG (possibly nil) and must be deterministic for a fixed RNG state.
type WeightFn func(r *rand.Rand) int64

// DefaultWeightFn returns the constant DefaultEdgeWeight regardless of RNG.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn yielding the fixed value w.
// Complexity: O(1). Never panics.
func ConstantWeightFn(w int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return w
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly from [min,max].
// A nil RNG falls back to DefaultEdgeWeight so unseeded builds stay
// deterministic. Panics if min > max (programmer error in configuration).
// Complexity: O(1) per draw.
func UniformWeightFn(min, max int64) WeightFn {
	if min > max {
		panic(fmt.Sprintf("builder: UniformWeightFn(min=%d > max=%d)", min, max))
	}
	return func(r *rand.Rand) int64 {
		if r == nil {
			// No RNG configured → deterministic fallback.
			return DefaultEdgeWeight
		}
		// Int63n is exclusive of the bound, hence the +1 for a closed interval.
		return min + r.Int63n(max-min+1)
	}
}

// WithConstantWeight sets the weight policy to ConstantWeightFn(w).
// Complexity: O(1).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets the weight policy to UniformWeightFn(min,max).
// Panics if min > max. Complexity: O(1).
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
