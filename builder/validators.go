// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function wraps the matching sentinel with the canonical method tag so
// callers can branch with errors.Is while logs keep their context prefix.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: n=<got> < min=<min>: <ErrTooFewVertices>" otherwise.
//
// Parameters:
//   - method: constructor name constant, e.g. MethodGeneralizedPetersen.
//   - got:    actual value supplied by user.
//   - min:    minimal acceptable value.
//
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		// Wrap the sentinel with deterministic context.
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateShift enforces the generalized Petersen inner-shift constraint:
// k > 0 and 2k < n. Returns a wrapped ErrShiftOutOfRange otherwise.
// The bound guarantees the inner shift neither coincides with nor exceeds
// half the ring, which would produce degenerate or duplicate edges.
// The comparison is k ≥ ⌈n/2⌉, equivalent to 2k ≥ n but immune to the
// overflow of 2*k for k near MaxInt.
//
// Parameters:
//   - method: canonical constructor name.
//   - n:      ring size (already validated ≥ MinPetersenRing).
//   - k:      inner shift to validate.
//
// Complexity: O(1).
func validateShift(method string, n, k int) error {
	if k <= 0 || k >= (n+1)/2 {
		return fmt.Errorf("%s: k=%d must satisfy 0 < k and 2k < n (n=%d): %w",
			method, k, n, ErrShiftOutOfRange)
	}

	return nil
}

// validateVertexBudget guards against integer overflow on quantities derived
// from n. perVertex is the largest per-index multiplier the constructor
// computes (6 for GP(n,k): a 3n-edge buffer of index pairs; 2 for C_n).
// Returns a wrapped ErrTooManyVertices when n*perVertex would overflow int.
//
// Complexity: O(1).
func validateVertexBudget(method string, n, perVertex int) error {
	if n > math.MaxInt/perVertex {
		return fmt.Errorf("%s: n=%d exceeds %d/%d: %w",
			method, n, math.MaxInt, perVertex, ErrTooManyVertices)
	}

	return nil
}
