// SPDX-License-Identifier: MIT
// Package: petersen/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` with the canonical method tag.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a ring-size parameter is smaller than the
// allowed minimum for the requested constructor (n ≥ 3 for both the plain
// cycle and the generalized Petersen outer ring).
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrShiftOutOfRange indicates that the inner shift k violates the
// generalized Petersen constraint 0 < k and 2k < n. Outside that range the
// inner structure degenerates into duplicate or coincident edges.
// Usage: if errors.Is(err, ErrShiftOutOfRange) { /* fix k */ }.
var ErrShiftOutOfRange = errors.New("builder: inner shift out of range")

// ErrTooManyVertices indicates that n is large enough for a derived quantity
// (2n vertices, 3n edges, 6n buffered indices) to overflow the platform int.
// The builder refuses to wrap silently.
// Usage: if errors.Is(err, ErrTooManyVertices) { /* reduce n */ }.
var ErrTooManyVertices = errors.New("builder: parameter too large")

// ErrConstructFailed indicates the graph could not be materialized from a
// fully validated edge list (a core-level policy rejection or a nil/misused
// constructor). Core failures are wrapped so both sentinels remain visible.
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect wrapped cause */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates that a parameter outside any numeric contract
// was requested — e.g. an unknown Famous(...) catalog name. NOTE: WithX(...)
// option constructors panic on meaningless values by design; this sentinel is
// for validations that must surface as errors rather than panics.
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct the value */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
//    This preserves the sentinel for errors.Is while adding a deterministic
//    context prefix such as "GeneralizedPetersen: n=2 < min=3".
//
// 2) Priority (tie-break guidance when multiple validations fail):
//    • ErrTooFewVertices  — ring size first (n must be a valid ring).
//    • ErrShiftOutOfRange — then the inner shift constraint.
//    • ErrTooManyVertices — then the overflow guard on derived counts.
//    • ErrConstructFailed — only when a validated edge list is rejected.
//
// 3) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error
//    strings. Provide edge cases: n=2, k=0, k<0, 2k==n, unknown Famous name.
