// SPDX-License-Identifier: MIT
// Package: petersen/builder
//
// pair_seq.go — flat edge-pair accumulator shared by topology constructors.
//
// Purpose:
//   - Accumulate the edge set as a flat sequence of vertex indices where
//     positions 2i and 2i+1 form edge i, matching core.NewGraphFromPairs.
//   - Reserve capacity up front so constructors with a known edge budget
//     (3n edges for GP(n,k)) never reallocate mid-build.
//
// Contract:
//   - Scratch-only: a pairSeq is owned exclusively by one constructor call
//     and never escapes it; release is automatic at function exit.
//   - Pure append semantics; no global state.

package builder

// indicesPerEdge is the stride of the flat layout: two endpoints per edge.
const indicesPerEdge = 2

// pairSeq is a flat, append-only accumulator of vertex-index pairs.
type pairSeq struct {
	buf []int // flattened pairs: buf[2i], buf[2i+1] are the endpoints of edge i
}

// newPairSeq returns an empty sequence with capacity reserved for exactly
// 'edges' pairs. The reservation is a performance hint, not a bound: appends
// beyond it still succeed via normal slice growth.
// Complexity: O(1) plus one allocation of 2*edges ints.
func newPairSeq(edges int) pairSeq {
	return pairSeq{buf: make([]int, 0, edges*indicesPerEdge)}
}

// appendPair records one edge (u,v) at the end of the sequence.
// Complexity: O(1) amortized.
func (s *pairSeq) appendPair(u, v int) {
	s.buf = append(s.buf, u, v)
}

// edgeCount reports the number of complete pairs recorded so far.
// Complexity: O(1).
func (s *pairSeq) edgeCount() int {
	return len(s.buf) / indicesPerEdge
}

// pairs exposes the flat backing sequence for materialization.
// Callers must not retain it past the owning constructor call.
// Complexity: O(1).
func (s *pairSeq) pairs() []int {
	return s.buf
}
