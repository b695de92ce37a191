// Package petersen is an in-memory toolkit for constructing generalized
// Petersen graphs GP(n,k) — and their famous members — deterministically.
//
// 🚀 What is petersen?
//
//	A small, thread-safe, pure-Go library built from two subpackages:
//		• core/    — fundamental Graph, Vertex, Edge types, thread-safe
//		             primitives and the flat edge-list constructor
//		• builder/ — the GeneralizedPetersen constructor, the Cycle ring
//		             primitive, and a catalog of famous GP members
//		             (Petersen, Dürer, Möbius–Kantor, Desargues, Nauru, ...)
//
// The generalized Petersen graph GP(n,k) consists of an outer n-cycle on
// vertices 0..n-1, an inner shift-k structure on vertices n..2n-1, and a
// perfect matching of spokes between the two rings: 2n vertices, 3n edges.
// When gcd(k,n) > 1 the inner structure decomposes into gcd(k,n) disjoint
// cycles — an emergent property of the edge set, never computed here.
//
// ✨ Why choose petersen?
//
//   - Deterministic – same (n,k) and options always yield the same graph
//   - Rock-solid guarantees – R/W locks, sentinel errors, fail-fast validation
//   - Pure Go – no cgo, no hidden deps
//   - Composable – functional options for vertex IDs, ring prefixes, weights
//
// Quick ASCII example, GP(5,2) — the classical Petersen graph:
//
//	      0
//	    /   \
//	  4       1      outer 5-cycle 0-1-2-3-4
//	  | 9   6 |      spokes i — i+5
//	  |  \ /  |      inner pentagram 5-7-9-6-8
//	  3---8---2
//
// Dive into builder/doc.go for the full constructor contracts.
//
//	go get github.com/graphforge/petersen
package petersen
