// Package core_test contains functional tests for the Graph primitives:
// vertex/edge insertion, policy enforcement, adjacency queries and the
// deterministic getters.
package core_test

import (
	"errors"
	"testing"

	"github.com/graphforge/petersen/core"
)

// TestAddVertex verifies ID validation and idempotent insertion.
func TestAddVertex(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()

	// Empty IDs are rejected.
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("AddVertex(\"\"): want ErrEmptyVertexID, got %v", err)
	}

	// First insertion succeeds.
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex(a): unexpected error %v", err)
	}
	if !g.HasVertex("a") {
		t.Error("HasVertex(a): want true after AddVertex")
	}

	// Re-adding is a no-op.
	if err := g.AddVertex("a"); err != nil {
		t.Errorf("AddVertex(a) twice: want nil, got %v", err)
	}
	if got := g.VertexCount(); got != 1 {
		t.Errorf("VertexCount: want 1, got %d", got)
	}
}

// TestAddEdge_PolicyEnforcement verifies weight, loop and multi-edge policies
// on a default (undirected, unweighted, simple) graph.
func TestAddEdge_PolicyEnforcement(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()

	// Endpoints are auto-vivified.
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("AddEdge(a,b): unexpected error %v", err)
	}
	if !g.HasVertex("a") || !g.HasVertex("b") {
		t.Error("AddEdge should have created both endpoints")
	}

	// Undirected adjacency is mirrored: both orders are visible.
	if !g.HasEdge("a", "b") || !g.HasEdge("b", "a") {
		t.Error("HasEdge: undirected edge must be visible in both directions")
	}

	// Non-zero weight on an unweighted graph is rejected.
	if _, err := g.AddEdge("a", "c", 7); !errors.Is(err, core.ErrBadWeight) {
		t.Errorf("AddEdge weight on unweighted graph: want ErrBadWeight, got %v", err)
	}

	// Self-loops are rejected by default.
	if _, err := g.AddEdge("a", "a", 0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("AddEdge(a,a): want ErrLoopNotAllowed, got %v", err)
	}

	// Parallel edges are rejected by default, in either endpoint order.
	if _, err := g.AddEdge("a", "b", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("AddEdge(a,b) twice: want ErrMultiEdgeNotAllowed, got %v", err)
	}
	if _, err := g.AddEdge("b", "a", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("AddEdge(b,a) after (a,b): want ErrMultiEdgeNotAllowed, got %v", err)
	}
}

// TestAddEdge_OptIn verifies that weights, loops and multi-edges work once
// enabled at construction time.
func TestAddEdge_OptIn(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())

	if _, err := g.AddEdge("a", "b", 5); err != nil {
		t.Fatalf("weighted AddEdge: unexpected error %v", err)
	}
	if _, err := g.AddEdge("a", "a", 1); err != nil {
		t.Errorf("loop AddEdge: unexpected error %v", err)
	}
	if _, err := g.AddEdge("a", "b", 2); err != nil {
		t.Errorf("parallel AddEdge: unexpected error %v", err)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount: want 3, got %d", got)
	}
}

// TestDirectedAdjacency verifies one-way visibility on directed graphs.
func TestDirectedAdjacency(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true))
	if _, err := g.AddEdge("u", "v", 0); err != nil {
		t.Fatalf("AddEdge(u,v): unexpected error %v", err)
	}

	if !g.HasEdge("u", "v") {
		t.Error("HasEdge(u,v): want true")
	}
	if g.HasEdge("v", "u") {
		t.Error("HasEdge(v,u): want false for a directed edge")
	}

	// Neighbors of v must exclude the incoming directed edge.
	edges, err := g.Neighbors("v")
	if err != nil {
		t.Fatalf("Neighbors(v): unexpected error %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("Neighbors(v): want 0 outgoing edges, got %d", len(edges))
	}
}

// TestNeighborIDsAndDegree verifies adjacency queries on a small star.
func TestNeighborIDsAndDegree(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	// Star: c — a, c — b, c — d.
	for _, leaf := range []string{"a", "b", "d"} {
		if _, err := g.AddEdge("c", leaf, 0); err != nil {
			t.Fatalf("AddEdge(c,%s): unexpected error %v", leaf, err)
		}
	}

	ids, err := g.NeighborIDs("c")
	if err != nil {
		t.Fatalf("NeighborIDs(c): unexpected error %v", err)
	}
	want := []string{"a", "b", "d"}
	if len(ids) != len(want) {
		t.Fatalf("NeighborIDs(c): want %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("NeighborIDs(c)[%d]: want %s, got %s", i, want[i], ids[i])
		}
	}

	deg, err := g.Degree("c")
	if err != nil {
		t.Fatalf("Degree(c): unexpected error %v", err)
	}
	if deg != 3 {
		t.Errorf("Degree(c): want 3, got %d", deg)
	}

	leafDeg, err := g.Degree("a")
	if err != nil {
		t.Fatalf("Degree(a): unexpected error %v", err)
	}
	if leafDeg != 1 {
		t.Errorf("Degree(a): want 1, got %d", leafDeg)
	}

	// Missing vertices surface the sentinel.
	if _, err = g.Degree("zzz"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Degree(zzz): want ErrVertexNotFound, got %v", err)
	}
	if _, err = g.NeighborIDs("zzz"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("NeighborIDs(zzz): want ErrVertexNotFound, got %v", err)
	}
}

// TestGettersDeterminism verifies sorted, stable output of Vertices/Edges.
func TestGettersDeterminism(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for _, id := range []string{"b", "a", "c"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%s): unexpected error %v", id, err)
		}
	}
	got := g.Vertices()
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vertices[%d]: want %s, got %s", i, want[i], got[i])
		}
	}

	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("AddEdge(a,b): unexpected error %v", err)
	}
	if _, err := g.AddEdge("b", "c", 0); err != nil {
		t.Fatalf("AddEdge(b,c): unexpected error %v", err)
	}
	edges := g.Edges()
	if len(edges) != 2 {
		t.Fatalf("Edges: want 2, got %d", len(edges))
	}
	// Sorted by ID ⇒ insertion order for single-digit counters.
	if edges[0].From != "a" || edges[0].To != "b" {
		t.Errorf("Edges[0]: want a→b, got %s→%s", edges[0].From, edges[0].To)
	}
}
