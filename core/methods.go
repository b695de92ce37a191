// Package core: thread-safe Graph method implementations.
//
// This file provides O(1) (amortized) operations for vertex and edge
// management on the Graph type defined in types.go. We leverage separate
// RWMutex locks for vertices (muVert) and edges+adjacency (muEdgeAdj) to
// minimize contention. Adjacency is stored as a nested map:
// adjacencyList[from][to][edgeID] = struct{}{}, allowing constant-time
// existence checks and insertion of edges.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const (
	edgeIDPrefix = "e"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed.
	if id == "" {
		return ErrEmptyVertexID
	}
	// Acquire write lock on vertices only.
	g.muVert.Lock()
	defer g.muVert.Unlock()

	// Check if vertex already present.
	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	// Insert new Vertex struct with empty Metadata map.
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Initialize adjacencyList entry for this vertex (lazy map-of-maps).
	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddEdge creates a new edge from 'from' to 'to' with the given weight and
// returns its unique Edge.ID. Handles parallel edges, loops and weights per
// the graph's configuration. For undirected graphs the adjacency is mirrored
// both ways; missing endpoints are added automatically (idempotent).
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Weight constraint.
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	// 3) Loop constraint.
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// 4) Ensure both endpoints exist (idempotent).
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 5) Lock everything around edges & adjacency.
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 6) Multi-edge existence check.
	if !g.allowMulti {
		if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 7) Generate a new atomic Edge.ID.
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))

	// 8) Construct and store the Edge with the graph-wide directedness.
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e

	// 9) Insert into nested adjacencyList[from][to][eid].
	g.ensureAdjMap(from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// 10) If this edge is undirected, mirror it for the reverse adjacency
	//     (loops skip the mirror).
	if !e.Directed && from != to {
		g.ensureAdjMap(to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// For undirected edges adjacency is mirrored, so argument order is symmetric.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	// Check nested map existence and non-emptiness.
	if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// Neighbors returns all edges incident to vertex 'id'.
// For directed edges, returns outgoing only; for undirected, both directions.
// Result is sorted by Edge.ID for determinism.
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	// Ensure vertex exists.
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	// Lock edges+adjacency for reading.
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	// Iterate all "to" buckets for this vertex.
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			// For directed, include only if e.From == id.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	// Sort by ID to ensure reproducible ordering.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the sorted IDs of all vertices adjacent to id,
// honoring directed and undirected semantics.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edge endpoints incident to id: each
// non-loop edge touching id contributes 1, a self-loop contributes 2.
// Directed and undirected edges are counted alike (total degree).
// Complexity: O(E).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return 0, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	deg := 0
	for _, e := range g.edges {
		if e.From == id {
			deg++
		}
		if e.To == id {
			deg++
		}
	}

	return deg, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges sorted by their ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns the number of vertices currently stored.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges currently stored.
// Each undirected edge counts once regardless of its mirrored adjacency.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// ensureAdjID guarantees the outer adjacency bucket for id exists.
// Caller must hold muEdgeAdj.
func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjMap guarantees the nested bucket adjacencyList[from][to] exists.
// Caller must hold muEdgeAdj.
func (g *Graph) ensureAdjMap(from, to string) {
	g.ensureAdjID(from)
	if _, ok := g.adjacencyList[from][to]; !ok {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
