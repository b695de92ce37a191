// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for
// vertices, muEdgeAdj for edges and adjacency), so you can safely build
// graphs across goroutines with minimal contention.
//
// Two construction paths exist:
//
//   - Incremental: NewGraph(opts...) followed by AddVertex/AddEdge calls.
//   - Bulk: NewGraphFromPairs(pairs, vertexCount, opts...), which consumes a
//     flat sequence of zero-based vertex-index pairs (positions 2i and 2i+1
//     form edge i), validates everything up front, and materializes the
//     whole graph in one call. This is the primitive the builder package
//     delegates to conceptually: an edge list plus a vertex count plus the
//     graph's directedness policy fully determine the result.
//
// Policy flags (directed, weighted, loops, multi-edges) are fixed at
// construction time via GraphOption values and are immutable afterwards.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrBadVertexCount      - non-positive vertex count for a bulk build.
//	ErrOddPairList         - flat pair list has odd length.
//	ErrIndexOutOfRange     - pair index outside [0, vertexCount).
package core
