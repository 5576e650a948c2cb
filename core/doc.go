// Package core provides the immutable, ordered adjacency Graph that every
// path query in this module runs over.
//
// The Graph G = (V,E) is a mapping from a vertex ID to an ordered sequence of
// neighbor IDs:
//
//   - Edges are directed and unweighted: To is a neighbor of From iff To
//     appears in From's neighbor sequence.
//   - Neighbor order is significant. Traversals explore neighbors in the
//     order they were supplied, which fixes "first found" results.
//   - A vertex that appears only as a neighbor (never as a key) is a valid
//     vertex with no outgoing edges.
//
// Why an immutable Graph?
//
//   - Queries are pure functions of (graph, start, end); a frozen graph makes
//     concurrent reads safe without any locking.
//   - NewGraph copies its input, so the caller's map and slices can be reused
//     or mutated freely afterwards.
//
// Read API:
//
//	Neighbors(id)      ordered neighbor IDs (copy)
//	HasVertex(id)      reports whether id is a key of the adjacency mapping
//	HasEdge(from, to)  reports whether to ∈ Neighbors(from)
//	Keys()             sorted adjacency keys
//	Vertices()         sorted keys plus neighbor-only vertices
//	Order(), Size()    |V| and |E|
//	AdjacencyMap()     deep copy of the underlying mapping
//
// Errors:
//
//	ErrEmptyVertexID - an adjacency key or neighbor ID is the empty string.
package core
