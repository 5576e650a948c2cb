// File: methods.go
// Role: Read-only queries over an immutable Graph.
// Determinism:
//   - Keys() and Vertices() are sorted; Neighbors() keeps insertion order.
// Concurrency:
//   - No locks; a Graph never changes after NewGraph returns.
//   - A nil *Graph behaves as the empty graph.

package core

import "sort"

// Neighbors returns a copy of the ordered neighbor IDs of id.
// A vertex that is not a key (neighbor-only or unknown) has no neighbors and
// yields nil.
//
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) []string {
	if g == nil {
		return nil
	}
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil
	}

	return append([]string(nil), nbrs...)
}

// neighbors returns the internal neighbor slice without copying.
// Callers must treat it as read-only.
func (g *Graph) neighbors(id string) ([]string, bool) {
	if g == nil {
		return nil, false
	}
	nbrs, ok := g.adjacency[id]

	return nbrs, ok
}

// EachNeighbor calls fn for every neighbor of id in adjacency order and stops
// early when fn returns false. It reports whether id is a key.
// It avoids the copy made by Neighbors on hot traversal paths.
//
// Complexity: O(deg(id))
func (g *Graph) EachNeighbor(id string, fn func(to string) bool) bool {
	nbrs, ok := g.neighbors(id)
	for _, to := range nbrs {
		if !fn(to) {
			break
		}
	}

	return ok
}

// HasVertex reports whether id is a key of the adjacency mapping, i.e.
// whether it was given an (possibly empty) outgoing neighbor sequence.
//
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.neighbors(id)

	return ok
}

// Contains reports whether id occurs anywhere in the graph, as a key or as a
// neighbor.
//
// Complexity: O(1)
func (g *Graph) Contains(id string) bool {
	if g == nil {
		return false
	}
	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether to appears in the neighbor sequence of from.
//
// Complexity: O(deg(from))
func (g *Graph) HasEdge(from, to string) bool {
	nbrs, _ := g.neighbors(from)
	for _, n := range nbrs {
		if n == to {
			return true
		}
	}

	return false
}

// Keys returns the sorted adjacency keys.
//
// Complexity: O(K log K)
func (g *Graph) Keys() []string {
	if g == nil {
		return nil
	}
	keys := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	return keys
}

// Vertices returns every vertex ID, keys and neighbor-only IDs alike, sorted.
//
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	if g == nil {
		return nil
	}
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Order returns |V|, the number of distinct vertex IDs.
func (g *Graph) Order() int {
	if g == nil {
		return 0
	}

	return len(g.vertices)
}

// Size returns |E|, the total number of neighbor entries.
func (g *Graph) Size() int {
	if g == nil {
		return 0
	}

	return g.edges
}

// AdjacencyMap returns a deep copy of the adjacency mapping.
// Feeding the result back into NewGraph yields an equivalent Graph.
//
// Complexity: O(V + E)
func (g *Graph) AdjacencyMap() map[string][]string {
	if g == nil {
		return map[string][]string{}
	}
	out := make(map[string][]string, len(g.adjacency))
	for from, nbrs := range g.adjacency {
		out[from] = append([]string(nil), nbrs...)
	}

	return out
}
