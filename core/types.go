// Package core defines the Graph type, its sentinel errors, and the
// constructors that freeze an adjacency mapping into a Graph.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph construction.
var (
	// ErrEmptyVertexID indicates that an adjacency key or neighbor is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")
)

// Graph is an immutable directed graph stored as an ordered adjacency mapping.
//
// adjacency[from] holds the neighbors of from in traversal order.
// vertices is the set of every ID seen either as a key or as a neighbor.
// A Graph is never mutated after construction, so all methods are safe for
// concurrent use without locks.
type Graph struct {
	adjacency map[string][]string // vertex ID → ordered neighbor IDs
	vertices  map[string]struct{} // keys ∪ neighbor-only IDs
	edges     int                 // total number of neighbor entries
}

// NewGraph freezes adj into a Graph. The map and every neighbor slice are
// copied, so later changes to adj are never observed by the Graph.
// Empty IDs are tolerated here; use NewGraphStrict to reject them.
//
// Complexity: O(V + E)
func NewGraph(adj map[string][]string) *Graph {
	g := &Graph{
		adjacency: make(map[string][]string, len(adj)),
		vertices:  make(map[string]struct{}, len(adj)),
	}
	for from, nbrs := range adj {
		g.adjacency[from] = append([]string(nil), nbrs...)
		g.vertices[from] = struct{}{}
		for _, to := range nbrs {
			g.vertices[to] = struct{}{}
		}
		g.edges += len(nbrs)
	}

	return g
}

// NewGraphStrict is NewGraph with validation: it returns ErrEmptyVertexID
// (wrapped with the offending key) if any key or neighbor is "".
//
// Complexity: O(V + E)
func NewGraphStrict(adj map[string][]string) (*Graph, error) {
	for from, nbrs := range adj {
		if from == "" {
			return nil, fmt.Errorf("NewGraphStrict: key: %w", ErrEmptyVertexID)
		}
		for i, to := range nbrs {
			if to == "" {
				return nil, fmt.Errorf("NewGraphStrict: %q neighbor #%d: %w", from, i, ErrEmptyVertexID)
			}
		}
	}

	return NewGraph(adj), nil
}
