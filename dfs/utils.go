// Package dfs provides small helpers shared by the path queries and by
// callers that need to check query results.
package dfs

import (
	"strings"

	"github.com/katalvlaran/pathfind/core"
)

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func IndexOf(s []string, val string) int {
	for i, x := range s { // iterate through slice
		if x == val {
			return i
		}
	}

	return -1
}

// extend returns a new slice holding prefix followed by id.
// The result never shares a backing array with prefix.
// Time Complexity: O(n).
func extend(prefix []string, id string) []string {
	out := make([]string, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = id

	return out
}

// IsSimplePath reports whether p is a non-empty walk in g with no repeated
// vertex: every consecutive pair (p[i], p[i+1]) must be an edge of g.
// A single-vertex path is always simple.
// Time Complexity: O(L·d) where L = len(p) and d = max out-degree.
func IsSimplePath(g *core.Graph, p []string) bool {
	if len(p) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(p))
	for i, id := range p {
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
		if i > 0 && !g.HasEdge(p[i-1], id) {
			return false
		}
	}

	return true
}

// JoinPath renders p as "A -> B -> C".
func JoinPath(p []string) string {
	return strings.Join(p, " -> ")
}
