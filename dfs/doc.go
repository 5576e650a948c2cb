// Package dfs implements depth‑first backtracking path queries on a
// core.Graph.
//
// What:
//
//   - FindPath: the first path from start to end found by exploring
//     neighbors in adjacency order, then depth-first.
//   - FindAllPaths: every simple path from start to end, in discovery order.
//   - FindShortestPath: the simple path with the fewest vertices; among
//     equally short paths the first discovered wins.
//
// Why:
//   - Enumerate routes through small dependency or reachability graphs
//   - Compare alternative routes (all paths) or pick the cheapest hop count
//   - Provide a readable reference for backtracking search
//
// Key Types & Constants:
//
//   - Option: functional options for query behavior
//   - Options: holds Context, OnVisit, MaxDepth, FilterNeighbor, MaxPaths
//
// Complexity:
//
//   - FindPath:          Time O(P·V) worst case, stops at the first hit
//   - FindAllPaths:      Time O(P·V), Memory O(P·V) for the result
//   - FindShortestPath:  Time O(P·V) worst case, branch-and-bound pruned
//     (P = number of simple paths explored, V = number of vertices)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrPathNotFound    no simple path from start to end
//   - context.Canceled   query canceled via context
//   - hook errors        propagated from OnVisit
//
// Functions:
//
//   - FindPath(g \*core.Graph, start, end string, opts ...Option) (\[]string, error)
//   - FindAllPaths(g \*core.Graph, start, end string, opts ...Option) (\[]\[]string, error)
//   - FindShortestPath(g \*core.Graph, start, end string, opts ...Option) (\[]string, error)
//   - IsSimplePath(g \*core.Graph, p \[]string) bool
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithMaxDepth(),
//     WithFilterNeighbor(), WithMaxPaths()
package dfs
