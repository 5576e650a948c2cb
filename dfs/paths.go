// Package dfs implements depth-first backtracking path queries on core.Graph:
// the first path found, every simple path, and the shortest simple path
// between two vertices.
//
// Key features:
//   - FindPath(g, start, end, opts...): first complete path in traversal order
//   - FindAllPaths(g, start, end, opts...): all simple paths in discovery order
//   - FindShortestPath(g, start, end, opts...): fewest vertices, first found wins ties
//   - Hooks: OnVisit (pre-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, MaxPaths
//   - Cancellation via context.Context
//
// Traversal contract:
//
//   - Neighbors are explored in the order stored in the Graph.
//   - A vertex is never appended twice to the same path; the graph itself may
//     contain cycles.
//   - Every branch extends its own copy of the path-so-far, so sibling
//     branches and returned results never share backing arrays.
//   - start == end yields [start] before any adjacency lookup, so it holds
//     even when start is not a key of the graph.
//
// Complexity:
//
//   - Time:   O(P·V) in the worst case, P = number of simple paths explored.
//     FindPath stops at the first hit; FindShortestPath prunes any branch
//     that can no longer beat the best path found so far.
//   - Memory: O(V²) for the recursion stack of path copies, plus the output.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrPathNotFound    FindPath/FindShortestPath found no path.
//   - context.Canceled   if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// walkMode selects how a pathWalker records complete paths.
type walkMode int

const (
	modeFirst    walkMode = iota // stop at the first complete path
	modeAll                      // collect every complete path
	modeShortest                 // keep the strictly shortest path
)

// pathWalker encapsulates state during one path query.
// Each query builds its own walker, so concurrent queries share nothing but
// the read-only graph.
type pathWalker struct {
	graph *core.Graph // underlying graph
	opts  Options     // query options
	end   string      // target vertex
	mode  walkMode    // recording policy

	paths [][]string // complete paths (modeFirst, modeAll)
	best  []string   // shortest complete path so far (modeShortest)
	done  bool       // set once no further exploration is needed
}

// FindPath returns the first path from start to end discovered by a
// depth-first search that explores neighbors in adjacency order.
// The path is not necessarily the shortest one.
// Returns ErrPathNotFound if end is unreachable by a simple path.
func FindPath(g *core.Graph, start, end string, opts ...Option) ([]string, error) {
	w, err := runWalker(g, start, end, modeFirst, opts)
	if err != nil {
		return nil, err
	}
	if len(w.paths) == 0 {
		return nil, ErrPathNotFound
	}

	return w.paths[0], nil
}

// FindAllPaths returns every simple path from start to end in the order the
// depth-first search discovers them. No path is not an error: the result is
// simply empty. With WithMaxPaths(n) the search stops after n paths.
func FindAllPaths(g *core.Graph, start, end string, opts ...Option) ([][]string, error) {
	w, err := runWalker(g, start, end, modeAll, opts)
	if err != nil {
		return nil, err
	}

	return w.paths, nil
}

// FindShortestPath returns a simple path from start to end with the fewest
// vertices. Among equally short paths the first one discovered wins.
// Returns ErrPathNotFound if end is unreachable by a simple path.
func FindShortestPath(g *core.Graph, start, end string, opts ...Option) ([]string, error) {
	w, err := runWalker(g, start, end, modeShortest, opts)
	if err != nil {
		return nil, err
	}
	if w.best == nil {
		return nil, ErrPathNotFound
	}

	return w.best, nil
}

// runWalker validates input, applies options and runs one traversal from start.
func runWalker(g *core.Graph, start, end string, mode walkMode, opts []Option) (*pathWalker, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Fresh walker with an empty accumulator for this call only
	w := &pathWalker{graph: g, opts: resolve(opts), end: end, mode: mode}

	// 3. Traverse
	if err := w.walk(start, nil); err != nil {
		return nil, err
	}

	return w, nil
}

// walk appends id to a copy of prefix and explores onward from id.
// prefix is never modified.
func (w *pathWalker) walk(id string, prefix []string) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: len(prefix) is the number of edges leading to id
	if w.opts.MaxDepth >= 0 && len(prefix) > w.opts.MaxDepth {
		return nil
	}

	// 3. Extend into a branch-private path
	path := extend(prefix, id)

	// 4. Bound: a path that is already as long as the best cannot replace it
	if w.mode == modeShortest && w.best != nil && len(path) >= len(w.best) {
		return nil
	}

	// 5. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 6. Terminal: the path is complete
	if id == w.end {
		w.record(path)

		return nil
	}

	// 7. Explore neighbors in order; a non-key vertex has none (dead end)
	var err error
	w.graph.EachNeighbor(id, func(nid string) bool {
		if IndexOf(path, nid) >= 0 {
			return true // already on this path
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			return true
		}
		if err = w.walk(nid, path); err != nil {
			return false
		}

		return !w.done
	})

	return err
}

// record stores a complete path according to the walker's mode.
func (w *pathWalker) record(path []string) {
	switch w.mode {
	case modeFirst:
		w.paths = append(w.paths, path)
		w.done = true
	case modeAll:
		w.paths = append(w.paths, path)
		if w.opts.MaxPaths > 0 && len(w.paths) >= w.opts.MaxPaths {
			w.done = true
		}
	case modeShortest:
		// step 4 already rejected anything not strictly shorter
		w.best = path
	}
}
