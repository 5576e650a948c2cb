// Package dfs defines errors and options for depth-first path queries,
// including cancellation, pre-order hooks, depth limiting, neighbor filtering
// and a cap on the number of enumerated paths.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to a path query.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrPathNotFound indicates that no simple path connects start to end.
	// It is also returned when start is not a key of the graph and differs
	// from end.
	ErrPathNotFound = errors.New("dfs: path not found")
)

// Option configures optional behavior of a path query.
// Use with FindPath(g, start, end, opts...) and its siblings.
type Option func(*Options)

// Options holds configurable parameters for path queries.
// With the defaults every query explores the full simple-path tree.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per explored node.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked each time a vertex is appended to the
	// current path. Returning an error aborts the query with that error.
	OnVisit func(id string) error

	// MaxDepth, if non-negative, bounds the number of edges of any explored
	// path. A depth of 0 only ever yields the path [start]. Default is -1.
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before descending.
	// Return true to explore that neighbor, false to skip it.
	FilterNeighbor func(id string) bool

	// MaxPaths, if positive, stops FindAllPaths after that many paths.
	// Ignored by FindPath and FindShortestPath. Default is 0 (no cap).
	MaxPaths int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - No path cap (MaxPaths = 0)
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		MaxPaths:       0,
	}
}

// WithContext returns an Option that sets the Context for the query.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits explored paths to limit edges.
// Negative values disable the limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is never entered.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithMaxPaths returns an Option that caps the number of paths FindAllPaths
// returns. Values ≤ 0 disable the cap.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		o.MaxPaths = n
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
