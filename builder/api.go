// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against a fresh draft, then freezes the draft into a core.Graph.
//   - Determinism: same options and constructor order ⇒ identical graphs,
//     including neighbor order.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Constructor applies a deterministic topology to a draft adjacency using the
// resolved builderConfig. Constructors validate parameters early and return
// sentinel errors instead of panicking.
type Constructor func(d *Draft, cfg builderConfig) error

// Draft is the mutable adjacency a Constructor writes into. It only exists
// while BuildGraph runs; the resulting core.Graph is immutable.
type Draft struct {
	adj map[string][]string
}

// AddVertex ensures id is a key of the adjacency, with no neighbors if new.
func (d *Draft) AddVertex(id string) {
	if _, ok := d.adj[id]; !ok {
		d.adj[id] = nil
	}
}

// AddEdge appends to after the existing neighbors of from.
// Both endpoints become keys. Parallel edges are ignored.
func (d *Draft) AddEdge(from, to string) {
	d.AddVertex(from)
	d.AddVertex(to)
	for _, n := range d.adj[from] {
		if n == to {
			return
		}
	}
	d.adj[from] = append(d.adj[from], to)
}

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the frozen graph.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Complexity: Σ cost of each constructor, plus O(V + E) to freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := &Draft{adj: make(map[string][]string)}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return core.NewGraph(d.adj), nil
}
