// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_chain.go — Chain(n): a directed path v0 → v1 → … → v(n-1).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Exactly one simple path between v0 and v(n-1), of n vertices.

package builder

import "fmt"

const (
	methodChain   = "Chain"
	minChainNodes = 1
)

// Chain returns a Constructor that builds an n-vertex directed chain.
func Chain(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}
		d.AddVertex(cfg.idFn(0))
		for i := 1; i < n; i++ {
			d.AddEdge(cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}
