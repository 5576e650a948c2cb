// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_cycle.go — Cycle(n): a directed ring v0 → v1 → … → v(n-1) → v0.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges are emitted in ascending i; the last one closes the ring.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex directed cycle.
func Cycle(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			d.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
