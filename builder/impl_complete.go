// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_complete.go — Complete(n): every ordered pair (i, j), i ≠ j, is an edge.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Neighbors of v_i are emitted in ascending j.
//   • Between two distinct vertices there are Σ_{k=0}^{n-2} (n-2)!/(n-2-k)!
//     simple paths, so keep n small for FindAllPaths.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete directed graph on n vertices.
func Complete(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					d.AddEdge(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
