// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_ladder.go — Ladder(n): two directed rails joined by two-way rungs.
//
//	t0 → t1 → … → t(n-1)      top rail:    IDs idFn(0)   … idFn(n-1)
//	↕    ↕         ↕
//	b0 → b1 → … → b(n-1)      bottom rail: IDs idFn(n)   … idFn(2n-1)
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Neighbor order of t_i is [t(i+1), b_i]; of b_i is [b(i+1), t_i].
//   • The number of simple paths t0 ⇝ b(n-1) is 2^(n-1), which makes the
//     ladder a compact stress fixture for exhaustive enumeration.

package builder

import "fmt"

const (
	methodLadder  = "Ladder"
	minLadderRung = 2
)

// Ladder returns a Constructor that builds a directed ladder with n rungs.
func Ladder(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minLadderRung {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLadder, n, minLadderRung, ErrTooFewVertices)
		}
		top := func(i int) string { return cfg.idFn(i) }
		bottom := func(i int) string { return cfg.idFn(n + i) }

		for i := 0; i < n; i++ {
			if i+1 < n {
				d.AddEdge(top(i), top(i+1))
			}
			d.AddEdge(top(i), bottom(i))
			if i+1 < n {
				d.AddEdge(bottom(i), bottom(i+1))
			}
			d.AddEdge(bottom(i), top(i))
		}

		return nil
	}
}

// LadderEnds returns the IDs of t0 and b(n-1) under the given options, the
// endpoints whose simple-path count is 2^(n-1).
func LadderEnds(n int, bopts ...BuilderOption) (string, string) {
	cfg := newBuilderConfig(bopts...)

	return cfg.idFn(0), cfg.idFn(2*n - 1)
}
