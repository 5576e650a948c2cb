// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_sample.go — the fixed demonstration graph.
//
//	A → B, A → C
//	B → C, B → D
//	C → D
//	D → C
//	E → F
//	F → C
//
// IDs are fixed letters; the configured ID scheme is not consulted.

package builder

// sampleEdges lists the demonstration edges in neighbor order.
var sampleEdges = [][2]string{
	{"A", "B"}, {"A", "C"},
	{"B", "C"}, {"B", "D"},
	{"C", "D"},
	{"D", "C"},
	{"E", "F"},
	{"F", "C"},
}

// Sample returns a Constructor that adds the six-vertex demonstration graph.
func Sample() Constructor {
	return func(d *Draft, _ builderConfig) error {
		for _, e := range sampleEdges {
			d.AddEdge(e[0], e[1])
		}

		return nil
	}
}

// SampleAdjacency returns the demonstration graph as a fresh adjacency literal.
func SampleAdjacency() map[string][]string {
	return map[string][]string{
		"A": {"B", "C"},
		"B": {"C", "D"},
		"C": {"D"},
		"D": {"C"},
		"E": {"F"},
		"F": {"C"},
	}
}
