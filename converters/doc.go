// Package converters provides two-way adapters between core.Graph and its
// textual YAML form, so graphs can be kept in files and fed to the path
// queries or the pathdemo command.
//
// Document format: a mapping from vertex ID to the ordered sequence of its
// neighbors. Sequence order is preserved in both directions because it fixes
// traversal order.
//
//	A: [B, C]
//	B: [C, D]
//	C: [D]
//	D: [C]
//	E: [F]
//	F: [C]
//
// A null or missing sequence ("G:" or "G: []") declares a vertex with no
// outgoing edges.
package converters
