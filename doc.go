// Package pathfind is a small in-memory toolkit for depth-first path queries
// over directed graphs: the first path found, every simple path, and the
// shortest simple path between two vertices.
//
// What is in the box?
//
//	A compact library with a tiny, deterministic API:
//		• Core: an immutable ordered adjacency Graph, safe for concurrent reads
//		• Path queries: FindPath, FindAllPaths, FindShortestPath (backtracking DFS)
//		• Builders: demonstration graph, chains, cycles, complete graphs, ladders
//		• Converters: YAML adjacency documents in and out
//		• pathdemo: a command that runs all three queries and prints the results
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        — immutable Graph and its read API
//	dfs/         — backtracking path queries, options, result validation
//	builder/     — deterministic graph fixtures
//	converters/  — YAML encoding and decoding
//	cmd/pathdemo — demonstration entry point
//
// Quick example (the demonstration graph):
//
//	A → [B, C]   B → [C, D]   C → [D]   D → [C]   E → [F]   F → [C]
//
// FindPath(A, D) = [A B C D], FindAllPaths(A, D) = [[A B C D] [A B D] [A C D]],
// FindShortestPath(A, D) = [A B D].
package pathfind
