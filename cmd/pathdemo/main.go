// Command pathdemo prints the first, all and shortest paths between two
// vertices of a directed graph. Without --graph it uses the built-in
// demonstration graph:
//
//	A → [B, C], B → [C, D], C → [D], D → [C], E → [F], F → [C]
//
// Usage:
//
//	pathdemo [--graph graph.yaml] [--from A] [--to D] [--max-depth N] [--timeout 5s] [-v]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
