package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathfind/core"
)

// TestConcurrentReads exercises the read API from many goroutines; run with
// -race to confirm the Graph needs no locking.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph(sampleAdj())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range g.Vertices() {
				_ = g.Neighbors(id)
				_ = g.HasEdge(id, "C")
			}
			_ = g.AdjacencyMap()
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
}
