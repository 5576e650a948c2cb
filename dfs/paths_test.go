package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/builder"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dfs"
)

// sampleGraph returns the demonstration graph:
//
//	A → [B, C], B → [C, D], C → [D], D → [C], E → [F], F → [C]
func sampleGraph() *core.Graph {
	return core.NewGraph(builder.SampleAdjacency())
}

func TestFindPath_NilGraph(t *testing.T) {
	p, err := dfs.FindPath(nil, "A", "D")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	all, err := dfs.FindAllPaths(nil, "A", "D")
	assert.Nil(t, all)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	p, err = dfs.FindShortestPath(nil, "A", "D")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestFindPath_FirstInTraversalOrder(t *testing.T) {
	p, err := dfs.FindPath(sampleGraph(), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p)
}

func TestFindAllPaths_DiscoveryOrder(t *testing.T) {
	paths, err := dfs.FindAllPaths(sampleGraph(), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"A", "B", "C", "D"},
		{"A", "B", "D"},
		{"A", "C", "D"},
	}, paths)
}

func TestFindShortestPath_FirstShortestWins(t *testing.T) {
	p, err := dfs.FindShortestPath(sampleGraph(), "A", "D")
	require.NoError(t, err)
	// [A C D] is just as short but discovered later.
	assert.Equal(t, []string{"A", "B", "D"}, p)
}

func TestFindPath_NoReverseEdges(t *testing.T) {
	p, err := dfs.FindPath(sampleGraph(), "D", "A")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, dfs.ErrPathNotFound)

	p, err = dfs.FindShortestPath(sampleGraph(), "D", "A")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, dfs.ErrPathNotFound)

	all, err := dfs.FindAllPaths(sampleGraph(), "D", "A")
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestFindPath_StartAbsent(t *testing.T) {
	p, err := dfs.FindPath(sampleGraph(), "Z", "A")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, dfs.ErrPathNotFound)

	all, err := dfs.FindAllPaths(sampleGraph(), "Z", "A")
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestFindPath_ThroughCycle(t *testing.T) {
	// F → C loops back through C ↔ D.
	p, err := dfs.FindPath(sampleGraph(), "E", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "F", "C", "D"}, p)
}

func TestStartEqualsEnd(t *testing.T) {
	g := sampleGraph()
	for _, id := range []string{"A", "D", "Z"} { // Z is not in the graph at all
		p, err := dfs.FindPath(g, id, id)
		require.NoError(t, err)
		assert.Equal(t, []string{id}, p)

		all, err := dfs.FindAllPaths(g, id, id)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{id}}, all)

		p, err = dfs.FindShortestPath(g, id, id)
		require.NoError(t, err)
		assert.Equal(t, []string{id}, p)
	}
}

func TestNeighborOnlyVertex_IsDeadEnd(t *testing.T) {
	g := core.NewGraph(map[string][]string{
		"A": {"X", "B"},
		"B": {"C"},
	})

	p, err := dfs.FindPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p)

	p, err = dfs.FindPath(g, "A", "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "X"}, p)

	_, err = dfs.FindPath(g, "X", "A")
	assert.ErrorIs(t, err, dfs.ErrPathNotFound)
}

func TestSelfLoop_Ignored(t *testing.T) {
	g := core.NewGraph(map[string][]string{
		"A": {"A", "B"},
	})

	all, err := dfs.FindAllPaths(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}}, all)
}

func TestResults_AreIsolated(t *testing.T) {
	g := sampleGraph()

	paths, err := dfs.FindAllPaths(g, "A", "D")
	require.NoError(t, err)
	require.Len(t, paths, 3)

	// Sibling paths share the prefix [A B] but not storage.
	paths[0][1] = "X"
	assert.Equal(t, "B", paths[1][1])

	// Mutating a returned path never leaks into the next call.
	paths[2][0] = "Y"
	again, err := dfs.FindAllPaths(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"A", "B", "C", "D"},
		{"A", "B", "D"},
		{"A", "C", "D"},
	}, again)
}

func TestQueries_AreIdempotent(t *testing.T) {
	g := sampleGraph()
	for i := 0; i < 3; i++ {
		p, err := dfs.FindPath(g, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "D"}, p)

		s, err := dfs.FindShortestPath(g, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "D"}, s)
	}
}

func TestWithMaxDepth(t *testing.T) {
	g := sampleGraph()

	all, err := dfs.FindAllPaths(g, "A", "D", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "D"}, {"A", "C", "D"}}, all)

	p, err := dfs.FindPath(g, "A", "D", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, p)

	_, err = dfs.FindPath(g, "A", "D", dfs.WithMaxDepth(1))
	assert.ErrorIs(t, err, dfs.ErrPathNotFound)

	p, err = dfs.FindPath(g, "A", "A", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p)
}

func TestWithMaxDepth_BoundsRecursionOnLongChain(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithIDPrefix("N")}, builder.Chain(1000))
	require.NoError(t, err)

	var visits int
	_, err = dfs.FindPath(g, "N0", "N999",
		dfs.WithMaxDepth(10),
		dfs.WithOnVisit(func(string) error {
			visits++
			return nil
		}))
	assert.ErrorIs(t, err, dfs.ErrPathNotFound)
	assert.Equal(t, 11, visits, "only N0..N10 are ever entered")

	p, err := dfs.FindPath(g, "N0", "N999")
	require.NoError(t, err)
	assert.Len(t, p, 1000)
}

func TestWithFilterNeighbor(t *testing.T) {
	all, err := dfs.FindAllPaths(sampleGraph(), "A", "D", dfs.WithFilterNeighbor(func(id string) bool {
		return id != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "D"}}, all)
}

func TestWithMaxPaths(t *testing.T) {
	g := sampleGraph()

	all, err := dfs.FindAllPaths(g, "A", "D", dfs.WithMaxPaths(2))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "D"}, {"A", "B", "D"}}, all)

	// FindShortestPath ignores the cap.
	p, err := dfs.FindShortestPath(g, "A", "D", dfs.WithMaxPaths(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, p)
}

func TestWithOnVisit_Order(t *testing.T) {
	var visited []string
	_, err := dfs.FindPath(sampleGraph(), "A", "D", dfs.WithOnVisit(func(id string) error {
		visited = append(visited, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, visited)
}

func TestWithOnVisit_Error(t *testing.T) {
	stop := errors.New("stop at C")
	p, err := dfs.FindAllPaths(sampleGraph(), "A", "D", dfs.WithOnVisit(func(id string) error {
		if id == "C" {
			return stop
		}
		return nil
	}))
	assert.Nil(t, p)
	assert.ErrorIs(t, err, stop)
	assert.ErrorContains(t, err, `OnVisit hook for "C"`)
}

func TestWithContext_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, err := dfs.FindPath(sampleGraph(), "A", "D", dfs.WithContext(ctx))
	assert.Nil(t, p)
	assert.ErrorIs(t, err, context.Canceled)

	all, err := dfs.FindAllPaths(sampleGraph(), "A", "D", dfs.WithContext(ctx))
	assert.Nil(t, all)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithContext_NilKeepsBackground(t *testing.T) {
	//nolint:staticcheck // nil context is the case under test
	p, err := dfs.FindPath(sampleGraph(), "A", "D", dfs.WithContext(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p)
}

func TestDefaultOptions(t *testing.T) {
	o := dfs.DefaultOptions()
	assert.NotNil(t, o.Ctx)
	assert.Equal(t, -1, o.MaxDepth)
	assert.Equal(t, 0, o.MaxPaths)
	assert.Nil(t, o.OnVisit)
	assert.Nil(t, o.FilterNeighbor)
}
