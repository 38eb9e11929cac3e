package sssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapgo/builder"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/sssp"
)

func k4Unweighted() edge.List {
	var el edge.List
	for u := edge.NodeID(0); u < 4; u++ {
		for v := edge.NodeID(0); v < 4; v++ {
			if u != v {
				el = append(el, edge.Edge{U: u, V: v})
			}
		}
	}

	return el
}

func TestRunK4UnitWeights(t *testing.T) {
	g, err := builder.Build(k4Unweighted(), builder.WithN(4))
	require.NoError(t, err)

	dist := sssp.Run(g, 0)
	assert.Equal(t, []int64{0, 1, 1, 1}, dist)
}

func TestRunUnreachableIsInfinity(t *testing.T) {
	el := edge.List{{U: 0, V: 1}}
	g, err := builder.Build(el, builder.WithDirected(), builder.WithN(3))
	require.NoError(t, err)

	dist := sssp.Run(g, 0)
	assert.EqualValues(t, 0, dist[0])
	assert.EqualValues(t, 1, dist[1])
	assert.Equal(t, sssp.Infinity, dist[2])
}

func TestRunWeightedPathPicksShortest(t *testing.T) {
	// 0 -> 1 (weight 10), 0 -> 2 (weight 1), 2 -> 1 (weight 1):
	// shortest path to 1 is via 2, cost 2.
	el := edge.WList{{U: 0, V: 1, W: 10}, {U: 0, V: 2, W: 1}, {U: 2, V: 1, W: 1}}
	g, err := builder.BuildWeighted(el, builder.WithDirected(), builder.WithN(3))
	require.NoError(t, err)

	dist := sssp.Run(g, 0, sssp.WithDelta(3))
	assert.EqualValues(t, 0, dist[0])
	assert.EqualValues(t, 2, dist[1])
	assert.EqualValues(t, 1, dist[2])
}

func TestRunSourceDistanceZero(t *testing.T) {
	g, err := builder.Build(edge.List{}, builder.WithN(1))
	require.NoError(t, err)

	dist := sssp.Run(g, 0)
	assert.Equal(t, []int64{0}, dist)
}

func TestRunMatchesSerialDijkstraOnRandomSmallGraph(t *testing.T) {
	el := edge.WList{
		{U: 0, V: 1, W: 4}, {U: 0, V: 2, W: 1},
		{U: 2, V: 1, W: 2}, {U: 1, V: 3, W: 1},
		{U: 2, V: 3, W: 5},
	}
	g, err := builder.BuildWeighted(el, builder.WithDirected(), builder.WithN(4))
	require.NoError(t, err)

	dist := sssp.Run(g, 0, sssp.WithDelta(2))
	want := serialDijkstra(g, 0)
	for u := range want {
		assert.Equal(t, want[u], dist[u], "vertex %d", u)
	}
}

// serialDijkstra is a textbook oracle independent of sssp.Run, used
// only to cross-check the kernel in this test.
func serialDijkstra(g interface {
	NumNodes() int
	OutNeigh(edge.NodeID) []edge.NodeID
	OutWeight(edge.NodeID, int) edge.Weight
}, source edge.NodeID) []int64 {
	n := g.NumNodes()
	dist := make([]int64, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.MaxInt64 / 2
	}
	dist[source] = 0

	for range n {
		u, best := edge.NodeID(-1), int64(math.MaxInt64/2+1)
		for v := 0; v < n; v++ {
			if !visited[v] && dist[v] < best {
				u, best = edge.NodeID(v), dist[v]
			}
		}
		if u < 0 {
			break
		}
		visited[u] = true
		for j, v := range g.OutNeigh(u) {
			if nd := dist[u] + int64(g.OutWeight(u, j)); nd < dist[v] {
				dist[v] = nd
			}
		}
	}

	return dist
}
