package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapgo/bfs"
	"github.com/katalvlaran/gapgo/builder"
	"github.com/katalvlaran/gapgo/edge"
)

func k4() edge.List {
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

func TestRunK4ParentsAllSource(t *testing.T) {
	g, err := builder.Build(k4(), builder.WithN(4))
	require.NoError(t, err)

	parent, err := bfs.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []edge.NodeID{0, 0, 0, 0}, parent)
}

func TestRunDirectedPath(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}
	g, err := builder.Build(el, builder.WithDirected(), builder.WithInverse(), builder.WithN(5))
	require.NoError(t, err)

	parent, err := bfs.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []edge.NodeID{0, 0, 1, 2, 3}, parent)
}

func TestRunDirectedGraphWithoutInverseIsRejected(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}}
	g, err := builder.Build(el, builder.WithDirected(), builder.WithN(3))
	require.NoError(t, err)

	_, err = bfs.Run(g, 0)
	assert.ErrorIs(t, err, bfs.ErrMissingInverseAdjacency)
}

func TestRunIsolatedVertexUnreached(t *testing.T) {
	el := append(k4(), edge.Edge{U: 0, V: 0}) // self-loop dropped by builder
	g, err := builder.Build(el, builder.WithN(6))
	require.NoError(t, err)

	parent, err := bfs.Run(g, 0)
	require.NoError(t, err)
	assert.Less(t, int32(parent[5]), int32(0))
}

func TestRunEmptyGraph(t *testing.T) {
	g, err := builder.Build(edge.List{}, builder.WithN(4))
	require.NoError(t, err)

	parent, err := bfs.Run(g, 0)
	require.NoError(t, err)
	require.Len(t, parent, 4)
	assert.EqualValues(t, 0, parent[0])
	for _, p := range parent[1:] {
		assert.Less(t, int32(p), int32(0))
	}
}

func TestRunReachedVerticesAreActualNeighbors(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 3}, {U: 3, V: 2}}
	g, err := builder.Build(el, builder.WithN(4))
	require.NoError(t, err)

	parent, err := bfs.Run(g, 0)
	require.NoError(t, err)
	for u := edge.NodeID(1); u < 4; u++ {
		p := parent[u]
		require.GreaterOrEqual(t, int32(p), int32(0))
		assert.Contains(t, g.OutNeigh(p), u)
	}
}
