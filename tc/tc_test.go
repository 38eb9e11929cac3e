package tc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapgo/builder"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/tc"
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

func TestCountK4HasFourTriangles(t *testing.T) {
	g, err := builder.Build(k4(), builder.WithN(4))
	require.NoError(t, err)

	count, err := tc.Count(g)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}

func TestCountStarGraphHasNoTriangles(t *testing.T) {
	var el edge.List
	for v := edge.NodeID(1); v < 10; v++ {
		el = append(el, edge.Edge{U: 0, V: v})
	}
	g, err := builder.Build(el, builder.WithN(10))
	require.NoError(t, err)

	count, err := tc.Count(g)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCountBipartiteGraphHasNoTriangles(t *testing.T) {
	var el edge.List
	for u := edge.NodeID(0); u < 3; u++ {
		for v := edge.NodeID(3); v < 6; v++ {
			el = append(el, edge.Edge{U: u, V: v})
		}
	}
	g, err := builder.Build(el, builder.WithN(6))
	require.NoError(t, err)

	count, err := tc.Count(g)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCountRejectsDirectedGraph(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}
	g, err := builder.Build(el, builder.WithDirected(), builder.WithN(3))
	require.NoError(t, err)

	_, err = tc.Count(g)
	assert.ErrorIs(t, err, tc.ErrDirectedGraph)
}

func TestWorthRelabelingFalseOnRegularGraph(t *testing.T) {
	g, err := builder.Build(k4(), builder.WithN(4))
	require.NoError(t, err)

	assert.False(t, tc.WorthRelabeling(g))
}

func TestRunMatchesCountOnK4(t *testing.T) {
	g, err := builder.Build(k4(), builder.WithN(4))
	require.NoError(t, err)

	count, err := tc.Run(g)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}
