package cc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapgo/builder"
	"github.com/katalvlaran/gapgo/cc"
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

func TestRunK4SingleComponent(t *testing.T) {
	g, err := builder.Build(k4(), builder.WithN(4))
	require.NoError(t, err)

	comp := cc.Run(g)
	for _, label := range comp[1:] {
		assert.Equal(t, comp[0], label)
	}
}

func TestRunIsolatedVertexTwoComponents(t *testing.T) {
	g, err := builder.Build(k4(), builder.WithN(5))
	require.NoError(t, err)

	comp := cc.Run(g)
	for _, label := range comp[1:4] {
		assert.Equal(t, comp[0], label)
	}
	assert.NotEqual(t, comp[0], comp[4])
}

func TestRunStarGraphSingleComponent(t *testing.T) {
	var el edge.List
	for v := edge.NodeID(1); v < 10; v++ {
		el = append(el, edge.Edge{U: 0, V: v})
	}
	g, err := builder.Build(el, builder.WithN(10))
	require.NoError(t, err)

	comp := cc.Run(g)
	for _, label := range comp[1:] {
		assert.Equal(t, comp[0], label)
	}
}

func TestRunEmptyGraphTrivialLabels(t *testing.T) {
	g, err := builder.Build(edge.List{}, builder.WithN(4))
	require.NoError(t, err)

	comp := cc.Run(g)
	require.Len(t, comp, 4)
	for u := edge.NodeID(0); u < 4; u++ {
		assert.Equal(t, u, comp[u])
		for v := edge.NodeID(0); v < 4; v++ {
			if u != v {
				assert.NotEqual(t, comp[u], comp[v])
			}
		}
	}
}

func TestRunDirectedChainWeaklyConnected(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}
	g, err := builder.Build(el, builder.WithDirected(), builder.WithInverse(), builder.WithN(4))
	require.NoError(t, err)

	comp := cc.Run(g)
	for _, label := range comp[1:] {
		assert.Equal(t, comp[0], label)
	}
}
