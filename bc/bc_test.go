package bc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapgo/bc"
	"github.com/katalvlaran/gapgo/builder"
	"github.com/katalvlaran/gapgo/edge"
)

func TestRunStarGraphCenterDominates(t *testing.T) {
	const leaves = 9
	var el edge.List
	for v := edge.NodeID(1); v <= leaves; v++ {
		el = append(el, edge.Edge{U: 0, V: v})
	}
	g, err := builder.Build(el, builder.WithN(leaves+1))
	require.NoError(t, err)

	scores := bc.Run(g, bc.WithNumSources(leaves+1))
	require.Len(t, scores, leaves+1)
	assert.EqualValues(t, 1, scores[0])
	for _, s := range scores[1:] {
		assert.Less(t, s, scores[0])
	}
}

func TestRunPathGraphSymmetricAroundMiddle(t *testing.T) {
	const length = 6 // vertices 0..6
	var el edge.List
	for u := edge.NodeID(0); u < length; u++ {
		el = append(el, edge.Edge{U: u, V: u + 1})
	}
	g, err := builder.Build(el, builder.WithN(length+1))
	require.NoError(t, err)

	scores := bc.Run(g, bc.WithNumSources(length+1))
	require.Len(t, scores, length+1)

	for i := 1; i < length; i++ {
		assert.InDelta(t, scores[i], scores[length-i], 1e-6, "score[%d] should mirror score[%d]", i, length-i)
	}
	assert.EqualValues(t, 0, scores[0])
	assert.EqualValues(t, 0, scores[length])
	mid := length / 2
	for i := 1; i < length; i++ {
		if i != mid {
			assert.LessOrEqual(t, scores[i], scores[mid])
		}
	}
}

func TestRunDirectedPathCenterIsOnlyCutVertex(t *testing.T) {
	// A directed, non-symmetrized path 0->1->2: every shortest path
	// from 0 to 2 passes through 1, so 1 must score strictly higher
	// than the endpoints even though in_neigh(1) != out_neigh(1).
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}}
	g, err := builder.Build(el, builder.WithDirected(), builder.WithN(3))
	require.NoError(t, err)

	scores := bc.Run(g, bc.WithNumSources(3))
	require.Len(t, scores, 3)
	assert.EqualValues(t, 0, scores[0])
	assert.EqualValues(t, 0, scores[2])
	assert.Greater(t, scores[1], float32(0))
}

func TestRunEmptyGraphReturnsZeroScores(t *testing.T) {
	g, err := builder.Build(edge.List{}, builder.WithN(4))
	require.NoError(t, err)

	scores := bc.Run(g)
	require.Len(t, scores, 4)
	for _, s := range scores {
		assert.EqualValues(t, 0, s)
	}
}
