package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapgo/edge"
)

// k4 returns the directed edge list of a 4-clique (all 12 directed
// edges present), used as a baseline "everything is already
// symmetric" fixture.
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

func TestBuildUndirectedK4(t *testing.T) {
	g, err := Build(k4(), WithN(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumNodes())
	for u := edge.NodeID(0); u < 4; u++ {
		assert.Len(t, g.OutNeigh(u), 3)
	}
}

func TestBuildDirectedPath(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}
	g, err := Build(el, WithDirected(), WithN(4))
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, []edge.NodeID{1}, g.OutNeigh(0))
	assert.Equal(t, []edge.NodeID{}, g.OutNeigh(3))
	assert.False(t, g.HasInverse())
}

func TestBuildDirectedWithInverse(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}}
	g, err := Build(el, WithDirected(), WithInverse(), WithN(3))
	require.NoError(t, err)
	require.True(t, g.HasInverse())
	assert.Equal(t, []edge.NodeID{0}, g.InNeigh(1))
	assert.Equal(t, []edge.NodeID{1}, g.InNeigh(2))
	assert.Empty(t, g.InNeigh(0))
}

func TestBuildSymmetrizeDirectedInput(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}}
	g, err := Build(el, WithDirected(), WithSymmetrize(), WithN(3))
	require.NoError(t, err)
	assert.Equal(t, []edge.NodeID{1}, g.OutNeigh(0))
	assert.ElementsMatch(t, []edge.NodeID{0, 2}, g.OutNeigh(1))
	assert.Equal(t, []edge.NodeID{1}, g.OutNeigh(2))
}

func TestBuildIsolatedVertex(t *testing.T) {
	el := edge.List{{U: 0, V: 1}}
	g, err := Build(el, WithN(3))
	require.NoError(t, err)
	assert.Empty(t, g.OutNeigh(2))
}

func TestBuildEmptyGraphRequiresN(t *testing.T) {
	_, err := Build(edge.List{})
	assert.ErrorIs(t, err, ErrEmptyEdgeListNoN)

	g, err := Build(edge.List{}, WithN(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumNodes())
	assert.Zero(t, g.NumEdgesDirected())
}

func TestBuildStarGraph(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}}
	g, err := Build(el)
	require.NoError(t, err)
	assert.Len(t, g.OutNeigh(0), 4)
	for leaf := edge.NodeID(1); leaf <= 4; leaf++ {
		assert.Equal(t, []edge.NodeID{0}, g.OutNeigh(leaf))
	}
}

func TestBuildDropsSelfLoopsAndDuplicates(t *testing.T) {
	el := edge.List{{U: 0, V: 0}, {U: 0, V: 1}, {U: 0, V: 1}}
	g, err := Build(el, WithDirected(), WithN(2))
	require.NoError(t, err)
	assert.Equal(t, []edge.NodeID{1}, g.OutNeigh(0))
}

func TestBuildInPlaceMatchesCopyingForUndirected(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}
	elCopy := append(edge.List(nil), el...)

	copying, err := Build(el, WithN(3))
	require.NoError(t, err)
	inPlace, err := Build(elCopy, WithN(3), WithInPlace())
	require.NoError(t, err)

	for u := edge.NodeID(0); u < 3; u++ {
		assert.Equal(t, copying.OutNeigh(u), inPlace.OutNeigh(u))
	}
}

func TestBuildInPlaceDirectedWithInverse(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}
	g, err := Build(el, WithDirected(), WithInverse(), WithN(3), WithInPlace())
	require.NoError(t, err)
	assert.Equal(t, []edge.NodeID{1}, g.OutNeigh(0))
	assert.Equal(t, []edge.NodeID{2}, g.InNeigh(0))
}

func TestBuildInPlaceSymmetrize(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}}
	g, err := Build(el, WithDirected(), WithSymmetrize(), WithN(3), WithInPlace())
	require.NoError(t, err)
	assert.Equal(t, []edge.NodeID{1}, g.OutNeigh(0))
	assert.ElementsMatch(t, []edge.NodeID{0, 2}, g.OutNeigh(1))
	assert.Equal(t, []edge.NodeID{1}, g.OutNeigh(2))
}

func TestBuildRejectsInPlaceWeighted(t *testing.T) {
	_, err := BuildWeighted(edge.WList{{U: 0, V: 1, W: 1}}, WithInPlace())
	assert.ErrorIs(t, err, ErrInPlaceWeighted)
}

func TestBuildRejectsRelabelDirected(t *testing.T) {
	_, err := Build(edge.List{{U: 0, V: 1}}, WithDirected(), WithRelabelByDegree())
	assert.ErrorIs(t, err, ErrRelabelDirected)
}

func TestBuildWeightedPreservesWeights(t *testing.T) {
	el := edge.WList{{U: 0, V: 1, W: 5}, {U: 1, V: 2, W: 7}}
	g, err := BuildWeighted(el, WithDirected(), WithN(3))
	require.NoError(t, err)
	require.True(t, g.Weighted())
	assert.Equal(t, edge.Weight(5), g.OutWeight(0, 0))
	assert.Equal(t, edge.Weight(7), g.OutWeight(1, 0))
}

func TestBuildRelabelByDegree(t *testing.T) {
	// Star centered at vertex 3: vertex 3 has the highest degree and
	// should be relabeled to 0.
	el := edge.List{{U: 3, V: 0}, {U: 3, V: 1}, {U: 3, V: 2}}
	g, err := Build(el, WithN(4), WithRelabelByDegree())
	require.NoError(t, err)
	assert.Equal(t, 3, g.OutDegree(0))
}
