package pagerank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapgo/builder"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/pagerank"
)

func TestRunScoresSumToOne(t *testing.T) {
	var el edge.List
	for u := edge.NodeID(0); u < 4; u++ {
		for v := edge.NodeID(0); v < 4; v++ {
			if u != v {
				el = append(el, edge.Edge{U: u, V: v})
			}
		}
	}
	g, err := builder.Build(el, builder.WithN(4))
	require.NoError(t, err)

	scores := pagerank.Run(g, pagerank.WithMaxIters(30))
	var total float64
	for _, s := range scores {
		total += s
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}

func TestRunDirectedPathScoresAscending(t *testing.T) {
	el := edge.List{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}
	g, err := builder.Build(el, builder.WithDirected(), builder.WithInverse(), builder.WithN(5))
	require.NoError(t, err)

	scores := pagerank.Run(g, pagerank.WithMaxIters(20))
	for i := 1; i < len(scores); i++ {
		assert.Greaterf(t, scores[i], scores[i-1], "score[%d]=%f should exceed score[%d]=%f", i, scores[i], i-1, scores[i-1])
	}
}

func TestRunDanglingVertexContributesNothing(t *testing.T) {
	el := edge.List{{U: 0, V: 1}}
	g, err := builder.Build(el, builder.WithDirected(), builder.WithInverse(), builder.WithN(2))
	require.NoError(t, err)

	scores := pagerank.Run(g, pagerank.WithMaxIters(10))
	// vertex 1 is dangling (out-degree 0); its score should still
	// converge to a finite value with no redistribution inflating
	// vertex 0 beyond the base term.
	assert.InDelta(t, (1-pagerank.Damping)/2, scores[0], 1e-6)
}

func TestRunEpsilonStopsEarly(t *testing.T) {
	el := edge.List{{U: 0, V: 1}}
	g, err := builder.Build(el, builder.WithDirected(), builder.WithInverse(), builder.WithN(2))
	require.NoError(t, err)

	scores := pagerank.Run(g, pagerank.WithMaxIters(1000), pagerank.WithEpsilon(1e-9))
	assert.Len(t, scores, 2)

	// The first iteration moves vertex 0 from 0.5 to the base term 0.075
	// and leaves vertex 1 at 0.075 + 0.85*0.5 = 0.5, a total error of
	// 0.425; an epsilon above that stops the run there, before vertex 1
	// settles at 0.075 + 0.85*0.075.
	stopped := pagerank.Run(g, pagerank.WithMaxIters(1000), pagerank.WithEpsilon(0.5))
	assert.InDelta(t, 0.5, stopped[1], 1e-9)
}
