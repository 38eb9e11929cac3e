package pagerank

import (
	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/parallel"
)

// Run computes PageRank scores over g, pulling contributions from
// in-neighbors each iteration.
func Run(g *csr.Graph, opts ...Option) []float64 {
	cfg := newConfig(opts)
	n := g.NumNodes()
	if n == 0 {
		return nil
	}

	scores := make([]float64, n)
	init := 1.0 / float64(n)
	parallel.For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			scores[i] = init
		}
	})
	base := (1 - Damping) / float64(n)

	contrib := make([]float64, n)
	next := make([]float64, n)

	for iter := 0; iter < cfg.MaxIters; iter++ {
		parallel.For(n, func(lo, hi int) {
			for u := lo; u < hi; u++ {
				if d := g.OutDegree(edge.NodeID(u)); d > 0 {
					contrib[u] = scores[u] / float64(d)
				} else {
					contrib[u] = 0
				}
			}
		})

		errTotal := parallel.Reduce(n, 0.0, func(lo, hi int) float64 {
			var localErr float64
			for u := lo; u < hi; u++ {
				var incoming float64
				for _, v := range g.InNeigh(edge.NodeID(u)) {
					incoming += contrib[v]
				}
				newScore := base + Damping*incoming
				next[u] = newScore
				delta := newScore - scores[u]
				if delta < 0 {
					delta = -delta
				}
				localErr += delta
			}

			return localErr
		}, func(a, b float64) float64 { return a + b })

		scores, next = next, scores

		if cfg.Epsilon > 0 && errTotal < cfg.Epsilon {
			break
		}
	}

	return scores
}
