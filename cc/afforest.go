package cc

import (
	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/parallel"
)

// Run computes connected components of g via Afforest. For directed
// graphs, weak connectivity requires the graph to have been built
// with inverse adjacency (builder.WithInverse), since the final pass
// also links across incoming edges.
func Run(g *csr.Graph, opts ...Option) []edge.NodeID {
	cfg := newConfig(opts)
	n := g.NumNodes()

	comp := make([]edge.NodeID, n)
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			comp[u] = edge.NodeID(u)
		}
	})

	for r := 0; r < cfg.SamplingRounds; r++ {
		parallel.For(n, func(lo, hi int) {
			for u := lo; u < hi; u++ {
				if v, ok := g.OutNeighAt(edge.NodeID(u), r); ok {
					Link(edge.NodeID(u), v, comp)
				}
			}
		})
		compress(comp)
	}

	dominant := dominantComponent(comp, cfg.DominantSampleSize)
	directed := g.Directed()

	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			if comp[u] == dominant {
				continue
			}
			for _, v := range g.OutNeigh(edge.NodeID(u)) {
				Link(edge.NodeID(u), v, comp)
			}
			if directed {
				for _, v := range g.InNeigh(edge.NodeID(u)) {
					Link(edge.NodeID(u), v, comp)
				}
			}
		}
	})
	compress(comp)

	return comp
}

// dominantComponent samples every stride-th entry of comp (stride
// chosen so roughly sampleSize entries are examined) and returns the
// most frequent label, breaking ties toward the smaller label for
// determinism.
func dominantComponent(comp []edge.NodeID, sampleSize int) edge.NodeID {
	n := len(comp)
	if n == 0 {
		return -1
	}
	if sampleSize <= 0 || sampleSize > n {
		sampleSize = n
	}
	stride := n / sampleSize
	if stride < 1 {
		stride = 1
	}

	counts := make(map[edge.NodeID]int)
	for i := 0; i < n; i += stride {
		counts[comp[i]]++
	}

	best, bestCount := edge.NodeID(0), -1
	for label, c := range counts {
		if c > bestCount || (c == bestCount && label < best) {
			best, bestCount = label, c
		}
	}

	return best
}
