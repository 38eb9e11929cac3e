package tc

import (
	"sort"

	"github.com/katalvlaran/gapgo/builder"
	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/mt19937"
	"github.com/katalvlaran/gapgo/internal/parallel"
)

// kSeed seeds WorthRelabeling's degree sampler.
const kSeed uint32 = 27491095

// Run counts triangles in g, first relabeling by descending degree
// when WorthRelabeling reports the degree distribution justifies it.
func Run(g *csr.Graph, opts ...Option) (int64, error) {
	if g.Directed() {
		return 0, ErrDirectedGraph
	}
	if WorthRelabeling(g, opts...) {
		g = builder.RelabelByDegree(g)
	}

	return Count(g)
}

// Count returns the number of triangles in g via ordered
// merge-intersection counting. g must be undirected.
func Count(g *csr.Graph) (int64, error) {
	if g.Directed() {
		return 0, ErrDirectedGraph
	}
	n := g.NumNodes()

	return parallel.Reduce(n, int64(0), func(lo, hi int) int64 {
		var local int64
		for u := lo; u < hi; u++ {
			uNeigh := g.OutNeigh(edge.NodeID(u))
			for _, v := range uNeigh {
				if v >= edge.NodeID(u) {
					break
				}
				local += countCommonBelow(uNeigh, g.OutNeigh(v), v)
			}
		}

		return local
	}, func(a, b int64) int64 { return a + b }), nil
}

// countCommonBelow counts elements common to uNeigh and vNeigh that
// are strictly less than bound, advancing a single pointer into uNeigh
// as vNeigh is scanned (both slices are sorted ascending).
func countCommonBelow(uNeigh, vNeigh []edge.NodeID, bound edge.NodeID) int64 {
	var count int64
	i := 0
	for _, w := range vNeigh {
		if w >= bound {
			break
		}
		for i < len(uNeigh) && uNeigh[i] < w {
			i++
		}
		if i < len(uNeigh) && uNeigh[i] == w {
			count++
		}
	}

	return count
}

// WorthRelabeling samples cfg.SampleSize out-degrees uniformly at
// random and reports whether the distribution looks power-law enough
// (mean > 2x median) with a high enough average degree (>= 10) that
// relabeling by descending degree should pay for itself in cache
// locality before counting.
func WorthRelabeling(g *csr.Graph, opts ...Option) bool {
	cfg := newConfig(opts)
	n := g.NumNodes()
	if n == 0 {
		return false
	}
	sampleSize := cfg.SampleSize
	if sampleSize > n {
		sampleSize = n
	}

	rng := mt19937.New(kSeed)
	samples := make([]int, sampleSize)
	var sum int
	for i := range samples {
		u := edge.NodeID(rng.Intn(n))
		d := g.OutDegree(u)
		samples[i] = d
		sum += d
	}
	sort.Ints(samples)

	median := float64(samples[len(samples)/2])
	mean := float64(sum) / float64(len(samples))
	avgDegree := float64(g.NumEdgesDirected()) / float64(n)

	return mean > 2*median && avgDegree >= 10
}
