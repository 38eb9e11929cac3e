package builder

import (
	"sort"
	"sync/atomic"

	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/parallel"
)

// wnbr pairs a neighbor with the weight of the edge reaching it; used
// only as scratch state while squishing a weighted adjacency.
type wnbr struct {
	v edge.NodeID
	w edge.Weight
}

func countDegreesWeighted(el edge.WList, n int, cfg Config) []int64 {
	degrees := make([]int64, n)
	symmetric := cfg.Symmetrize || !cfg.Directed
	parallel.For(len(el), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			u, v := el[i].U, el[i].V
			if cfg.Transpose {
				u, v = v, u
			}
			atomic.AddInt64(&degrees[u], 1)
			if symmetric {
				atomic.AddInt64(&degrees[v], 1)
			}
		}
	})

	return degrees
}

func scatterWeighted(el edge.WList, offsets []int64, n int, cfg Config) [][]wnbr {
	cursor := append([]int64(nil), offsets...)
	flat := make([]wnbr, offsets[n])
	symmetric := cfg.Symmetrize || !cfg.Directed
	parallel.For(len(el), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			u, v, w := el[i].U, el[i].V, el[i].W
			if cfg.Transpose {
				u, v = v, u
			}
			idx := atomic.AddInt64(&cursor[u], 1) - 1
			flat[idx] = wnbr{v: v, w: w}
			if symmetric {
				idx2 := atomic.AddInt64(&cursor[v], 1) - 1
				flat[idx2] = wnbr{v: u, w: w}
			}
		}
	})

	index := make([][]wnbr, n)
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			index[u] = flat[offsets[u]:offsets[u+1]]
		}
	})

	return index
}

// makeCSRWeighted mirrors makeCSRUnweighted, carrying a weight per
// neighbor slot through the scatter and squish passes.
func makeCSRWeighted(el edge.WList, n int, cfg Config) (outOffsets []edge.Offset, outNeighbors []edge.NodeID, outWeights []edge.Weight) {
	degrees := countDegreesWeighted(el, n, cfg)
	offsets := parallel.PrefixSum(degrees)
	index := scatterWeighted(el, offsets, n, cfg)

	return squishWeighted(n, index)
}

func squishWeighted(n int, index [][]wnbr) ([]edge.Offset, []edge.NodeID, []edge.Weight) {
	newDegrees := make([]int64, n)
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			index[u] = sortDedupSelfWeighted(index[u], edge.NodeID(u))
			newDegrees[u] = int64(len(index[u]))
		}
	})

	offsets64 := parallel.PrefixSum(newDegrees)
	offsets := toOffsets(offsets64)
	neighbors := make([]edge.NodeID, offsets64[n])
	weights := make([]edge.Weight, offsets64[n])
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			base := offsets[u]
			for j, nb := range index[u] {
				neighbors[int(base)+j] = nb.v
				weights[int(base)+j] = nb.w
			}
		}
	})

	return offsets, neighbors, weights
}

func sortDedupSelfWeighted(adj []wnbr, self edge.NodeID) []wnbr {
	sort.Slice(adj, func(i, j int) bool { return adj[i].v < adj[j].v })
	w := 0
	for r := 0; r < len(adj); r++ {
		if adj[r].v == self {
			continue
		}
		if w > 0 && adj[w-1].v == adj[r].v {
			continue
		}
		adj[w] = adj[r]
		w++
	}

	return adj[:w]
}
