package builder

import (
	"sort"
	"sync/atomic"

	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/parallel"
)

func toOffsets(xs []int64) []edge.Offset {
	out := make([]edge.Offset, len(xs))
	for i, x := range xs {
		out[i] = edge.Offset(x)
	}

	return out
}

// countDegrees performs a parallel pass over el, incrementing
// degrees[u] (and degrees[v] too, when the result should be symmetric)
// via atomic fetch-and-add.
func countDegrees(el edge.List, n int, cfg Config) []int64 {
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

// scatterUnweighted performs the parallel edge-scatter pass: for each
// (u, v), atomically fetch-and-add cursor[u] and write v at the
// returned index, mirroring degrees' symmetric/transpose handling.
func scatterUnweighted(el edge.List, offsets []int64, n int, cfg Config) []edge.NodeID {
	cursor := append([]int64(nil), offsets...)
	neighbors := make([]edge.NodeID, offsets[n])
	symmetric := cfg.Symmetrize || !cfg.Directed
	parallel.For(len(el), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			u, v := el[i].U, el[i].V
			if cfg.Transpose {
				u, v = v, u
			}
			idx := atomic.AddInt64(&cursor[u], 1) - 1
			neighbors[idx] = v
			if symmetric {
				idx2 := atomic.AddInt64(&cursor[v], 1) - 1
				neighbors[idx2] = u
			}
		}
	})

	return neighbors
}

// makeCSRUnweighted is the copying construction path (MakeCSR in the
// spec): count degrees, prefix-sum to offsets, scatter edges, then
// squish to restore sorted/dedup/no-self-loop invariants.
func makeCSRUnweighted(el edge.List, n int, cfg Config) (outOffsets []edge.Offset, outNeighbors []edge.NodeID) {
	degrees := countDegrees(el, n, cfg)
	offsets := parallel.PrefixSum(degrees)
	rawNeighbors := scatterUnweighted(el, offsets, n, cfg)
	index := csr.GenIndex(toOffsets(offsets), rawNeighbors)

	return squish(n, index)
}

// squish sorts, deduplicates, and removes self-loops from each
// per-vertex adjacency in index, then compacts the result into a fresh
// offsets/neighbors pair.
func squish(n int, index [][]edge.NodeID) ([]edge.Offset, []edge.NodeID) {
	newDegrees := make([]int64, n)
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			index[u] = sortDedupSelf(index[u], edge.NodeID(u))
			newDegrees[u] = int64(len(index[u]))
		}
	})

	offsets64 := parallel.PrefixSum(newDegrees)
	offsets := toOffsets(offsets64)
	neighbors := make([]edge.NodeID, offsets64[n])
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			copy(neighbors[offsets[u]:], index[u])
		}
	})

	return offsets, neighbors
}

// sortDedupSelf sorts adj ascending, removes duplicates and any
// occurrence of self, and returns the resulting prefix of adj (reusing
// its backing array).
func sortDedupSelf(adj []edge.NodeID, self edge.NodeID) []edge.NodeID {
	sort.Slice(adj, func(i, j int) bool { return adj[i] < adj[j] })
	w := 0
	for r := 0; r < len(adj); r++ {
		if adj[r] == self {
			continue
		}
		if w > 0 && adj[w-1] == adj[r] {
			continue
		}
		adj[w] = adj[r]
		w++
	}

	return adj[:w]
}
