package builder

import (
	"sort"
	"sync/atomic"

	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/parallel"
	"github.com/katalvlaran/gapgo/internal/pvec"
)

// inPlaceSortDedupe sorts el ascending by (U, V), then removes
// duplicate pairs and self-loops in place, shrinking its length. This
// is the spec's "sort the edge list in place; deduplicate and remove
// self-loops in place; shrink length" step.
func inPlaceSortDedupe(el edge.List, transpose bool) edge.List {
	if transpose {
		for i := range el {
			el[i].U, el[i].V = el[i].V, el[i].U
		}
	}
	sort.Slice(el, func(i, j int) bool {
		if el[i].U != el[j].U {
			return el[i].U < el[j].U
		}
		return el[i].V < el[j].V
	})

	w := 0
	for r := 0; r < len(el); r++ {
		if el[r].U == el[r].V {
			continue // drop self-loop
		}
		if w > 0 && el[w-1] == el[r] {
			continue // drop duplicate
		}
		el[w] = el[r]
		w++
	}

	return el[:w]
}

// buildForwardInPlace builds the out-adjacency directly from a
// sorted/deduplicated edge list: a single counting pass and a single
// scatter pass suffice (no later squish), because sortedness by (U, V)
// means edge i of the list belongs at slot i of the neighbor array, so
// each vertex's neighbors land in ascending order.
//
// Design note: the GAP C++ reference reuses the edge list's own memory
// as the neighbor buffer via pointer reinterpretation. Go offers no
// such raw reinterpretation of a []edge.Edge as a []edge.NodeID, so
// this function allocates a fresh buffer through a pvec.ParallelVector
// and Leaks it into the result — the ownership-transfer idiom pvec
// exists for — while the caller drops its reference to el immediately
// after, so the edge list's memory is freed rather than retained
// alongside the CSR (see design notes in builder/doc.go and DESIGN.md).
func buildForwardInPlace(el edge.List, n int) (offsets []edge.Offset, neighbors []edge.NodeID) {
	degrees := countDegrees(el, n, Config{Directed: true})
	offsets64 := parallel.PrefixSum(degrees)
	offsets = toOffsets(offsets64)

	buf, _ := pvec.NewParallelVector[edge.NodeID](int(offsets64[n]))
	parallel.For(len(el), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			buf.Set(i, el[i].V)
		}
	})

	return offsets, buf.Leak()
}

// binarySearchNodeID reports whether target is present in the sorted,
// duplicate-free slice adj.
func binarySearchNodeID(adj []edge.NodeID, target edge.NodeID) bool {
	lo, hi := 0, len(adj)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case adj[mid] == target:
			return true
		case adj[mid] < target:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}

// symmetrizeInPlace expands a forward-only CSR (offsets, neighbors)
// into a symmetric one by the spec's three-pass scheme: count missing
// inverses via binary search, reallocate shifting each old adjacency to
// the tail of its new (larger) segment, then fill the freed head slots
// with the missing mirror edges before sorting every adjacency.
func symmetrizeInPlace(n int, offsets []edge.Offset, neighbors []edge.NodeID) ([]edge.Offset, []edge.NodeID) {
	invsNeeded := make([]int64, n)
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			for _, v := range neighbors[offsets[u]:offsets[u+1]] {
				vAdj := neighbors[offsets[v]:offsets[v+1]]
				if !binarySearchNodeID(vAdj, edge.NodeID(u)) {
					atomic.AddInt64(&invsNeeded[v], 1)
				}
			}
		}
	})

	newDegrees := make([]int64, n)
	for v := 0; v < n; v++ {
		newDegrees[v] = int64(offsets[v+1]-offsets[v]) + invsNeeded[v]
	}
	newOffsets64 := parallel.PrefixSum(newDegrees)
	newOffsets := toOffsets(newOffsets64)
	newNeighbors := make([]edge.NodeID, newOffsets64[n])

	tailStart := make([]edge.Offset, n)
	parallel.For(n, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			tailStart[v] = newOffsets[v] + edge.Offset(invsNeeded[v])
			copy(newNeighbors[tailStart[v]:], neighbors[offsets[v]:offsets[v+1]])
		}
	})

	fillCursor := append([]edge.Offset(nil), newOffsets...)
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			for _, v := range neighbors[offsets[u]:offsets[u+1]] {
				vAdj := neighbors[offsets[v]:offsets[v+1]]
				if binarySearchNodeID(vAdj, edge.NodeID(u)) {
					continue // mirror already present
				}
				idx := atomic.AddInt64((*int64)(&fillCursor[v]), 1) - 1
				newNeighbors[idx] = edge.NodeID(u)
			}
		}
	})

	parallel.For(n, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			seg := newNeighbors[newOffsets[v]:newOffsets64[v+1]]
			sort.Slice(seg, func(i, j int) bool { return seg[i] < seg[j] })
		}
	})

	return newOffsets, newNeighbors
}

// buildInverseInPlace derives an inverse adjacency (in-neighbors) from
// the original edge list by a transpose count+scatter pass, then sorts
// each resulting adjacency (the transpose is not naturally sorted,
// since el is sorted by (U, V), not (V, U)).
func buildInverseInPlace(el edge.List, n int) ([]edge.Offset, []edge.NodeID) {
	inDegrees := countDegrees(el, n, Config{Directed: true, Transpose: true})
	offsets64 := parallel.PrefixSum(inDegrees)
	offsets := toOffsets(offsets64)
	neighbors := scatterUnweighted(el, offsets64, n, Config{Directed: true, Transpose: true})

	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			seg := neighbors[offsets[u]:offsets[u+1]]
			sort.Slice(seg, func(i, j int) bool { return seg[i] < seg[j] })
		}
	})

	return offsets, neighbors
}

// makeCSRInPlace implements MakeCSRInPlace: sort+dedupe the edge list,
// build the forward adjacency directly (no squish needed), then either
// symmetrize it or attach a separately-built inverse adjacency.
func makeCSRInPlace(el edge.List, n int, cfg Config) csr.Spec {
	el = inPlaceSortDedupe(el, cfg.Transpose)

	spec := csr.Spec{Directed: cfg.Directed, N: n}
	if !cfg.Directed || cfg.Symmetrize {
		offsets, neighbors := buildForwardInPlace(el, n)
		offsets, neighbors = symmetrizeInPlace(n, offsets, neighbors)
		spec.OutOffsets, spec.OutNeighbors = offsets, neighbors

		return spec
	}

	offsets, neighbors := buildForwardInPlace(el, n)
	spec.OutOffsets, spec.OutNeighbors = offsets, neighbors
	if cfg.Inverse {
		spec.InOffsets, spec.InNeighbors = buildInverseInPlace(el, n)
	}

	return spec
}
