package builder

import (
	"sort"

	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/parallel"
)

// RelabelByDegree reorders g's vertices by descending out-degree,
// returning a fresh graph with the same topology under the new
// labeling. High-degree vertices land at low IDs, which tends to
// improve cache locality for kernels that scan neighbors in ID order.
//
// Only defined for undirected graphs; Build rejects directed input via
// ErrRelabelDirected before calling this. Exported so tc's
// WorthRelabeling heuristic can reuse the same reordering.
func RelabelByDegree(g *csr.Graph) *csr.Graph {
	n := g.NumNodes()
	type degreeRank struct {
		old    edge.NodeID
		degree int
	}
	ranked := make([]degreeRank, n)
	for u := 0; u < n; u++ {
		ranked[u] = degreeRank{old: edge.NodeID(u), degree: g.OutDegree(edge.NodeID(u))}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].degree > ranked[j].degree })

	// newLabel[old] = new ID.
	newLabel := make([]edge.NodeID, n)
	for newID, r := range ranked {
		newLabel[r.old] = edge.NodeID(newID)
	}

	degrees := make([]int64, n)
	for u := 0; u < n; u++ {
		degrees[newLabel[u]] = int64(g.OutDegree(edge.NodeID(u)))
	}
	offsets64 := parallel.PrefixSum(degrees)
	offsets := toOffsets(offsets64)
	neighbors := make([]edge.NodeID, offsets64[n])

	parallel.For(n, func(lo, hi int) {
		for oldU := lo; oldU < hi; oldU++ {
			newU := newLabel[oldU]
			seg := neighbors[offsets[newU]:offsets[newU+1]]
			for j, oldV := range g.OutNeigh(edge.NodeID(oldU)) {
				seg[j] = newLabel[oldV]
			}
			sort.Slice(seg, func(i, j int) bool { return seg[i] < seg[j] })
		}
	})

	relabeled, err := csr.NewFromArrays(csr.Spec{
		Directed:     false,
		N:            n,
		OutOffsets:   offsets,
		OutNeighbors: neighbors,
	})
	if err != nil {
		// offsets/neighbors are constructed to satisfy csr's invariants
		// by design; a failure here indicates a bug in this function.
		panic("builder: RelabelByDegree produced an invalid CSR: " + err.Error())
	}

	return relabeled
}
