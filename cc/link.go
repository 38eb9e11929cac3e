package cc

import (
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/parallel"
)

// Link unions u and v's components in comp via lock-free union by
// larger root: the higher-numbered root is always linked under the
// lower-numbered one, which guarantees progress without locks since
// every successful CAS strictly decreases some root's label.
func Link(u, v edge.NodeID, comp []edge.NodeID) {
	p1, p2 := comp[u], comp[v]
	for p1 != p2 {
		high, low := p1, p2
		if high < low {
			high, low = low, high
		}
		pHigh := comp[high]
		if pHigh == low {
			return
		}
		if pHigh == high {
			if parallel.CompareAndSwap32(&comp[high], high, low) {
				return
			}
			p1, p2 = comp[high], comp[low]
			continue
		}
		p1, p2 = comp[pHigh], comp[low]
	}
}

// compress flattens every vertex's path to its root: comp[n] =
// comp[comp[n]] repeated until no entry changes. Parallel over
// vertices, since each vertex's compression is independent.
func compress(comp []edge.NodeID) {
	n := len(comp)
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			for comp[u] != comp[comp[u]] {
				comp[u] = comp[comp[u]]
			}
		}
	})
}
