package sssp

import (
	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/parallel"
)

// Run computes single-source shortest path distances from source over
// g via Δ-stepping. If g is unweighted, every edge is treated as
// weight 1 (reducing to unit-weight Dijkstra).
func Run(g *csr.Graph, source edge.NodeID, opts ...Option) []int64 {
	cfg := newConfig(opts)
	delta := cfg.Delta
	n := g.NumNodes()

	dist := make([]int64, n)
	parallel.For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dist[i] = Infinity
		}
	})
	dist[source] = 0

	bins := map[int64][]edge.NodeID{0: {source}}
	maxBin := int64(0)

	for currIdx := int64(0); currIdx <= maxBin; currIdx++ {
		batch := bins[currIdx]
		delete(bins, currIdx)

		for len(batch) > 0 {
			relaxed := relaxBatch(g, dist, batch, delta, currIdx)

			var same []edge.NodeID
			for _, v := range relaxed {
				b := dist[v] / delta
				if b > maxBin {
					maxBin = b
				}
				if b == currIdx {
					same = append(same, v)
				} else {
					bins[b] = append(bins[b], v)
				}
			}
			batch = same
		}
	}

	return dist
}

// relaxBatch relaxes every outgoing edge of every vertex in batch in
// parallel, CAS-looping on dist to install improvements, and returns
// every vertex whose distance was lowered this round (duplicates are
// possible and harmless: the caller re-buckets by current dist, and
// relaxing an already-optimal distance again is a no-op CAS failure).
func relaxBatch(g *csr.Graph, dist []int64, batch []edge.NodeID, delta, currIdx int64) []edge.NodeID {
	return parallel.Reduce(len(batch), []edge.NodeID(nil), func(lo, hi int) []edge.NodeID {
		var local []edge.NodeID
		for i := lo; i < hi; i++ {
			u := batch[i]
			if dist[u] < delta*currIdx {
				continue // moved to an earlier bucket since being enqueued here
			}
			for j, v := range g.OutNeigh(u) {
				w := edgeWeight(g, u, j)
				newDist := dist[u] + w
				for {
					old := dist[v]
					if newDist >= old {
						break
					}
					if parallel.CompareAndSwapInt64(&dist[v], old, newDist) {
						local = append(local, v)
						break
					}
				}
			}
		}

		return local
	}, func(a, b []edge.NodeID) []edge.NodeID { return append(a, b...) })
}

func edgeWeight(g *csr.Graph, u edge.NodeID, j int) int64 {
	if !g.Weighted() {
		return 1
	}

	return int64(g.OutWeight(u, j))
}
