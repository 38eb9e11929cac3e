package bench

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
)

// SSSPParams carries sssp.Run's parameters for SSSPVerifier.
type SSSPParams struct {
	Source edge.NodeID
}

// SSSPVerifier independently recomputes shortest distances via a
// textbook Dijkstra oracle and compares them against result
// ([]int64, using dist == sssp.Infinity for unreachable).
type SSSPVerifier struct {
	// Infinity is the sentinel value the kernel uses for unreachable
	// vertices (sssp.Infinity); passed in rather than imported so
	// bench does not need to depend on the sssp package.
	Infinity int64
}

func (v SSSPVerifier) Verify(g *csr.Graph, params, result any) error {
	p, ok := params.(SSSPParams)
	if !ok {
		return fmt.Errorf("bench: SSSPVerifier expects SSSPParams, got %T", params)
	}
	dist, ok := result.([]int64)
	if !ok {
		return fmt.Errorf("bench: SSSPVerifier expects []int64 result, got %T", result)
	}

	want := serialDijkstra(g, p.Source)
	for u := range want {
		got := dist[u]
		expect := want[u]
		if expect >= math.MaxInt64/4 {
			if got != v.Infinity {
				return fmt.Errorf("bench: vertex %d should be unreachable, got dist %d", u, got)
			}
			continue
		}
		if got != expect {
			return fmt.Errorf("bench: vertex %d dist mismatch: want %d got %d", u, expect, got)
		}
	}

	return nil
}

// serialDijkstra is a textbook O(n^2) Dijkstra, independent of sssp's
// delta-stepping implementation, used purely as an oracle.
func serialDijkstra(g *csr.Graph, source edge.NodeID) []int64 {
	n := g.NumNodes()
	const unreached = math.MaxInt64 / 2
	dist := make([]int64, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = unreached
	}
	dist[source] = 0

	for range n {
		u, best := edge.NodeID(-1), int64(unreached+1)
		for v := 0; v < n; v++ {
			if !visited[v] && dist[v] < best {
				u, best = edge.NodeID(v), dist[v]
			}
		}
		if u < 0 {
			break
		}
		visited[u] = true
		for j, v := range g.OutNeigh(u) {
			w := int64(1)
			if g.Weighted() {
				w = int64(g.OutWeight(u, j))
			}
			if nd := dist[u] + w; nd < dist[v] {
				dist[v] = nd
			}
		}
	}

	return dist
}
