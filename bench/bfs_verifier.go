package bench

import (
	"fmt"

	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
)

// BFSParams carries bfs.Run's parameters for BFSVerifier.
type BFSParams struct {
	Source edge.NodeID
}

// BFSVerifier checks a parent array against an independent serial BFS:
// every reached vertex's parent edge must actually exist in g, and the
// reached set must match the oracle's exactly.
type BFSVerifier struct{}

func (BFSVerifier) Verify(g *csr.Graph, params, result any) error {
	p, ok := params.(BFSParams)
	if !ok {
		return fmt.Errorf("bench: BFSVerifier expects BFSParams, got %T", params)
	}
	parent, ok := result.([]edge.NodeID)
	if !ok {
		return fmt.Errorf("bench: BFSVerifier expects []edge.NodeID result, got %T", result)
	}

	n := g.NumNodes()
	if len(parent) != n {
		return fmt.Errorf("bench: parent length %d != NumNodes %d", len(parent), n)
	}
	if parent[p.Source] != p.Source {
		return fmt.Errorf("bench: parent[source]=%d, want source itself %d", parent[p.Source], p.Source)
	}

	wantReached := serialBFS(g, p.Source)
	for u := edge.NodeID(0); u < edge.NodeID(n); u++ {
		reached := parent[u] >= 0
		if reached != wantReached[u] {
			return fmt.Errorf("bench: vertex %d reachability mismatch: want %v got %v", u, wantReached[u], reached)
		}
		if reached && u != p.Source {
			par := parent[u]
			if !containsNeighbor(g.OutNeigh(par), u) {
				return fmt.Errorf("bench: vertex %d claims parent %d, but no edge %d->%d exists", u, par, par, u)
			}
		}
	}

	return nil
}

// serialBFS returns reached[u] for a plain single-threaded BFS from
// source, independent of bfs.Run's direction-optimizing traversal.
func serialBFS(g *csr.Graph, source edge.NodeID) []bool {
	n := g.NumNodes()
	reached := make([]bool, n)
	reached[source] = true
	queue := []edge.NodeID{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.OutNeigh(u) {
			if !reached[v] {
				reached[v] = true
				queue = append(queue, v)
			}
		}
	}

	return reached
}

func containsNeighbor(neigh []edge.NodeID, target edge.NodeID) bool {
	lo, hi := 0, len(neigh)
	for lo < hi {
		mid := (lo + hi) / 2
		if neigh[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo < len(neigh) && neigh[lo] == target
}
