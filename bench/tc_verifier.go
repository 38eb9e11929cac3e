package bench

import (
	"fmt"

	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
)

// TCVerifier independently recomputes the triangle count with a
// hash-set intersection (rather than tc.Count's sorted-merge), serving
// as a cross-check of the result.
type TCVerifier struct{}

func (TCVerifier) Verify(g *csr.Graph, params, result any) error {
	got, ok := result.(int64)
	if !ok {
		return fmt.Errorf("bench: TCVerifier expects int64 result, got %T", result)
	}

	want := bruteForceTriangles(g)
	if got != want {
		return fmt.Errorf("bench: triangle count mismatch: want %d got %d", want, got)
	}

	return nil
}

// bruteForceTriangles counts triangles via per-vertex neighbor sets,
// independent of tc.Count's ordered merge.
func bruteForceTriangles(g *csr.Graph) int64 {
	n := g.NumNodes()
	neighSets := make([]map[edge.NodeID]bool, n)
	for u := edge.NodeID(0); u < edge.NodeID(n); u++ {
		set := make(map[edge.NodeID]bool, g.OutDegree(u))
		for _, v := range g.OutNeigh(u) {
			set[v] = true
		}
		neighSets[u] = set
	}

	var count int64
	for u := edge.NodeID(0); u < edge.NodeID(n); u++ {
		for _, v := range g.OutNeigh(u) {
			if v >= u {
				continue
			}
			for _, w := range g.OutNeigh(v) {
				if w >= v {
					continue
				}
				if neighSets[u][w] {
					count++
				}
			}
		}
	}

	return count
}
