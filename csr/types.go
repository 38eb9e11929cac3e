package csr

import (
	"errors"

	"github.com/katalvlaran/gapgo/edge"
)

// Sentinel errors for Graph construction and access.
var (
	// ErrInvalidOffsets is returned when outOffsets is not monotonically
	// non-decreasing, has the wrong length, or disagrees with len(neighbors).
	ErrInvalidOffsets = errors.New("csr: invalid offsets array")

	// ErrVertexOutOfRange describes a vertex ID outside [0, N). No
	// function in this package returns it: the accessors panic on an
	// out-of-range ID instead.
	ErrVertexOutOfRange = errors.New("csr: vertex out of range")

	// ErrNoInverseAdjacency describes a directed graph built without
	// inverse adjacency. No function in this package returns it: InNeigh
	// on such a graph panics instead.
	ErrNoInverseAdjacency = errors.New("csr: graph has no inverse adjacency")
)

// Graph is the compressed sparse-row representation of a directed or
// undirected graph. See the package doc for the invariants it
// guarantees once constructed by the builder package.
type Graph struct {
	n        int
	m        edge.Offset
	directed bool
	hasInv   bool

	outOffsets []edge.Offset
	outNeigh   []edge.NodeID
	outIndex   [][]edge.NodeID

	inOffsets []edge.Offset
	inNeigh   []edge.NodeID
	inIndex   [][]edge.NodeID

	weighted   bool
	outWeights []edge.Weight
	inWeights  []edge.Weight
}

// Weighted reports whether this graph carries per-edge weights.
func (g *Graph) Weighted() bool { return g.weighted }

// OutWeight returns the weight of the j-th outgoing edge of u (the edge
// to OutNeigh(u)[j]). Panics if the graph is unweighted.
func (g *Graph) OutWeight(u edge.NodeID, j int) edge.Weight {
	return g.outWeights[g.outOffsets[u]+edge.Offset(j)]
}

// InWeight is the InNeigh counterpart of OutWeight.
func (g *Graph) InWeight(u edge.NodeID, j int) edge.Weight {
	if !g.directed {
		return g.outWeights[g.outOffsets[u]+edge.Offset(j)]
	}

	return g.inWeights[g.inOffsets[u]+edge.Offset(j)]
}

// NumNodes returns N, the vertex count.
func (g *Graph) NumNodes() int { return g.n }

// NumEdgesDirected returns M, the directed edge count (for an
// undirected graph this counts each undirected edge twice, once per
// direction, matching the CSR storage layout).
func (g *Graph) NumEdgesDirected() edge.Offset { return g.m }

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// HasInverse reports whether a directed graph carries a separate
// inverse adjacency (always true for undirected graphs, where InNeigh
// aliases OutNeigh).
func (g *Graph) HasInverse() bool { return !g.directed || g.hasInv }

// OutNeigh returns the outgoing neighborhood of u as a read-only slice,
// sorted ascending and duplicate-free. Panics if u is out of range, the
// same contract the teacher's core package documents for index
// accessors on an already-validated graph.
func (g *Graph) OutNeigh(u edge.NodeID) []edge.NodeID {
	return g.outIndex[u]
}

// OutNeighFrom returns u's outgoing neighborhood starting at the k-th
// entry, or nil when u has k or fewer neighbors.
func (g *Graph) OutNeighFrom(u edge.NodeID, k int) []edge.NodeID {
	nb := g.outIndex[u]
	if k >= len(nb) {
		return nil
	}

	return nb[k:]
}

// OutNeighAt reports the k-th outgoing neighbor of u, if it exists.
// Used by Afforest to probe a single sampled neighbor without allocating
// a sub-slice.
func (g *Graph) OutNeighAt(u edge.NodeID, k int) (edge.NodeID, bool) {
	nb := g.outIndex[u]
	if k < 0 || k >= len(nb) {
		return 0, false
	}

	return nb[k], true
}

// InNeigh returns the incoming neighborhood of u. For undirected graphs
// this is identical to OutNeigh(u). For directed graphs it requires the
// graph to have been built with inverse adjacency.
func (g *Graph) InNeigh(u edge.NodeID) []edge.NodeID {
	if !g.directed {
		return g.outIndex[u]
	}

	return g.inIndex[u]
}

// OutDegree returns len(OutNeigh(u)).
func (g *Graph) OutDegree(u edge.NodeID) int { return len(g.outIndex[u]) }

// InDegree returns len(InNeigh(u)).
func (g *Graph) InDegree(u edge.NodeID) int {
	if !g.directed {
		return len(g.outIndex[u])
	}

	return len(g.inIndex[u])
}

// Vertices returns the dense vertex ID range [0, N) as a freshly
// allocated slice. Kernels that only need to iterate once typically
// prefer parallel.For(g.NumNodes(), ...) directly; this exists for
// callers (tests, cmd/gapgo-convert's edge-list writers) that want the
// slice.
func (g *Graph) Vertices() []edge.NodeID {
	out := make([]edge.NodeID, g.n)
	for i := range out {
		out[i] = edge.NodeID(i)
	}

	return out
}

// OutOffsetOf returns the absolute index of u's first out-neighbor slot
// within the shared out-neighbor array, i.e. g.outOffsets[u]. Adding a
// neighbor's position j within OutNeigh(u) gives the absolute slot
// offset the betweenness centrality successor bitmap indexes by.
func (g *Graph) OutOffsetOf(u edge.NodeID) edge.Offset {
	return g.outOffsets[u]
}

// InOffsetOf is the InNeigh counterpart of OutOffsetOf.
func (g *Graph) InOffsetOf(u edge.NodeID) edge.Offset {
	if !g.directed {
		return g.outOffsets[u]
	}

	return g.inOffsets[u]
}
