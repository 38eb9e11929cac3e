package csr

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/parallel"
)

// GenIndex builds a [][]edge.NodeID index of length N: index[u] is the
// sub-slice of neighbors belonging to u, derived from offsets in two
// pointer reads. Accelerates OutNeigh/InNeigh to O(1) instead of
// re-slicing neighbors[offsets[u]:offsets[u+1]] on every call.
func GenIndex(offsets []edge.Offset, neighbors []edge.NodeID) [][]edge.NodeID {
	n := len(offsets) - 1
	if n < 0 {
		n = 0
	}
	index := make([][]edge.NodeID, n)
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			index[u] = neighbors[offsets[u]:offsets[u+1]]
		}
	})

	return index
}

// Spec describes the CSR arrays a Graph is built from. Only the builder
// package is expected to populate one; it is exported so builder can
// live in its own package without an import cycle back into csr.
//
// InOffsets/InNeighbors may be nil for an undirected graph (InNeigh then
// aliases OutNeigh) or for a directed graph built without inverse
// adjacency. OutWeights/InWeights may be nil for an unweighted graph.
type Spec struct {
	Directed     bool
	N            int
	OutOffsets   []edge.Offset
	OutNeighbors []edge.NodeID
	OutWeights   []edge.Weight
	InOffsets    []edge.Offset
	InNeighbors  []edge.NodeID
	InWeights    []edge.Weight
}

// NewFromArrays constructs a Graph from spec, taking ownership of every
// slice it contains.
func NewFromArrays(spec Spec) (*Graph, error) {
	n, outOffsets, outNeighbors := spec.N, spec.OutOffsets, spec.OutNeighbors
	if len(outOffsets) != n+1 {
		return nil, fmt.Errorf("%w: len(outOffsets)=%d want %d", ErrInvalidOffsets, len(outOffsets), n+1)
	}
	if outOffsets[n] != edge.Offset(len(outNeighbors)) {
		return nil, fmt.Errorf("%w: outOffsets[N]=%d len(outNeighbors)=%d", ErrInvalidOffsets, outOffsets[n], len(outNeighbors))
	}
	for u := 0; u < n; u++ {
		if outOffsets[u] > outOffsets[u+1] {
			return nil, fmt.Errorf("%w: outOffsets[%d]=%d > outOffsets[%d]=%d", ErrInvalidOffsets, u, outOffsets[u], u+1, outOffsets[u+1])
		}
	}
	if spec.OutWeights != nil && len(spec.OutWeights) != len(outNeighbors) {
		return nil, fmt.Errorf("%w: len(outWeights)=%d len(outNeighbors)=%d", ErrInvalidOffsets, len(spec.OutWeights), len(outNeighbors))
	}

	g := &Graph{
		n:          n,
		m:          outOffsets[n],
		directed:   spec.Directed,
		outOffsets: outOffsets,
		outNeigh:   outNeighbors,
		outIndex:   GenIndex(outOffsets, outNeighbors),
		weighted:   spec.OutWeights != nil,
		outWeights: spec.OutWeights,
	}

	if spec.Directed && spec.InOffsets != nil {
		inOffsets, inNeighbors := spec.InOffsets, spec.InNeighbors
		if len(inOffsets) != n+1 {
			return nil, fmt.Errorf("%w: len(inOffsets)=%d want %d", ErrInvalidOffsets, len(inOffsets), n+1)
		}
		if inOffsets[n] != edge.Offset(len(inNeighbors)) {
			return nil, fmt.Errorf("%w: inOffsets[N]=%d len(inNeighbors)=%d", ErrInvalidOffsets, inOffsets[n], len(inNeighbors))
		}
		g.hasInv = true
		g.inOffsets = inOffsets
		g.inNeigh = inNeighbors
		g.inIndex = GenIndex(inOffsets, inNeighbors)
		g.inWeights = spec.InWeights
	}

	return g, nil
}

// PrintStats writes an N/M/directed summary to w, e.g. for the CLI's -a
// analysis flag.
func (g *Graph) PrintStats(w io.Writer) {
	kind := "undirected"
	if g.directed {
		kind = "directed"
	}
	fmt.Fprintf(w, "Graph: N=%d M=%d (%s)", g.n, g.m, kind)
	if g.directed {
		fmt.Fprintf(w, " inverse=%t", g.hasInv)
	}
	fmt.Fprintln(w)
}
