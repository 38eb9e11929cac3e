package csr

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// ErrTooLargeForDOT is returned by WriteDOT when the graph exceeds
// maxDOTNodes; DOT export is a debugging aid for small graphs, not a
// bulk serialization format (reader.WriteSerialized covers that).
var ErrTooLargeForDOT = errors.New("csr: graph too large for DOT export")

// maxDOTNodes bounds WriteDOT to graphs small enough to be useful as a
// visual debugging aid.
const maxDOTNodes = 5000

// WriteDOT renders g as Graphviz DOT source, for use by the CLI's -a
// analysis mode and by tests that want a human-checkable rendering of a
// small synthetic or toy graph. It builds a gonum simple graph mirroring
// g's edges and marshals it with gonum's dot encoder.
func (g *Graph) WriteDOT(name string) ([]byte, error) {
	if g.n > maxDOTNodes {
		return nil, fmt.Errorf("%w: N=%d > %d", ErrTooLargeForDOT, g.n, maxDOTNodes)
	}

	if g.directed {
		gg := simple.NewDirectedGraph()
		for i := 0; i < g.n; i++ {
			gg.AddNode(simple.Node(int64(i)))
		}
		for u := 0; u < g.n; u++ {
			for _, v := range g.outIndex[u] {
				gg.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
			}
		}

		return dot.Marshal(gg, name, "", "  ")
	}

	gg := simple.NewUndirectedGraph()
	for i := 0; i < g.n; i++ {
		gg.AddNode(simple.Node(int64(i)))
	}
	for u := 0; u < g.n; u++ {
		for _, v := range g.outIndex[u] {
			if int64(v) < int64(u) {
				continue // each undirected pair added once
			}
			gg.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
		}
	}

	return dot.Marshal(gg, name, "", "  ")
}
