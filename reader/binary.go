package reader

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
)

// sgReader parses the .sg/.wsg binary serialized graph layout (§6):
// bool directed, int64 M, int64 N, int64[N+1] out-offsets,
// NodeID[M] (or (NodeID, Weight)[M] for .wsg) out-neighbors, and,
// if directed, the same pair of arrays again for inverse adjacency.
type sgReader struct {
	r        io.ReadCloser
	weighted bool
}

func (s *sgReader) Read() (edge.List, int, error) {
	g, err := s.readGraph()
	if err != nil {
		return nil, 0, err
	}

	return flattenOut(g), g.NumNodes(), nil
}

// ReadWeighted is the weighted counterpart of Read, for .wsg files.
func (s *sgReader) ReadWeighted() (edge.WList, int, error) {
	g, err := s.readGraph()
	if err != nil {
		return nil, 0, err
	}

	var el edge.WList
	for u := 0; u < g.NumNodes(); u++ {
		for j, v := range g.OutNeigh(edge.NodeID(u)) {
			el = append(el, edge.WEdge{U: edge.NodeID(u), V: v, W: g.OutWeight(edge.NodeID(u), j)})
		}
	}

	return el, g.NumNodes(), nil
}

// ReadGraph builds a csr.Graph directly from the serialized layout,
// bypassing the builder entirely: the file already satisfies the CSR
// invariants by construction (it was written by WriteSerialized from
// an already-built graph).
func (s *sgReader) ReadGraph() (*csr.Graph, error) {
	return s.readGraph()
}

func (s *sgReader) readGraph() (*csr.Graph, error) {
	defer s.r.Close()
	br := bufio.NewReader(s.r)

	var directedByte uint8
	if err := binary.Read(br, binary.LittleEndian, &directedByte); err != nil {
		return nil, fmt.Errorf("reader: %s: read directed flag: %w", sgKind(s.weighted), err)
	}
	directed := directedByte != 0

	var m, n int64
	if err := binary.Read(br, binary.LittleEndian, &m); err != nil {
		return nil, fmt.Errorf("reader: %s: read M: %w", sgKind(s.weighted), err)
	}
	if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("reader: %s: read N: %w", sgKind(s.weighted), err)
	}

	spec := csr.Spec{Directed: directed, N: int(n)}
	var err error
	spec.OutOffsets, err = readOffsets(br, n)
	if err != nil {
		return nil, err
	}
	spec.OutNeighbors, spec.OutWeights, err = s.readNeighbors(br, m)
	if err != nil {
		return nil, err
	}

	if directed {
		spec.InOffsets, err = readOffsets(br, n)
		if err != nil {
			return nil, err
		}
		spec.InNeighbors, spec.InWeights, err = s.readNeighbors(br, m)
		if err != nil {
			return nil, err
		}
	}

	return csr.NewFromArrays(spec)
}

func readOffsets(br *bufio.Reader, n int64) ([]edge.Offset, error) {
	raw := make([]int64, n+1)
	if err := binary.Read(br, binary.LittleEndian, raw); err != nil {
		return nil, fmt.Errorf("reader: read offsets: %w", err)
	}
	offsets := make([]edge.Offset, n+1)
	for i, x := range raw {
		offsets[i] = edge.Offset(x)
	}

	return offsets, nil
}

func (s *sgReader) readNeighbors(br *bufio.Reader, m int64) ([]edge.NodeID, []edge.Weight, error) {
	neighbors := make([]edge.NodeID, m)
	if !s.weighted {
		if err := binary.Read(br, binary.LittleEndian, neighbors); err != nil {
			return nil, nil, fmt.Errorf("reader: read neighbors: %w", err)
		}

		return neighbors, nil, nil
	}

	weights := make([]edge.Weight, m)
	for i := int64(0); i < m; i++ {
		if err := binary.Read(br, binary.LittleEndian, &neighbors[i]); err != nil {
			return nil, nil, fmt.Errorf("reader: read weighted neighbor %d: %w", i, err)
		}
		if err := binary.Read(br, binary.LittleEndian, &weights[i]); err != nil {
			return nil, nil, fmt.Errorf("reader: read weighted weight %d: %w", i, err)
		}
	}

	return neighbors, weights, nil
}

func flattenOut(g *csr.Graph) edge.List {
	var el edge.List
	for u := 0; u < g.NumNodes(); u++ {
		for _, v := range g.OutNeigh(edge.NodeID(u)) {
			el = append(el, edge.Edge{U: edge.NodeID(u), V: v})
		}
	}

	return el
}

func sgKind(weighted bool) string {
	if weighted {
		return ".wsg"
	}

	return ".sg"
}

// WriteSerialized persists g to w in the .sg/.wsg binary layout.
// weighted selects .wsg (NodeID, Weight) neighbor pairs; g must
// satisfy g.Weighted() in that case.
func WriteSerialized(w io.Writer, g *csr.Graph, weighted bool) error {
	bw := bufio.NewWriter(w)

	var directedByte uint8
	if g.Directed() {
		directedByte = 1
	}
	if err := binary.Write(bw, binary.LittleEndian, directedByte); err != nil {
		return fmt.Errorf("reader: write directed flag: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, int64(g.NumEdgesDirected())); err != nil {
		return fmt.Errorf("reader: write M: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, int64(g.NumNodes())); err != nil {
		return fmt.Errorf("reader: write N: %w", err)
	}

	if err := writeAdjacency(bw, g, weighted, g.OutNeigh, g.OutOffsetOf, g.OutWeight); err != nil {
		return err
	}
	if g.Directed() {
		if err := writeAdjacency(bw, g, weighted, g.InNeigh, g.InOffsetOf, g.InWeight); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeAdjacency(
	bw *bufio.Writer,
	g *csr.Graph,
	weighted bool,
	neigh func(edge.NodeID) []edge.NodeID,
	offsetOf func(edge.NodeID) edge.Offset,
	weightAt func(edge.NodeID, int) edge.Weight,
) error {
	n := g.NumNodes()
	offsets := make([]int64, n+1)
	for u := 0; u < n; u++ {
		offsets[u] = int64(offsetOf(edge.NodeID(u)))
	}
	offsets[n] = int64(g.NumEdgesDirected())
	if err := binary.Write(bw, binary.LittleEndian, offsets); err != nil {
		return fmt.Errorf("reader: write offsets: %w", err)
	}

	for u := 0; u < n; u++ {
		nb := neigh(edge.NodeID(u))
		for j, v := range nb {
			if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
				return fmt.Errorf("reader: write neighbor: %w", err)
			}
			if weighted {
				if err := binary.Write(bw, binary.LittleEndian, weightAt(edge.NodeID(u), j)); err != nil {
					return fmt.Errorf("reader: write weight: %w", err)
				}
			}
		}
	}

	return nil
}
