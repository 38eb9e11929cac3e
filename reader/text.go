package reader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gapgo/edge"
)

// elReader parses .el: one edge per line, "u v".
type elReader struct{ r io.ReadCloser }

func (e *elReader) Read() (edge.List, int, error) {
	defer e.r.Close()

	var el edge.List
	sc := bufio.NewScanner(e.r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, 0, fmt.Errorf("%w: .el line %d: %q", ErrMalformedLine, lineNo, line)
		}
		u, v, err := parseUV(fields[0], fields[1], lineNo)
		if err != nil {
			return nil, 0, err
		}
		el = append(el, edge.Edge{U: u, V: v})
	}

	return el, 0, sc.Err()
}

// welReader parses .wel: one weighted edge per line, "u v w".
type welReader struct{ r io.ReadCloser }

func (w *welReader) Read() (edge.List, int, error) {
	wl, n, err := w.ReadWeighted()
	if err != nil {
		return nil, 0, err
	}

	return wl.Unweighted(), n, nil
}

func (w *welReader) ReadWeighted() (edge.WList, int, error) {
	defer w.r.Close()

	var el edge.WList
	sc := bufio.NewScanner(w.r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, 0, fmt.Errorf("%w: .wel line %d: %q", ErrMalformedLine, lineNo, line)
		}
		u, v, err := parseUV(fields[0], fields[1], lineNo)
		if err != nil {
			return nil, 0, err
		}
		weight, err := strconv.ParseInt(fields[2], 10, 32)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: .wel line %d weight %q: %v", ErrMalformedLine, lineNo, fields[2], err)
		}
		el = append(el, edge.WEdge{U: u, V: v, W: edge.Weight(weight)})
	}

	return el, 0, sc.Err()
}

// grReader parses .gr (DIMACS): lines "a u v w" are edges, 1-indexed;
// all other lines (comments "c ...", problem line "p ...") are
// ignored.
type grReader struct{ r io.ReadCloser }

func (g *grReader) Read() (edge.List, int, error) {
	wl, n, err := g.ReadWeighted()
	if err != nil {
		return nil, 0, err
	}

	return wl.Unweighted(), n, nil
}

func (g *grReader) ReadWeighted() (edge.WList, int, error) {
	defer g.r.Close()

	var el edge.WList
	sc := bufio.NewScanner(g.r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for lineNo := 1; sc.Scan(); lineNo++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != "a" {
			continue
		}
		if len(fields) != 4 {
			return nil, 0, fmt.Errorf("%w: .gr line %d: %q", ErrMalformedLine, lineNo, sc.Text())
		}
		u, v, err := parseUV1Indexed(fields[1], fields[2], lineNo)
		if err != nil {
			return nil, 0, err
		}
		weight, err := strconv.ParseInt(fields[3], 10, 32)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: .gr line %d weight %q: %v", ErrMalformedLine, lineNo, fields[3], err)
		}
		el = append(el, edge.WEdge{U: u, V: v, W: edge.Weight(weight)})
	}

	return el, 0, sc.Err()
}

// metisReader parses .graph (Metis-like): first line "N M"; line i+1
// lists the 1-indexed neighbors of vertex i.
type metisReader struct{ r io.ReadCloser }

func (m *metisReader) Read() (edge.List, int, error) {
	defer m.r.Close()

	sc := bufio.NewScanner(m.r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		return nil, 0, fmt.Errorf("%w: .graph missing header line", ErrMalformedLine)
	}
	header := strings.Fields(sc.Text())
	if len(header) < 2 {
		return nil, 0, fmt.Errorf("%w: .graph header %q", ErrMalformedLine, sc.Text())
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: .graph header N %q: %v", ErrMalformedLine, header[0], err)
	}

	var el edge.List
	for u := 0; u < n; u++ {
		if !sc.Scan() {
			return nil, 0, fmt.Errorf("%w: .graph expected %d adjacency lines, got %d", ErrMalformedLine, n, u)
		}
		for _, tok := range strings.Fields(sc.Text()) {
			oneIndexed, err := strconv.Atoi(tok)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: .graph line %d neighbor %q: %v", ErrMalformedLine, u+2, tok, err)
			}
			el = append(el, edge.Edge{U: edge.NodeID(u), V: edge.NodeID(oneIndexed - 1)})
		}
	}

	return el, n, sc.Err()
}

func parseUV(uTok, vTok string, lineNo int) (edge.NodeID, edge.NodeID, error) {
	u, err := strconv.ParseInt(uTok, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: line %d u %q: %v", ErrMalformedLine, lineNo, uTok, err)
	}
	v, err := strconv.ParseInt(vTok, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: line %d v %q: %v", ErrMalformedLine, lineNo, vTok, err)
	}

	return edge.NodeID(u), edge.NodeID(v), nil
}

func parseUV1Indexed(uTok, vTok string, lineNo int) (edge.NodeID, edge.NodeID, error) {
	u, v, err := parseUV(uTok, vTok, lineNo)
	if err != nil {
		return 0, 0, err
	}

	return u - 1, v - 1, nil
}
