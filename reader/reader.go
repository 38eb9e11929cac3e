package reader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/gapgo/edge"
)

// Reader is the edge-list source abstraction the spec treats as an
// out-of-scope contract (§4.11, §6): anything that can produce an
// edge list and, when the format states it up front, a vertex count.
// N is 0 when the format doesn't carry one explicitly; callers then
// infer it from edge.List.MaxNodeID.
type Reader interface {
	Read() (el edge.List, n int, err error)
}

// WeightedReader is the weighted counterpart of Reader, for formats
// that carry per-edge weights (.wel, .wsg).
type WeightedReader interface {
	ReadWeighted() (el edge.WList, n int, err error)
}

// Open dispatches on path's suffix to the matching parser, mirroring
// the CLI's "-f path" flag (§6). The returned Reader also implements
// WeightedReader for the weighted formats (.wel, .wsg).
func Open(path string) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reader: open %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".el":
		return &elReader{r: f}, nil
	case ".wel":
		return &welReader{r: f}, nil
	case ".gr":
		return &grReader{r: f}, nil
	case ".graph":
		return &metisReader{r: f}, nil
	case ".sg":
		return &sgReader{r: f, weighted: false}, nil
	case ".wsg":
		return &sgReader{r: f, weighted: true}, nil
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnknownSuffix, path)
	}
}
