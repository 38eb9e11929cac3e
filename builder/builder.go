package builder

import (
	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
)

// Build constructs a csr.Graph from an unweighted edge list according
// to opts. With WithInPlace, construction sorts and mutates el;
// otherwise el is left untouched and a fresh adjacency is allocated.
func Build(el edge.List, opts ...Option) (*csr.Graph, error) {
	cfg := newConfig(opts)
	if cfg.RelabelByDegree && cfg.Directed {
		return nil, ErrRelabelDirected
	}

	n, err := resolveN(cfg, len(el), func() edge.NodeID { return el.MaxNodeID() })
	if err != nil {
		return nil, err
	}

	var spec csr.Spec
	if cfg.InPlace {
		spec = makeCSRInPlace(el, n, cfg)
	} else {
		spec = csr.Spec{Directed: cfg.Directed, N: n}
		spec.OutOffsets, spec.OutNeighbors = makeCSRUnweighted(el, n, cfg)
		if cfg.Directed && cfg.Inverse && !cfg.Symmetrize {
			inCfg := cfg
			inCfg.Transpose = true
			spec.InOffsets, spec.InNeighbors = makeCSRUnweighted(el, n, inCfg)
		}
	}

	g, err := csr.NewFromArrays(spec)
	if err != nil {
		return nil, err
	}

	if cfg.RelabelByDegree {
		g = RelabelByDegree(g)
	}

	return g, nil
}

// BuildWeighted constructs a weighted csr.Graph from a weighted edge
// list. The copying builder is always used: in-place construction
// assumes an edge.List backing buffer, which edge.WList does not have
// the same layout as, so WithInPlace is rejected with
// ErrInPlaceWeighted.
func BuildWeighted(el edge.WList, opts ...Option) (*csr.Graph, error) {
	cfg := newConfig(opts)
	if cfg.InPlace {
		return nil, ErrInPlaceWeighted
	}
	if cfg.RelabelByDegree {
		return nil, ErrRelabelWeighted
	}

	n, err := resolveN(cfg, len(el), func() edge.NodeID { return el.MaxNodeID() })
	if err != nil {
		return nil, err
	}

	spec := csr.Spec{Directed: cfg.Directed, N: n}
	spec.OutOffsets, spec.OutNeighbors, spec.OutWeights = makeCSRWeighted(el, n, cfg)
	if cfg.Directed && cfg.Inverse && !cfg.Symmetrize {
		inCfg := cfg
		inCfg.Transpose = true
		spec.InOffsets, spec.InNeighbors, spec.InWeights = makeCSRWeighted(el, n, inCfg)
	}

	return csr.NewFromArrays(spec)
}

// resolveN determines the vertex count: Config.N if set explicitly,
// otherwise 1+maxNodeID() derived from the edge list. An empty edge
// list with no explicit N is an error, since maxNodeID is undefined.
func resolveN(cfg Config, edgeCount int, maxNodeID func() edge.NodeID) (int, error) {
	if cfg.N > 0 {
		return cfg.N, nil
	}
	if edgeCount == 0 {
		return 0, ErrEmptyEdgeListNoN
	}

	return int(maxNodeID()) + 1, nil
}
