package generator

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/mt19937"
	"github.com/katalvlaran/gapgo/internal/parallel"
)

// genBlocks partitions [0, numEdges) into fixed blockSize blocks and
// fills el[start:end] for each block using a fresh, block-seeded
// generator, in parallel across blocks.
func genBlocks(el edge.List, perEdge func(rng *mt19937.Source) edge.Edge) {
	numEdges := len(el)
	nBlocks := (numEdges + blockSize - 1) / blockSize
	parallel.For(nBlocks, func(lo, hi int) {
		for b := lo; b < hi; b++ {
			start := b * blockSize
			end := start + blockSize
			if end > numEdges {
				end = numEdges
			}
			rng := mt19937.New(kRandSeed + uint32(b))
			for i := start; i < end; i++ {
				el[i] = perEdge(rng)
			}
		}
	})
}

// Uniform produces M edges, each endpoint drawn independently from
// uniform(0, N-1).
func Uniform(cfg Config) (edge.List, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.N()
	el := make(edge.List, cfg.M())
	genBlocks(el, func(rng *mt19937.Source) edge.Edge {
		return edge.Edge{U: edge.NodeID(rng.Intn(n)), V: edge.NodeID(rng.Intn(n))}
	})

	return el, nil
}

// quadrant picks one of the four R-MAT quadrants for a single bit
// level, returning the (rowBit, colBit) pair: A=(0,0), B=(0,1),
// C=(1,0), D=(1,1). It uses two gonum Bernoulli draws against rng,
// mirroring the standard Graph500 two-level quadrant split: first
// choose top (A+B) vs bottom (C+D), then choose left vs right within
// the chosen half using that half's conditional probabilities.
func quadrant(rng *mt19937.Source) (rowBit, colBit edge.NodeID) {
	top := distuv.Bernoulli{P: probA + probB, Src: rng}
	isTop := top.Rand() == 1

	var leftP float64
	if isTop {
		leftP = probA / (probA + probB)
	} else {
		leftP = probC / (probC + probD)
	}
	left := distuv.Bernoulli{P: leftP, Src: rng}
	isLeft := left.Rand() == 1

	if !isTop {
		rowBit = 1
	}
	if !isLeft {
		colBit = 1
	}

	return rowBit, colBit
}

// rmatEdge generates one edge by recursively choosing a quadrant for
// each of scale bit levels.
func rmatEdge(rng *mt19937.Source, scale int) edge.Edge {
	var u, v edge.NodeID
	for depth := 0; depth < scale; depth++ {
		rowBit, colBit := quadrant(rng)
		u = u<<1 | rowBit
		v = v<<1 | colBit
	}

	return edge.Edge{U: u, V: v}
}

// RMAT produces an R-MAT (Kronecker) edge list per Config, followed by
// the ID-permutation pass that prevents locality artifacts from the
// recursion (see Permute).
func RMAT(cfg Config) (edge.List, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	el := make(edge.List, cfg.M())
	genBlocks(el, func(rng *mt19937.Source) edge.Edge {
		return rmatEdge(rng, cfg.Scale)
	})
	perm := Permute(cfg.N())
	parallel.For(len(el), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			el[i].U = perm[el[i].U]
			el[i].V = perm[el[i].V]
		}
	})

	return el, nil
}

// Permute returns a random permutation of [0, N), seeded with
// kRandSeed, via a Fisher-Yates shuffle. It is deterministic and
// single-threaded: a permutation has no natural block decomposition,
// unlike edge generation, so determinism here comes from running on a
// single, fixed-seed source rather than from block independence.
func Permute(n int) []edge.NodeID {
	perm := make([]edge.NodeID, n)
	for i := range perm {
		perm[i] = edge.NodeID(i)
	}
	rng := rand.New(mt19937.New(kRandSeed))
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm
}

// InsertWeights overwrites the weights of a weighted edge list with
// uniformly-random integers in [1, 255], block-seeded identically to
// edge generation.
func InsertWeights(el edge.WList) {
	nBlocks := (len(el) + blockSize - 1) / blockSize
	parallel.For(nBlocks, func(lo, hi int) {
		for b := lo; b < hi; b++ {
			start := b * blockSize
			end := start + blockSize
			if end > len(el) {
				end = len(el)
			}
			rng := mt19937.New(kRandSeed + uint32(b))
			for i := start; i < end; i++ {
				el[i].W = edge.Weight(1 + rng.Intn(255))
			}
		}
	})
}
