package edge

import "github.com/katalvlaran/gapgo/internal/parallel"

// NodeID is a 32-bit signed vertex identifier; valid range is [0, N).
// Negative values are reserved as kernel-specific sentinels (e.g. BFS's
// unvisited parent encoding).
type NodeID int32

// Weight is an edge weight; weighted kernels use values in [1, 255].
type Weight int32

// Offset indexes neighbor arrays; 64-bit because M can exceed 2^31.
type Offset int64

// Edge is an unordered (u, v) pair for unweighted graphs.
type Edge struct {
	U, V NodeID
}

// WEdge is an unordered (u, (v, w)) pair for weighted graphs.
type WEdge struct {
	U, V NodeID
	W    Weight
}

// List is an edge list owned by its caller (a Reader or a generator).
type List []Edge

// WList is the weighted counterpart of List.
type WList []WEdge

// MaxNodeID returns the largest NodeID referenced by el, or -1 if el is
// empty. Used by the builder to size N when it is not already known from
// a prior CLI setting. The reduction is order-independent, so it is safe
// to parallelize.
func (el List) MaxNodeID() NodeID {
	if len(el) == 0 {
		return -1
	}

	return parallel.Reduce(len(el), NodeID(-1), func(lo, hi int) NodeID {
		m := NodeID(-1)
		for i := lo; i < hi; i++ {
			if el[i].U > m {
				m = el[i].U
			}
			if el[i].V > m {
				m = el[i].V
			}
		}
		return m
	}, func(a, b NodeID) NodeID {
		if a > b {
			return a
		}
		return b
	})
}

// MaxNodeID is the weighted counterpart of List.MaxNodeID.
func (el WList) MaxNodeID() NodeID {
	if len(el) == 0 {
		return -1
	}

	return parallel.Reduce(len(el), NodeID(-1), func(lo, hi int) NodeID {
		m := NodeID(-1)
		for i := lo; i < hi; i++ {
			if el[i].U > m {
				m = el[i].U
			}
			if el[i].V > m {
				m = el[i].V
			}
		}
		return m
	}, func(a, b NodeID) NodeID {
		if a > b {
			return a
		}
		return b
	})
}

// Unweighted strips weights, returning a List with the same endpoints in
// the same order.
func (el WList) Unweighted() List {
	out := make(List, len(el))
	for i, e := range el {
		out[i] = Edge{U: e.U, V: e.V}
	}

	return out
}
