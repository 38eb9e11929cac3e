package builder

import "errors"

// Sentinel errors for builder configuration and construction.
var (
	// ErrInPlaceWeighted is returned when InPlace is requested together
	// with a weighted edge list; the in-place path assumes the edge
	// list's backing storage can be reinterpreted as the neighbor array,
	// which only holds for unweighted edge.List.
	ErrInPlaceWeighted = errors.New("builder: in-place construction requires an unweighted edge list")

	// ErrRelabelDirected is returned when RelabelByDegree is requested
	// on a directed graph; degree relabeling is only defined for
	// undirected graphs.
	ErrRelabelDirected = errors.New("builder: degree relabeling requires an undirected graph")

	// ErrEmptyEdgeListNoN is returned when N cannot be determined: the
	// edge list is empty and Config.N was not set explicitly.
	ErrEmptyEdgeListNoN = errors.New("builder: cannot infer N from an empty edge list; set Config.N")

	// ErrAllocation describes a pvec allocation failure during
	// construction. No construction path returns it: the in-place path's
	// only pvec allocation is sized from a non-negative edge count and
	// its error is discarded.
	ErrAllocation = errors.New("builder: allocation failed")

	// ErrRelabelWeighted is returned when RelabelByDegree is requested
	// together with BuildWeighted; relabeling is only implemented for
	// the unweighted CSR produced by Build.
	ErrRelabelWeighted = errors.New("builder: degree relabeling is not supported for weighted graphs")
)
