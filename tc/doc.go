// Package tc implements ordered triangle counting over undirected
// (symmetrized) graphs, plus the WorthRelabeling power-law heuristic
// that decides whether a degree-descending relabel pays for itself
// before counting (§4.10).
//
// What
//
//   - Count(g) returns the number of triangles via the
//     ordered/merge-intersection method: for each u, for each
//     neighbor v < u, intersect the portion of out_neigh(u) below u
//     with the portion of out_neigh(v) below v.
//   - WorthRelabeling(g, opts...) samples out-degrees and reports
//     whether the degree distribution looks power-law enough (mean >
//     2x median, average degree >= 10) to justify relabeling first.
//   - Run(g, opts...) applies WorthRelabeling and, if true, relabels
//     via builder.RelabelByDegree before counting.
//
// Why
//
//	Both neighbor lists are already sorted ascending (a CSR
//	invariant), so the intersection is a single linear merge per
//	(u, v) pair rather than a hash lookup, matching the teacher's
//	preference for array-based merges over map-based ones wherever the
//	data is already ordered.
package tc
