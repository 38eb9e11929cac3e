// Package pagerank implements pull-direction PageRank: every vertex
// pulls contributions from its in-neighbors each iteration, so no
// atomics are required for the score update itself (§4.7).
//
// What
//
//   - Run(g, opts...) returns scores[] summing to ~1, iterating until
//     max_iters or the total per-iteration error drops below epsilon.
//   - Dangling vertices (out-degree 0) contribute nothing; the spec
//     pins this zero-contribution behavior rather than the textbook
//     "redistribute uniformly" variant (§9 open question, resolved in
//     DESIGN.md).
//
// Why
//
//	Matches the teacher's kernel shape: a pure function over a
//	read-only graph with Option-based iteration/tolerance knobs.
package pagerank
