// Package cc implements Afforest, a sampled union-find connectivity
// algorithm: a few cheap sampling rounds over a fixed neighbor index
// link most of the graph into its dominant component, so the
// expensive final full pass only needs to process the remainder
// (§4.8).
//
// What
//
//   - Run(g, opts...) returns comp[]: comp[u] == comp[v] iff u and v
//     are connected (weakly, for directed graphs).
//   - Link(u, v, comp) is a lock-free union-by-larger-root primitive,
//     exported so other kernels (or tests) can reuse the linking
//     scheme independent of Afforest's sampling strategy.
//
// Why
//
//	Matches the teacher's style of exposing the lock-free primitive
//	(here Link) alongside the orchestrating Run, the same shape
//	internal/bitmap exposes SetAtomic alongside Bitmap.
package cc
