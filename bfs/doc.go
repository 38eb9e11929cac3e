// Package bfs implements direction-optimizing breadth-first search
// (Beamer et al.): alternates between pushing from the frontier
// (top-down) and pulling from unvisited vertices scanning for
// in-frontier parents (bottom-up), switching direction by a workload
// heuristic (§4.5).
//
// What
//
//   - Run(g, source, opts...) returns parent[]: parent[u] >= 0 is u's
//     BFS-tree parent, parent[source] = source, parent[u] < 0 encodes
//     "unvisited" with magnitude max(out_degree(u), 1). Run rejects a
//     directed graph built without inverse adjacency up front
//     (ErrMissingInverseAdjacency), since the bottom-up step can
//     trigger on the very first frontier even for small graphs.
//   - Top-down steps push via internal/squeue.QueueBuffer; bottom-up
//     steps scan internal/bitmap frontiers.
//   - Direction switches on scout_count vs. edges_to_check/alpha and
//     awakened-count vs. N/beta (defaults alpha=15, beta=18).
//
// Why
//
//	Matches the teacher's kernel-as-pure-function style: Run borrows a
//	read-only *csr.Graph and returns a freshly allocated result slice,
//	with Option-based configuration for alpha/beta instead of a config
//	struct, mirroring builder.Option.
package bfs
