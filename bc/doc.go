// Package bc implements approximate betweenness centrality via
// Brandes' algorithm run from K sampled sources, accumulating partial
// scores across sources and normalizing by the maximum at the end
// (§4.9).
//
// What
//
//   - Run(g, opts...) returns scores[] (float32), each vertex's
//     approximate centrality normalized into [0, 1].
//   - Each source contributes a parallel BFS with path counting,
//     marking tree/DAG edges in a bitmap sized over the graph's total
//     directed edge count, followed by a depth-descending
//     back-propagation pass.
//
// Why
//
//	The successor bitmap is addressed by the absolute offset of a
//	neighbor slot within out_neighbors (g.OutOffsetOf(u)+j), matching
//	csr's own offset accessors (added for exactly this purpose). Back-
//	propagation walks u's own out-neighbors directly: for each (j, w) in
//	out_neigh(u), the bit at g.OutOffsetOf(u)+j tells whether u->w was
//	marked a BFS-DAG edge during the forward pass, so w is already
//	finalized and its delta can be folded into u's. This reuses the
//	exact offsets the forward pass wrote and needs no lookup into w's
//	own adjacency, independent of whether the graph is directed.
package bc
