// Package csr defines Graph, the compressed sparse-row representation
// every kernel in gapgo operates on.
//
// What
//
//   - N vertices, M directed edges.
//   - outOffsets[0..N] monotonically non-decreasing, outOffsets[N] == M.
//   - outNeighbors[0..M] concatenated adjacency lists, sorted ascending
//     and duplicate-free within each vertex's neighborhood, with no
//     self-loops.
//   - For directed graphs with inverse adjacency requested, mirror
//     in-arrays over incoming edges.
//   - For undirected graphs, only the out-arrays exist; InNeigh is an
//     alias for OutNeigh.
//
// Why
//
//	CSR is the standard representation for read-mostly, traversal-heavy
//	graph workloads: O(1) neighborhood lookup via two slice reads, cache
//	friendly sequential scans, and a memory footprint close to the
//	theoretical minimum for a static graph.
//
// Ownership
//
//	A Graph owns its offset and neighbor arrays exclusively once
//	constructed; kernels borrow it read-only for the duration of a
//	kernel call. The builder package (and the reader package, when
//	loading a serialized .sg/.wsg file) constructs a Graph via
//	NewFromArrays, which takes ownership of the slices it is handed.
package csr
