// Package gapgo is a parallel graph analytics engine: a compressed
// sparse-row (CSR) graph representation, an in-memory builder, synthetic
// graph generators, and six parallel graph kernels — BFS, SSSP, PageRank,
// Connected Components, Betweenness Centrality, and Triangle Counting.
//
// What
//
//   - A CSR graph (csr.Graph) with optional inverse adjacency, built by
//     either copying construction or an in-place construction that
//     repurposes the edge list's own backing storage.
//   - Deterministic synthetic generators (generator) for uniform-random
//     and R-MAT (Kronecker) edge lists.
//   - Six kernels, each a pure function of (graph, parameters) → result:
//     bfs, sssp, pagerank, cc, bc, tc.
//   - Shared concurrency primitives (internal/pvec, internal/bitmap,
//     internal/squeue, internal/parallel) with explicit concurrency
//     contracts matching a fork-join, data-parallel execution model.
//
// Why
//
//   - Benchmarking and comparing graph kernels needs a representation
//     that is cheap to traverse and cheap to build at scale; CSR is that
//     representation, and the kernels here are written the way the
//     reference literature (Beamer's direction-optimizing BFS, Shun's
//     Δ-stepping, Shiloach-Vishkin/Afforest connectivity, Brandes'
//     betweenness) describes them, adapted to idiomatic Go concurrency.
//
// Organization
//
//	internal/pvec, internal/bitmap, internal/squeue, internal/parallel —
//	    shared primitives.
//	csr/        — the CSR graph type and its read-only contract.
//	edge/       — edge list types shared by generator, reader, builder.
//	generator/  — deterministic synthetic graph generators.
//	reader/     — edge-list source abstraction and concrete file parsers.
//	builder/    — CSR construction, squish, symmetrize, relabel.
//	bfs/ sssp/ pagerank/ cc/ bc/ tc/ — the six kernels.
//	bench/      — trial-runner and verifiers.
//	cmd/        — one small binary per kernel.
//
// Non-goals
//
//	Distributed execution, out-of-core graphs, dynamic graph updates,
//	exact betweenness centrality, GPU offload, fault tolerance.
package gapgo
