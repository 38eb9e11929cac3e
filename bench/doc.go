// Package bench provides the generic trial-runner and the pluggable
// per-kernel Verifier contract shared by every cmd/ binary (§4.11).
//
// What
//
//   - RunTrials runs a kernel closure trials times, timing each run,
//     and prints mean/stddev timing stats after the last trial when
//     analysis is requested.
//   - Verifier.Verify(g, params, result) independently re-derives (or
//     structurally checks) a kernel's result and returns a non-nil
//     error on mismatch. SSSPVerifier runs a textbook Dijkstra oracle
//     (§4.11's "independent implementation for SSSP"); BFSVerifier,
//     CCVerifier and BCVerifier perform the structural checks §4.11
//     calls for ("Afforest/BC use BFS-based structural checks," and
//     BFS's own tree is checked the same way); TCVerifier recomputes
//     the count with an independent brute-force intersection;
//     PageRankVerifier is a no-op, since floating-point convergence
//     has no cheap independent oracle.
//
// Why
//
//	Verifier is a one-method interface so each kernel package's tests
//	(and the CLI's -a analysis path) can depend on bench without
//	pulling in every kernel package transitively.
package bench
