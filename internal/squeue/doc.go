// Package squeue provides SlidingQueue, a single bounded buffer with a
// two-phase visibility discipline used by the BFS and betweenness
// centrality kernels to represent the current frontier while concurrent
// producers build the next one.
//
// Iteration goes over [outStart, outEnd). Concurrent pushes land at
// [in, …) via per-thread QueueBuffer accumulation and remain invisible
// until the next SlideWindow call, which advances outStart to the old
// outEnd and outEnd to the current in.
package squeue
