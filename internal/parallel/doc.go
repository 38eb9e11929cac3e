// Package parallel provides the fork-join helpers every kernel and the
// builder use to express data-parallel loops over contiguous index
// ranges: For (parallel for with static chunking), Reduce (parallel
// reduction), and PrefixSum (the two-phase block-parallel exclusive
// prefix sum described in builder's degree-offset construction).
//
// There is no task scheduler, no promises, no event loop — each call
// forks a bounded number of goroutines over a contiguous range and joins
// them before returning, via golang.org/x/sync/errgroup. When only one
// worker is available, or the range is shorter than the worker count,
// For and Reduce call the body once over the whole range on the calling
// goroutine, which is semantically identical to the parallel path.
package parallel
