// Package generator produces deterministic synthetic edge lists: a
// uniform-random mode and an R-MAT (Kronecker) mode, plus the
// ID-permutation pass that follows R-MAT generation and the
// InsertWeights helper that overwrites a weighted edge list with
// uniformly-random integer weights in [1, 255].
//
// Determinism contract
//
//	Output is identical regardless of goroutine count: the edge index
//	range is partitioned into fixed 2^18-sized blocks, each block seeded
//	with kRandSeed+blockIndex and generated sequentially by a
//	block-local Mersenne Twister (internal/mt19937), so the only thing
//	that varies across runs with different parallelism is which
//	goroutine happens to compute which block — never the values it
//	computes.
package generator
