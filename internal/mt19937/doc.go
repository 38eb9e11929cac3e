// Package mt19937 implements the 32-bit Mersenne Twister PRNG, used by
// generator as the block-seeded source for both uniform-random and
// R-MAT edge generation: the spec's determinism contract requires that
// the output edgelist not depend on thread count, which this package
// achieves by making a Source a pure function of its 32-bit seed.
//
// Source also implements math/rand.Source64, so it can be handed to
// math/rand.New or to gonum's distuv samplers wherever a richer
// distribution (e.g. the R-MAT quadrant Bernoulli draws) is more
// natural than hand-rolled bit twiddling.
package mt19937
