package bench

import "github.com/katalvlaran/gapgo/csr"

// Verifier independently checks a kernel's result against g, returning
// a non-nil error describing the first mismatch found. params carries
// whatever the kernel needed beyond g (e.g. a source vertex); result is
// the kernel's return value, both passed as any so one interface spans
// every kernel's distinct signature.
type Verifier interface {
	Verify(g *csr.Graph, params, result any) error
}
