package pvec

import "errors"

// ErrAllocation is returned when a requested size cannot be satisfied.
// Go's allocator panics on true out-of-memory conditions (unlike the
// teacher's C++ ancestor, which can report allocation failure directly),
// so this sentinel instead guards the one case this package can check
// without allocating: a negative or otherwise nonsensical size.
var ErrAllocation = errors.New("pvec: invalid allocation size")
