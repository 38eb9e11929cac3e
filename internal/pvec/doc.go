// Package pvec provides ParallelVector, a contiguous, owned, move-only
// buffer that the builder's in-place construction path uses as the
// backing storage for the CSR neighbor array.
//
// What
//
//   - NewParallelVector[T] allocates a buffer with a given size.
//   - Resize grows capacity; new elements hold T's zero value.
//   - Fill writes v into every slot, split across goroutines.
//   - Leak relinquishes ownership of the backing slice without freeing it,
//     so a caller (the builder's in-place path) can repurpose the
//     memory as CSR storage.
//
// Why
//
//	CSR construction and kernel working sets are the hot allocations in
//	this engine; a single non-copyable owner with an explicit "leak" hook
//	keeps ownership transfers (edge list → neighbor array) visible in the
//	type system instead of hidden behind implicit slice aliasing.
//
// Concurrency
//
//	A ParallelVector is not safe for concurrent Resize/Leak calls; it is
//	safe for concurrent index writes (Go slice element writes are
//	independent per index) once sized, which is how the builder fills it
//	from multiple goroutines.
package pvec
