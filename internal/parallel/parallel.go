package parallel

import (
	"math"
	"runtime"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sync/errgroup"
)

// PrefixSumBlockSize is the block size used by PrefixSum's first and
// third phases; chosen so each block's partial sums fit comfortably in
// L2 cache, matching the builder's degree-offset construction.
const PrefixSumBlockSize = 1 << 20

// NumWorkers returns the number of goroutines For and Reduce fan out to.
func NumWorkers() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}

	return 1
}

// For splits [0, n) into contiguous chunks, one per worker, and runs fn
// on each chunk concurrently, joining before returning. fn must treat
// its [lo, hi) argument as exclusively its own.
func For(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := NumWorkers()
	if workers <= 1 || n < workers {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		lo, hi := start, end
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

// Reduce splits [0, n) across workers, maps each chunk to a partial
// value via mapFn, and folds the partials together with combine
// (assumed associative; order of the fold across chunks is
// left-to-right by chunk index, matching a deterministic block
// reduction).
func Reduce[T any](n int, identity T, mapFn func(lo, hi int) T, combine func(a, b T) T) T {
	if n <= 0 {
		return identity
	}
	workers := NumWorkers()
	if workers <= 1 || n < workers {
		return combine(identity, mapFn(0, n))
	}

	chunk := (n + workers - 1) / workers
	nChunks := (n + chunk - 1) / chunk
	partials := make([]T, nChunks)
	var g errgroup.Group
	idx := 0
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		lo, hi, slot := start, end, idx
		g.Go(func() error {
			partials[slot] = mapFn(lo, hi)
			return nil
		})
		idx++
	}
	_ = g.Wait()

	acc := identity
	for _, p := range partials {
		acc = combine(acc, p)
	}

	return acc
}

// PrefixSum computes the exclusive prefix sum of counts, returning a
// slice of length len(counts)+1 with offsets[0] == 0 and
// offsets[len(counts)] == sum(counts). It uses the two-phase block
// scheme from the builder spec: local sums per block computed in
// parallel, a serial spine over block sums, then a parallel write of
// final offsets within each block.
func PrefixSum(counts []int64) []int64 {
	n := len(counts)
	offsets := make([]int64, n+1)
	if n == 0 {
		return offsets
	}

	blockSize := PrefixSumBlockSize
	nBlocks := (n + blockSize - 1) / blockSize
	blockSums := make([]int64, nBlocks)

	For(nBlocks, func(lo, hi int) {
		for b := lo; b < hi; b++ {
			start := b * blockSize
			end := start + blockSize
			if end > n {
				end = n
			}
			var sum int64
			for i := start; i < end; i++ {
				sum += counts[i]
			}
			blockSums[b] = sum
		}
	})

	blockStart := make([]int64, nBlocks)
	var running int64
	for b := 0; b < nBlocks; b++ {
		blockStart[b] = running
		running += blockSums[b]
	}

	For(nBlocks, func(lo, hi int) {
		for b := lo; b < hi; b++ {
			start := b * blockSize
			end := start + blockSize
			if end > n {
				end = n
			}
			acc := blockStart[b]
			for i := start; i < end; i++ {
				offsets[i] = acc
				acc += counts[i]
			}
		}
	})
	offsets[n] = running

	return offsets
}

// CompareAndSwapInt32 is the wait-free CAS primitive kernels use to link
// scalar slots (dist, parent, comp) without locks.
func CompareAndSwapInt32(addr *int32, old, new int32) bool {
	return atomic.CompareAndSwapInt32(addr, old, new)
}

// CompareAndSwapInt64 is the 64-bit counterpart of CompareAndSwapInt32.
func CompareAndSwapInt64(addr *int64, old, new int64) bool {
	return atomic.CompareAndSwapInt64(addr, old, new)
}

// FetchAndAddInt64 atomically adds delta to *addr and returns the value
// that was there before the add.
func FetchAndAddInt64(addr *int64, delta int64) int64 {
	return atomic.AddInt64(addr, delta) - delta
}

// FetchAndAddInt32 is the 32-bit counterpart of FetchAndAddInt64.
func FetchAndAddInt32(addr *int32, delta int32) int32 {
	return atomic.AddInt32(addr, delta) - delta
}

// CompareAndSwap32 is the generic counterpart of CompareAndSwapInt32 for
// any 32-bit-wide named integer type (edge.NodeID, edge.Weight), which
// Go's type system otherwise forbids passing to atomic.CompareAndSwapInt32
// without an explicit conversion at every call site. Kernels use this to
// CAS directly on []edge.NodeID/[]edge.Weight slots (parent, comp,
// depths) instead of duplicating unsafe.Pointer casts throughout.
func CompareAndSwap32[T ~int32](addr *T, old, new T) bool {
	return atomic.CompareAndSwapInt32((*int32)(unsafe.Pointer(addr)), int32(old), int32(new))
}

// Load32 atomically loads a 32-bit-wide named integer slot.
func Load32[T ~int32](addr *T) T {
	return T(atomic.LoadInt32((*int32)(unsafe.Pointer(addr))))
}

// Store32 atomically stores v into a 32-bit-wide named integer slot.
func Store32[T ~int32](addr *T, v T) {
	atomic.StoreInt32((*int32)(unsafe.Pointer(addr)), int32(v))
}

// FetchAndAdd32 is the generic counterpart of FetchAndAddInt32.
func FetchAndAdd32[T ~int32](addr *T, delta T) T {
	return T(atomic.AddInt32((*int32)(unsafe.Pointer(addr)), int32(delta)) - int32(delta))
}

// AddFloat64 atomically adds delta to *addr via a compare-and-swap retry
// loop over the underlying bit pattern, used by betweenness centrality
// to accumulate path_counts without a mutex.
func AddFloat64(addr *float64, delta float64) {
	bitsAddr := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(bitsAddr)
		newVal := math.Float64frombits(old) + delta
		if atomic.CompareAndSwapUint64(bitsAddr, old, math.Float64bits(newVal)) {
			return
		}
	}
}
