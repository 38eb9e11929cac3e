package squeue

import "sync/atomic"

// DefaultBufferCap is the default per-thread QueueBuffer capacity before
// it flushes into the shared queue.
const DefaultBufferCap = 16384

// SlidingQueue is a bounded buffer with three indices (in, outStart,
// outEnd) supporting the BFS/BC two-phase frontier discipline.
type SlidingQueue[T any] struct {
	buf      []T
	in       int64 // atomically advanced by QueueBuffer flushes
	outStart int64
	outEnd   int64
}

// NewSlidingQueue allocates a SlidingQueue with capacity for at most cap
// total pushes across its lifetime (typically N, the vertex count).
func NewSlidingQueue[T any](capacity int) *SlidingQueue[T] {
	return &SlidingQueue[T]{buf: make([]T, capacity)}
}

// Push appends v directly to the queue without going through a
// per-thread buffer. Not safe for concurrent use; callers building a
// frontier from multiple goroutines should use QueueBuffer instead.
func (q *SlidingQueue[T]) Push(v T) {
	idx := atomic.AddInt64(&q.in, 1) - 1
	q.buf[idx] = v
}

// reserve atomically reserves a contiguous range of k slots starting at
// the current in index, advancing in by k, and returns the start index.
func (q *SlidingQueue[T]) reserve(k int) int64 {
	return atomic.AddInt64(&q.in, int64(k)) - int64(k)
}

// SlideWindow advances the read window: outStart becomes the old outEnd,
// outEnd becomes the current in. Must be called between parallel regions
// (i.e. after a barrier), never concurrently with Push/reserve.
func (q *SlidingQueue[T]) SlideWindow() {
	q.outStart = q.outEnd
	q.outEnd = atomic.LoadInt64(&q.in)
}

// Reset clears the queue back to empty.
func (q *SlidingQueue[T]) Reset() {
	q.in, q.outStart, q.outEnd = 0, 0, 0
}

// Empty reports whether the current read window [outStart, outEnd) is
// empty.
func (q *SlidingQueue[T]) Empty() bool {
	return q.outStart == q.outEnd
}

// Size returns the length of the current read window.
func (q *SlidingQueue[T]) Size() int {
	return int(q.outEnd - q.outStart)
}

// Window returns the current read window as a slice. The slice aliases
// the queue's backing storage and is only valid until the next
// SlideWindow or Reset.
func (q *SlidingQueue[T]) Window() []T {
	return q.buf[q.outStart:q.outEnd]
}

// PendingCount returns how many items have been pushed into [in, …)
// since the last SlideWindow — i.e. the size of the next frontier so
// far. Used by callers that need a count without materializing a
// window (e.g. for scout_count-style heuristics).
func (q *SlidingQueue[T]) PendingCount() int {
	return int(atomic.LoadInt64(&q.in) - q.outEnd)
}

// QueueBuffer accumulates pushes from a single goroutine locally,
// bounded by capacity, and flushes into the shared SlidingQueue by
// reserving a contiguous range via fetch-and-add and bulk-copying.
type QueueBuffer[T any] struct {
	q        *SlidingQueue[T]
	local    []T
	capacity int
}

// NewQueueBuffer creates a QueueBuffer flushing into q with the given
// local capacity (DefaultBufferCap if capacity <= 0).
func NewQueueBuffer[T any](q *SlidingQueue[T], capacity int) *QueueBuffer[T] {
	if capacity <= 0 {
		capacity = DefaultBufferCap
	}

	return &QueueBuffer[T]{q: q, local: make([]T, 0, capacity), capacity: capacity}
}

// Push appends v to the local buffer, flushing automatically when full.
func (b *QueueBuffer[T]) Push(v T) {
	b.local = append(b.local, v)
	if len(b.local) >= b.capacity {
		b.Flush()
	}
}

// Flush reserves a range in the shared queue and bulk-copies the local
// buffer into it, then clears the local buffer.
func (b *QueueBuffer[T]) Flush() {
	if len(b.local) == 0 {
		return
	}
	start := b.q.reserve(len(b.local))
	copy(b.q.buf[start:], b.local)
	b.local = b.local[:0]
}
