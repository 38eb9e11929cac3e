package bfs

import (
	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/bitmap"
	"github.com/katalvlaran/gapgo/internal/parallel"
	"github.com/katalvlaran/gapgo/internal/squeue"
)

// Run performs direction-optimizing BFS from source over g, returning
// parent[]: parent[u] >= 0 is u's BFS-tree parent, parent[source] ==
// source, and parent[u] < 0 for unreached u with magnitude
// max(out_degree(u), 1). Returns ErrMissingInverseAdjacency if g is
// directed and was built without inverse adjacency, since the
// bottom-up step needs in-neighbors and may switch into it on the very
// first frontier.
func Run(g *csr.Graph, source edge.NodeID, opts ...Option) ([]edge.NodeID, error) {
	if g.Directed() && !g.HasInverse() {
		return nil, ErrMissingInverseAdjacency
	}

	cfg := newConfig(opts)
	n := g.NumNodes()

	parent := make([]edge.NodeID, n)
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			d := g.OutDegree(edge.NodeID(u))
			if d == 0 {
				d = 1
			}
			parent[u] = edge.NodeID(-d)
		}
	})
	parent[source] = source

	frontier := squeue.NewSlidingQueue[edge.NodeID](n)
	frontier.Push(source)
	frontier.SlideWindow()

	edgesToCheck := int64(g.NumEdgesDirected())
	scoutCount := int64(g.OutDegree(source))

	front := bitmap.New(n)
	next := bitmap.New(n)

	for !frontier.Empty() {
		if scoutCount > edgesToCheck/int64(cfg.Alpha) {
			queueToBitmap(frontier, front)
			awakeCount := frontier.Size()
			for {
				oldAwakeCount := awakeCount
				awakeCount = buStep(g, parent, front, next)
				front.Swap(next)
				next.Reset()
				if awakeCount < oldAwakeCount && awakeCount <= n/cfg.Beta {
					break
				}
			}
			bitmapToQueue(g, front, frontier)
			scoutCount = 1
		} else {
			edgesToCheck -= scoutCount
			scoutCount = tdStep(g, parent, frontier)
			frontier.SlideWindow()
		}
	}

	return parent, nil
}

// tdStep pushes across every outgoing edge of the current frontier
// window, claiming unvisited neighbors via a single CAS attempt (a
// failed attempt means another goroutine already claimed it, which
// needs no retry), and returns the total out-degree claimed this
// step (the spec's scout_count).
func tdStep(g *csr.Graph, parent []edge.NodeID, frontier *squeue.SlidingQueue[edge.NodeID]) int64 {
	window := frontier.Window()

	return parallel.Reduce(len(window), int64(0), func(lo, hi int) int64 {
		buf := squeue.NewQueueBuffer(frontier, 0)
		var scout int64
		for i := lo; i < hi; i++ {
			u := window[i]
			for _, v := range g.OutNeigh(u) {
				curr := parent[v]
				if curr < 0 && parallel.CompareAndSwap32(&parent[v], curr, u) {
					buf.Push(v)
					scout += int64(-curr)
				}
			}
		}
		buf.Flush()

		return scout
	}, func(a, b int64) int64 { return a + b })
}

// buStep scans every currently-unvisited vertex, looking for an
// in-neighbor present in the front bitmap, and returns the count of
// vertices awoken (the spec's awake_count).
func buStep(g *csr.Graph, parent []edge.NodeID, front, next *bitmap.Bitmap) int {
	n := g.NumNodes()

	return parallel.Reduce(n, 0, func(lo, hi int) int {
		count := 0
		for u := lo; u < hi; u++ {
			if parent[u] >= 0 {
				continue
			}
			for _, v := range g.InNeigh(edge.NodeID(u)) {
				if front.Get(int(v)) {
					parent[u] = v
					next.SetAtomic(u)
					count++
					break
				}
			}
		}

		return count
	}, func(a, b int) int { return a + b })
}

// queueToBitmap marks every vertex in frontier's current window into bm.
func queueToBitmap(frontier *squeue.SlidingQueue[edge.NodeID], bm *bitmap.Bitmap) {
	window := frontier.Window()
	parallel.For(len(window), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			bm.SetAtomic(int(window[i]))
		}
	})
}

// bitmapToQueue rebuilds frontier from bm's set bits, replacing its
// contents and sliding its window so the new frontier becomes visible.
func bitmapToQueue(g *csr.Graph, bm *bitmap.Bitmap, frontier *squeue.SlidingQueue[edge.NodeID]) {
	frontier.Reset()
	n := g.NumNodes()
	parallel.For(n, func(lo, hi int) {
		buf := squeue.NewQueueBuffer(frontier, 0)
		for u := lo; u < hi; u++ {
			if bm.Get(u) {
				buf.Push(edge.NodeID(u))
			}
		}
		buf.Flush()
	})
	frontier.SlideWindow()
}
