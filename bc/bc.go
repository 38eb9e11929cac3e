package bc

import (
	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
	"github.com/katalvlaran/gapgo/internal/bitmap"
	"github.com/katalvlaran/gapgo/internal/mt19937"
	"github.com/katalvlaran/gapgo/internal/parallel"
	"github.com/katalvlaran/gapgo/internal/squeue"
)

// Run computes approximate betweenness centrality over g by running
// Brandes' algorithm from cfg.NumSources sampled sources and
// normalizing the accumulated scores by their maximum.
func Run(g *csr.Graph, opts ...Option) []float32 {
	cfg := newConfig(opts)
	n := g.NumNodes()
	if n == 0 {
		return nil
	}

	sources := pickSources(g, cfg.NumSources, cfg.Seed)
	scores := make([]float64, n)

	depths := make([]int32, n)
	pathCounts := make([]float64, n)
	delta := make([]float64, n)
	succ := bitmap.New(int(g.NumEdgesDirected()))
	frontier := squeue.NewSlidingQueue[edge.NodeID](n)

	for _, source := range sources {
		runOneSource(g, source, depths, pathCounts, delta, succ, frontier, scores)
	}

	return normalize(scores)
}

// runOneSource performs one Brandes episode from source, mutating the
// shared scratch slices (reset at entry) and adding its contribution
// into scores.
func runOneSource(
	g *csr.Graph,
	source edge.NodeID,
	depths []int32,
	pathCounts, delta []float64,
	succ *bitmap.Bitmap,
	frontier *squeue.SlidingQueue[edge.NodeID],
	scores []float64,
) {
	n := len(depths)
	parallel.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			depths[u] = -1
			pathCounts[u] = 0
			delta[u] = 0
		}
	})
	succ.Reset()
	frontier.Reset()

	depths[source] = 0
	pathCounts[source] = 1
	frontier.Push(source)
	frontier.SlideWindow()

	var levels [][]edge.NodeID
	depth := int32(0)
	for !frontier.Empty() {
		window := frontier.Window()
		level := make([]edge.NodeID, len(window))
		copy(level, window)
		levels = append(levels, level)

		parallel.For(len(window), func(lo, hi int) {
			buf := squeue.NewQueueBuffer(frontier, 0)
			for i := lo; i < hi; i++ {
				u := window[i]
				for j, v := range g.OutNeigh(u) {
					offset := int(g.OutOffsetOf(u)) + j
					curr := parallel.Load32(&depths[v])
					if curr == -1 {
						if parallel.CompareAndSwap32(&depths[v], -1, depth) {
							buf.Push(v)
						}
						curr = depth
					}
					if curr == depth {
						succ.SetAtomic(offset)
						parallel.AddFloat64(&pathCounts[v], pathCounts[u])
					}
				}
			}
			buf.Flush()
		})
		frontier.SlideWindow()
		depth++
	}

	for d := len(levels) - 2; d >= 0; d-- {
		level := levels[d]
		parallel.For(len(level), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				u := level[i]
				var acc float64
				for j, w := range g.OutNeigh(u) {
					if !succ.Get(int(g.OutOffsetOf(u)) + j) {
						continue
					}
					acc += (pathCounts[u] / pathCounts[w]) * (1 + delta[w])
				}
				delta[u] = acc
				if u != source {
					scores[u] += acc
				}
			}
		})
	}
}

// pickSources deterministically samples up to k distinct vertices with
// positive out-degree (a zero-degree source contributes nothing).
func pickSources(g *csr.Graph, k int, seed uint32) []edge.NodeID {
	n := g.NumNodes()
	var candidates []edge.NodeID
	for u := edge.NodeID(0); u < edge.NodeID(n); u++ {
		if g.OutDegree(u) > 0 {
			candidates = append(candidates, u)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	if k > len(candidates) {
		k = len(candidates)
	}

	rng := mt19937.New(seed)
	sources := make([]edge.NodeID, 0, k)
	seen := make(map[edge.NodeID]bool, k)
	for len(sources) < k {
		pick := candidates[rng.Intn(len(candidates))]
		if seen[pick] {
			continue
		}
		seen[pick] = true
		sources = append(sources, pick)
	}

	return sources
}

// normalize divides every score by the maximum (scores stay all-zero
// if the graph has no betweenness paths at all) and narrows to float32.
func normalize(scores []float64) []float32 {
	var max float64
	for _, s := range scores {
		if s > max {
			max = s
		}
	}

	result := make([]float32, len(scores))
	if max == 0 {
		return result
	}
	for u, s := range scores {
		result[u] = float32(s / max)
	}

	return result
}
