package bench

import (
	"fmt"

	"github.com/katalvlaran/gapgo/csr"
	"github.com/katalvlaran/gapgo/edge"
)

// CCVerifier checks a component-label array by independently computing
// the partition via serial BFS flood-fill and comparing it against
// result's partition induced by label equality.
type CCVerifier struct{}

func (CCVerifier) Verify(g *csr.Graph, params, result any) error {
	comp, ok := result.([]edge.NodeID)
	if !ok {
		return fmt.Errorf("bench: CCVerifier expects []edge.NodeID result, got %T", result)
	}

	n := g.NumNodes()
	if len(comp) != n {
		return fmt.Errorf("bench: comp length %d != NumNodes %d", len(comp), n)
	}

	canon := serialComponents(g)
	// canon[u] == canon[v] must hold iff comp[u] == comp[v], for every
	// pair sharing a canonical or reported label.
	canonToComp := make(map[edge.NodeID]edge.NodeID)
	compToCanon := make(map[edge.NodeID]edge.NodeID)
	for u := edge.NodeID(0); u < edge.NodeID(n); u++ {
		if prev, seen := canonToComp[canon[u]]; seen && prev != comp[u] {
			return fmt.Errorf("bench: vertices sharing a true component got different labels at vertex %d", u)
		}
		canonToComp[canon[u]] = comp[u]

		if prev, seen := compToCanon[comp[u]]; seen && prev != canon[u] {
			return fmt.Errorf("bench: vertices with the same label belong to different true components at vertex %d", u)
		}
		compToCanon[comp[u]] = canon[u]
	}

	return nil
}

// serialComponents assigns each vertex a canonical component id via
// repeated BFS flood-fill, independent of cc.Run's Afforest sampling.
func serialComponents(g *csr.Graph) []edge.NodeID {
	n := g.NumNodes()
	directed := g.Directed()
	label := make([]edge.NodeID, n)
	for i := range label {
		label[i] = -1
	}

	next := edge.NodeID(0)
	for s := edge.NodeID(0); s < edge.NodeID(n); s++ {
		if label[s] >= 0 {
			continue
		}
		label[s] = next
		queue := []edge.NodeID{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.OutNeigh(u) {
				if label[v] < 0 {
					label[v] = next
					queue = append(queue, v)
				}
			}
			if directed {
				for _, v := range g.InNeigh(u) {
					if label[v] < 0 {
						label[v] = next
						queue = append(queue, v)
					}
				}
			}
		}
		next++
	}

	return label
}
