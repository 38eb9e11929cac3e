package tc

import "errors"

// ErrDirectedGraph is returned by Count when g is directed; triangle
// counting is only defined over undirected (symmetrized) graphs.
var ErrDirectedGraph = errors.New("tc: triangle counting requires an undirected graph")
