package bfs

import "errors"

// ErrMissingInverseAdjacency is returned when Run is asked to traverse
// a directed graph built without inverse adjacency. The bottom-up half
// of the direction-optimizing switch needs in-neighbors to scan, and
// the switch can trigger on the very first frontier for small or
// sparse graphs, so this is checked up front rather than left to
// surface as a nil-slice panic partway through a run.
var ErrMissingInverseAdjacency = errors.New("bfs: directed graph has no inverse adjacency; build with builder.WithInverse()")
