// Package edge defines the EdgeList types shared by generator, reader,
// and builder: an unordered pair (u, v) for unweighted graphs, and
// (u, (v, w)) for weighted ones. Self-loops and duplicates may be
// present; the builder is responsible for removing them (explicitly, in
// the in-place path).
package edge
