// Package bitmap provides a fixed-size bit array over 64-bit words, used
// by the direction-optimizing BFS kernel to represent frontiers and by
// Brandes' betweenness centrality to represent the successor relation.
//
// Threads may concurrently call SetAtomic on any position. Mixing atomic
// and non-atomic writes on the same word is undefined, matching the
// contract of the underlying compare-and-swap retry loop.
package bitmap
