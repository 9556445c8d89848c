// Package coreds is a small suite of generic in-memory containers sharing a
// common design discipline: amortized-cost mutation, deterministic iteration
// and safe resizing.
//
// The containers live in their own packages:
//   - hashmap - associative storage with separate chaining and dynamic resizing
//   - heap - binary min/max heap over a growable slice
//   - trie - prefix-indexed string set/map backed by an index-addressed node arena
//   - disjointset - union/find partition tracker with path compression and union by rank
//   - graph - adjacency-list graph with BFS/DFS, components and unweighted shortest path
//
// All containers are single-threaded and synchronous; callers requiring
// concurrent access must apply their own external synchronization.
package coreds
