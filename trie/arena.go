package trie

import "github.com/stonegate/coreds/internal/conf"

// rootIndex - The root node always sits first in the arena and is never freed
const rootIndex int = 0

// node - One trie node held in the arena. Children are referenced by arena
// index rather than pointer, keyed by the rune labeling the edge.
type node[V any] struct {
	children map[rune]int
	terminal bool
	value    V
}

// arena - Pool holding all nodes of a trie in one contiguous slice.
// Pruned node slots are kept on a free list and reused by later inserts, so
// the slice only grows when the free list is empty.
type arena[V any] struct {
	nodes    []node[V]
	freeList []int
}

// newArena - Returns a new arena with the root node allocated at index 0
func newArena[V any]() *arena[V] {
	a := &arena[V]{
		nodes: make([]node[V], 0, conf.TrieArenaInitialCapacity),
	}
	a.nodes = append(a.nodes, node[V]{children: make(map[rune]int)})

	return a
}

// newNode - Allocates a node slot, reusing a freed one if available.
//
// It returns:
//   - index is the arena index of the new node
func (A *arena[V]) newNode() (index int) {
	if n := len(A.freeList); n > 0 {
		index = A.freeList[n-1]
		A.freeList = A.freeList[:n-1]
		A.nodes[index].children = make(map[rune]int)
		return
	}

	index = len(A.nodes)
	A.nodes = append(A.nodes, node[V]{children: make(map[rune]int)})

	return
}

// free - Returns a node slot to the free list and clears its contents.
// The root is never freed.
//   - index is the arena index of the node to release
func (A *arena[V]) free(index int) {
	A.nodes[index] = node[V]{}
	A.freeList = append(A.freeList, index)
}

// at - Returns a pointer to the node at the given arena index
func (A *arena[V]) at(index int) *node[V] {
	return &A.nodes[index]
}
