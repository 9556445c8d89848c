package trie

import (
	"golang.org/x/exp/slices"
)

// Map - Prefix tree mapping words to values. Each edge is labeled by one rune
// so lookups cost O(length of the word) regardless of how many words are
// stored. Nodes live in an index-addressed arena and are created lazily on
// insert; Remove prunes branches that no longer lead to any stored word, so
// every node in the arena is on the path of some stored word.
//
// The empty word is a valid key, it is represented by the terminal flag on
// the root node.
type Map[V any] struct {
	arena *arena[V]
	size  int
}

// NewMap - Returns a new value-bearing trie
func NewMap[V any]() *Map[V] {
	return &Map[V]{arena: newArena[V]()}
}

// Put - Stores a value under the given word, creating one node per rune along
// the path where missing.
//   - word is the key to store under
//   - value is the data to store
//
// It returns:
//   - oldValue is the value that was overwritten, or the zero value if the word was not present
//   - existed is true if the word was already present
func (M *Map[V]) Put(word string, value V) (oldValue V, existed bool) {
	current := rootIndex
	for _, r := range word {
		child, ok := M.arena.at(current).children[r]
		if !ok {
			child = M.arena.newNode()
			M.arena.at(current).children[r] = child
		}
		current = child
	}

	n := M.arena.at(current)
	if n.terminal {
		oldValue = n.value
		existed = true
	} else {
		n.terminal = true
		M.size++
	}
	n.value = value

	return
}

// Get - Gets the value stored under the given word.
//   - word is the key to look up, only exact matches with the terminal flag set count
//
// It returns:
//   - value is the stored value if found, otherwise the zero value
//   - found is true if the word is present
func (M *Map[V]) Get(word string) (value V, found bool) {
	index, ok := M.walk(word)
	if !ok || !M.arena.at(index).terminal {
		return
	}

	value = M.arena.at(index).value
	found = true

	return
}

// Contains - Returns true if the exact word is present
func (M *Map[V]) Contains(word string) bool {
	index, ok := M.walk(word)
	return ok && M.arena.at(index).terminal
}

// StartsWith - Returns true if any stored word has the given prefix.
// Since pruning guarantees every node below the root leads to some stored
// word, reaching the end of the prefix path is sufficient. The root itself is
// only the end of the empty prefix, which every stored word has.
func (M *Map[V]) StartsWith(prefix string) bool {
	index, ok := M.walk(prefix)
	if !ok {
		return false
	}

	return index != rootIndex || M.size > 0
}

// Remove - Removes the word, if present, and prunes any nodes on its path that
// became childless and non-terminal. Nodes that are prefixes of other stored
// words are left in place.
//   - word is the key to remove
//
// It returns:
//   - value is the removed value if found, otherwise the zero value
//   - found is true if the word was present
func (M *Map[V]) Remove(word string) (value V, found bool) {
	// Walk to the terminal node recording the path for the prune pass
	runes := []rune(word)
	path := make([]int, 0, len(runes)+1)
	current := rootIndex
	path = append(path, current)
	for _, r := range runes {
		child, ok := M.arena.at(current).children[r]
		if !ok {
			return
		}
		current = child
		path = append(path, current)
	}

	n := M.arena.at(current)
	if !n.terminal {
		return
	}

	value = n.value
	found = true
	n.terminal = false
	var zero V
	n.value = zero
	M.size--

	// Walk back toward the root garbage collecting dead branches
	for i := len(path) - 1; i > 0; i-- {
		index := path[i]
		if M.arena.at(index).terminal || len(M.arena.at(index).children) > 0 {
			break
		}
		delete(M.arena.at(path[i-1]).children, runes[i-1])
		M.arena.free(index)
	}

	return
}

// Size - Returns the number of words stored
func (M *Map[V]) Size() int {
	return M.size
}

// WordsWithPrefix - Returns every stored word having the given prefix, in
// lexicographic rune order. An empty prefix returns all stored words.
func (M *Map[V]) WordsWithPrefix(prefix string) (words []string) {
	words = []string{}
	index, ok := M.walk(prefix)
	if !ok {
		return
	}

	M.collect(index, []rune(prefix), &words)

	return
}

// walk - Follows the path of the given word from the root without creating nodes.
//
// It returns:
//   - index is the arena index of the node the path ends at
//   - ok is false if a required child was absent, failing fast
func (M *Map[V]) walk(word string) (index int, ok bool) {
	index = rootIndex
	for _, r := range word {
		child, found := M.arena.at(index).children[r]
		if !found {
			return 0, false
		}
		index = child
	}

	ok = true
	return
}

// collect - Appends every terminal word below the given node, visiting
// children in sorted rune order for a deterministic result
func (M *Map[V]) collect(index int, word []rune, words *[]string) {
	n := M.arena.at(index)
	if n.terminal {
		*words = append(*words, string(word))
	}

	runes := make([]rune, 0, len(n.children))
	for r := range n.children {
		runes = append(runes, r)
	}
	slices.Sort(runes)

	for _, r := range runes {
		M.collect(n.children[r], append(word, r), words)
	}
}

// Trie - Prefix tree storing a set of words. It is a Map without values and
// shares its arena representation, pruning and iteration behavior.
type Trie struct {
	m *Map[struct{}]
}

// New - Returns a new word set trie
func New() *Trie {
	return &Trie{m: NewMap[struct{}]()}
}

// Insert - Adds the word to the set.
//
// It returns:
//   - added is true if the word was not already present
func (T *Trie) Insert(word string) (added bool) {
	_, existed := T.m.Put(word, struct{}{})
	return !existed
}

// Search - Returns true if the exact word is present
func (T *Trie) Search(word string) bool {
	return T.m.Contains(word)
}

// StartsWith - Returns true if any stored word has the given prefix
func (T *Trie) StartsWith(prefix string) bool {
	return T.m.StartsWith(prefix)
}

// Remove - Removes the word, if present, pruning dead branches.
//
// It returns:
//   - removed is true if the word was present
func (T *Trie) Remove(word string) (removed bool) {
	_, removed = T.m.Remove(word)
	return
}

// Size - Returns the number of words stored
func (T *Trie) Size() int {
	return T.m.Size()
}

// WordsWithPrefix - Returns every stored word having the given prefix, in
// lexicographic rune order
func (T *Trie) WordsWithPrefix(prefix string) []string {
	return T.m.WordsWithPrefix(prefix)
}
