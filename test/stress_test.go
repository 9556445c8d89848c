//go:build stress

package test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stonegate/coreds/disjointset"
	"github.com/stonegate/coreds/graph"
	"github.com/stonegate/coreds/hashmap"
	"github.com/stonegate/coreds/heap"
	"github.com/stonegate/coreds/trie"
)

func TestHashMapChurn(t *testing.T) {
	t.Run("agrees with a reference map over heavy random churn", func(t *testing.T) {
		// Prepare
		m := hashmap.NewInteger[int, int]()
		reference := make(map[int]int)
		rnd := rand.New(rand.NewSource(42))

		// Execute
		for i := 0; i < 200000; i++ {
			key := rnd.Intn(10000)
			if rnd.Intn(4) == 0 {
				_, found := m.Remove(key)
				_, want := reference[key]
				assert.Equal(t, want, found, "remove agrees with reference")
				delete(reference, key)
			} else {
				value := rnd.Int()
				m.Put(key, value)
				reference[key] = value
			}
			assert.LessOrEqual(t, m.LoadFactor(), 0.75, "load factor within threshold")
		}

		// Check
		assert.Equal(t, len(reference), m.Size(), "sizes agree after churn")
		for key, want := range reference {
			value, found := m.Get(key)
			assert.True(t, found, fmt.Sprintf("key %d present", key))
			assert.Equal(t, want, value, fmt.Sprintf("key %d value agrees", key))
		}
	})
}

func TestHeapSortsRandomInput(t *testing.T) {
	t.Run("extracting everything yields sorted output", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(42))
		items := make([]int, 100000)
		for i := range items {
			items[i] = rnd.Int()
		}
		h, err := heap.NewFromSlice(func(a, b int) bool { return a < b }, items)
		assert.NoError(t, err, "create heap from slice")

		want := make([]int, len(items))
		copy(want, items)
		sort.Ints(want)

		// Execute
		got := make([]int, 0, len(items))
		for !h.IsEmpty() {
			v, _ := h.Extract()
			got = append(got, v)
		}

		// Check
		assert.Equal(t, want, got, "heap extraction is a sort")
	})
}

func TestTrieAgainstReferenceSet(t *testing.T) {
	t.Run("round-trips a large random word set with removals", func(t *testing.T) {
		// Prepare
		tr := trie.New()
		reference := make(map[string]bool)
		rnd := rand.New(rand.NewSource(42))
		alphabet := []rune("abcdef")

		randomWord := func() string {
			n := 1 + rnd.Intn(8)
			w := make([]rune, n)
			for i := range w {
				w[i] = alphabet[rnd.Intn(len(alphabet))]
			}
			return string(w)
		}

		// Execute
		for i := 0; i < 50000; i++ {
			word := randomWord()
			if rnd.Intn(3) == 0 {
				assert.Equal(t, reference[word], tr.Remove(word), "remove agrees with reference")
				delete(reference, word)
			} else {
				assert.Equal(t, !reference[word], tr.Insert(word), "insert agrees with reference")
				reference[word] = true
			}
		}

		// Check
		assert.Equal(t, len(reference), tr.Size(), "sizes agree after churn")
		for word := range reference {
			assert.True(t, tr.Search(word), fmt.Sprintf("word %s present", word))
		}
	})
}

func TestGraphComponentsAgainstDisjointSet(t *testing.T) {
	t.Run("component partition matches an independently built disjoint set", func(t *testing.T) {
		// Prepare
		const n = 2000
		g := graph.NewInteger[int](false)
		for i := 0; i < n; i++ {
			g.AddVertex(i)
		}

		sets, err := disjointset.New(n)
		assert.NoError(t, err, "create disjoint set")

		rnd := rand.New(rand.NewSource(42))
		for i := 0; i < n; i++ {
			u, v := rnd.Intn(n), rnd.Intn(n)
			assert.NoError(t, g.AddEdge(u, v), "add edge")
			_, err = sets.Union(u, v)
			assert.NoError(t, err, "union")
		}

		// Execute
		components := g.ConnectedComponents()

		// Check
		assert.Equal(t, sets.Count(), len(components), "component count agrees")

		total := 0
		for _, component := range components {
			total += len(component)
			for _, v := range component[1:] {
				connected, err := sets.Connected(component[0], v)
				assert.NoError(t, err, "connected")
				assert.True(t, connected, "component members share a set")
			}
		}
		assert.Equal(t, n, total, "partition covers every vertex")
	})
}
