package graph

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/stonegate/coreds/hashfunc"
	"github.com/stonegate/coreds/hashmap"
	"github.com/stonegate/coreds/internal/hash"
)

// Edge - One adjacency entry, the endpoint it leads to and its weight
type Edge[V any] struct {
	To     V
	Weight float64
}

// Graph - Adjacency-list graph, directed or undirected as chosen at
// construction. Adjacency lists are held in a HashMap keyed by vertex, and an
// insertion-ordered vertex registry makes whole-graph operations
// deterministic: vertices are visited in the order they were added, neighbors
// in the order their edges were added.
//
// Vertices and edges are only ever created explicitly by the caller, never
// implicitly during traversal. For undirected graphs an edge (u,v) is
// mirrored into both u's and v's adjacency lists.
type Graph[V any] struct {
	directed      bool
	vertices      []V
	indexes       *hashmap.HashMap[V, int]
	adjacency     *hashmap.HashMap[V, []Edge[V]]
	edgeCount     int
	hashAlgorithm hashfunc.HashAlgorithm[V]
}

// New - Returns a new empty Graph.
//   - hashAlgorithm supplies hashing and equality for the vertex type
//   - directed set to true gives every edge a single direction, false mirrors every edge
//
// It returns:
//   - graph is a pointer to a Graph struct
//   - err is a normal Go error which should be nil if everything went ok
func New[V any](hashAlgorithm hashfunc.HashAlgorithm[V], directed bool) (graph *Graph[V], err error) {
	// Check if a hash algorithm was given
	if hashAlgorithm == nil {
		err = fmt.Errorf("hashAlgorithm can not be nil, it determines vertex identity")
		return
	}

	indexes, err := hashmap.New[V, int](hashAlgorithm)
	if err != nil {
		return
	}
	adjacency, err := hashmap.New[V, []Edge[V]](hashAlgorithm)
	if err != nil {
		return
	}

	graph = &Graph[V]{
		directed:      directed,
		indexes:       indexes,
		adjacency:     adjacency,
		hashAlgorithm: hashAlgorithm,
	}

	return
}

// NewString - Returns a new Graph with string vertices using the internal
// string hash algorithm.
//   - directed set to true gives every edge a single direction
func NewString(directed bool) *Graph[string] {
	g, _ := New[string](hash.NewStringHashAlgorithm(), directed)
	return g
}

// NewInteger - Returns a new Graph with integer vertices using the internal
// integer hash algorithm.
//   - directed set to true gives every edge a single direction
func NewInteger[V constraints.Integer](directed bool) *Graph[V] {
	g, _ := New[V](hash.NewIntegerHashAlgorithm[V](), directed)
	return g
}

// AddVertex - Adds a vertex with an empty adjacency list.
//   - vertex is the vertex to add
//
// It returns:
//   - added is false if the vertex was already present, in which case the call is a no-op
func (G *Graph[V]) AddVertex(vertex V) (added bool) {
	if G.indexes.ContainsKey(vertex) {
		return
	}

	G.indexes.Put(vertex, len(G.vertices))
	G.vertices = append(G.vertices, vertex)
	G.adjacency.Put(vertex, nil)
	added = true

	return
}

// AddEdge - Adds an edge with weight 1 between two existing vertices.
//   - from and to are the edge endpoints, both must have been added already
//
// It returns:
//   - err is of type NoVertexFound if either endpoint is not present
func (G *Graph[V]) AddEdge(from, to V) (err error) {
	return G.AddWeightedEdge(from, to, 1)
}

// AddWeightedEdge - Adds an edge with the given weight between two existing
// vertices. For undirected graphs the edge is mirrored into both adjacency
// lists; a self loop is stored once.
//   - from and to are the edge endpoints, both must have been added already
//   - weight is the edge weight
//
// It returns:
//   - err is of type NoVertexFound if either endpoint is not present
func (G *Graph[V]) AddWeightedEdge(from, to V, weight float64) (err error) {
	if !G.indexes.ContainsKey(from) || !G.indexes.ContainsKey(to) {
		err = NoVertexFound{}
		return
	}

	edges, _ := G.adjacency.Get(from)
	G.adjacency.Put(from, append(edges, Edge[V]{To: to, Weight: weight}))

	if !G.directed && !G.hashAlgorithm.Equal(from, to) {
		edges, _ = G.adjacency.Get(to)
		G.adjacency.Put(to, append(edges, Edge[V]{To: from, Weight: weight}))
	}

	G.edgeCount++

	return
}

// HasVertex - Returns true if the vertex is present
func (G *Graph[V]) HasVertex(vertex V) bool {
	return G.indexes.ContainsKey(vertex)
}

// Neighbors - Returns a copy of the adjacency list of the given vertex, in
// the order its edges were added.
//   - vertex is the vertex to inspect
//
// It returns:
//   - edges is a copy of the adjacency list
//   - err is of type NoVertexFound if the vertex is not present
func (G *Graph[V]) Neighbors(vertex V) (edges []Edge[V], err error) {
	stored, found := G.adjacency.Get(vertex)
	if !found {
		err = NoVertexFound{}
		return
	}

	edges = make([]Edge[V], len(stored))
	copy(edges, stored)

	return
}

// Vertices - Returns a copy of all vertices in insertion order
func (G *Graph[V]) Vertices() (vertices []V) {
	vertices = make([]V, len(G.vertices))
	copy(vertices, G.vertices)

	return
}

// VertexCount - Returns the number of vertices
func (G *Graph[V]) VertexCount() int {
	return len(G.vertices)
}

// EdgeCount - Returns the number of edges added. An undirected edge counts
// once even though it appears in two adjacency lists.
func (G *Graph[V]) EdgeCount() int {
	return G.edgeCount
}

// Directed - Returns true if the graph was created directed
func (G *Graph[V]) Directed() bool {
	return G.directed
}
