package graph

import (
	"github.com/stonegate/coreds/disjointset"
	"github.com/stonegate/coreds/hashmap"
)

// BFS - Traverses the graph breadth first from the given start vertex.
// Vertices are marked visited at enqueue time, not dequeue time, so no vertex
// is ever enqueued twice. The result is the unique level order consistent
// with unweighted shortest-path distance from start, with neighbors expanded
// in the order their edges were added.
//   - start is the vertex to traverse from
//
// It returns:
//   - order is the sequence of vertices in visitation order
//   - err is of type NoVertexFound if start is not present
func (G *Graph[V]) BFS(start V) (order []V, err error) {
	if !G.indexes.ContainsKey(start) {
		err = NoVertexFound{}
		return
	}

	visited, _ := hashmap.NewSet(G.hashAlgorithm)
	visited.Add(start)
	queue := []V{start}

	for len(queue) > 0 {
		vertex := queue[0]
		queue = queue[1:]
		order = append(order, vertex)

		edges, _ := G.adjacency.Get(vertex)
		for _, edge := range edges {
			if visited.Add(edge.To) {
				queue = append(queue, edge.To)
			}
		}
	}

	return
}

// DFS - Traverses the graph depth first from the given start vertex using an
// explicit stack, which bounds stack depth deterministically on large graphs.
// Neighbors are pushed in reverse so they are expanded in the order their
// edges were added, matching the recursive preorder.
//   - start is the vertex to traverse from
//
// It returns:
//   - order is the sequence of vertices in visitation order
//   - err is of type NoVertexFound if start is not present
func (G *Graph[V]) DFS(start V) (order []V, err error) {
	if !G.indexes.ContainsKey(start) {
		err = NoVertexFound{}
		return
	}

	visited, _ := hashmap.NewSet(G.hashAlgorithm)
	stack := []V{start}

	for len(stack) > 0 {
		vertex := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visited.Add(vertex) {
			continue
		}
		order = append(order, vertex)

		edges, _ := G.adjacency.Get(vertex)
		for i := len(edges) - 1; i >= 0; i-- {
			if !visited.Contains(edges[i].To) {
				stack = append(stack, edges[i].To)
			}
		}
	}

	return
}

// ConnectedComponents - Returns the partition of all vertices into connected
// components, computed with a disjoint set over the insertion-order vertex
// indexes. Directed edges are treated as connections, so for directed graphs
// the result is the weakly connected components.
//
// The result is deterministic: components are ordered by their first-added
// vertex and members appear in insertion order.
func (G *Graph[V]) ConnectedComponents() (components [][]V) {
	components = [][]V{}
	if len(G.vertices) == 0 {
		return
	}

	sets, _ := disjointset.New(len(G.vertices))
	for _, vertex := range G.vertices {
		from, _ := G.indexes.Get(vertex)
		edges, _ := G.adjacency.Get(vertex)
		for _, edge := range edges {
			to, _ := G.indexes.Get(edge.To)
			_, _ = sets.Union(from, to)
		}
	}

	componentNo := hashmap.NewInteger[int, int]()
	for i, vertex := range G.vertices {
		root, _ := sets.Find(i)
		no, found := componentNo.Get(root)
		if !found {
			no = len(components)
			componentNo.Put(root, no)
			components = append(components, []V{})
		}
		components[no] = append(components[no], vertex)
	}

	return
}

// ShortestPath - Returns a shortest path between two vertices counted in
// number of edges, found with a BFS parent chain. Edge weights are not
// considered.
//   - from and to are the path endpoints
//
// It returns:
//   - path is the sequence of vertices from from to to, inclusive
//   - err is of type NoVertexFound if either endpoint is not present, or of type NoPathFound if to is unreachable from from
func (G *Graph[V]) ShortestPath(from, to V) (path []V, err error) {
	if !G.indexes.ContainsKey(from) || !G.indexes.ContainsKey(to) {
		err = NoVertexFound{}
		return
	}

	if G.hashAlgorithm.Equal(from, to) {
		path = []V{from}
		return
	}

	parents, _ := hashmap.New[V, V](G.hashAlgorithm)
	visited, _ := hashmap.NewSet(G.hashAlgorithm)
	visited.Add(from)
	queue := []V{from}
	found := false

	for len(queue) > 0 && !found {
		vertex := queue[0]
		queue = queue[1:]

		edges, _ := G.adjacency.Get(vertex)
		for _, edge := range edges {
			if visited.Add(edge.To) {
				parents.Put(edge.To, vertex)
				if G.hashAlgorithm.Equal(edge.To, to) {
					found = true
					break
				}
				queue = append(queue, edge.To)
			}
		}
	}

	if !found {
		err = NoPathFound{}
		return
	}

	// Walk the parent chain backwards and reverse it
	for vertex := to; ; {
		path = append(path, vertex)
		parent, ok := parents.Get(vertex)
		if !ok {
			break
		}
		vertex = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return
}
