package disjointset

import "fmt"

// OutOfRange - Custom error to inform that an element index is outside the
// universe the set was constructed with
type OutOfRange struct {
	msg string
}

// Error - Used to notify that an element index was out of range
func (E OutOfRange) Error() string {
	if E.msg == "" {
		return "element index out of range"
	}
	return E.msg
}

// DisjointSet - Partition tracker over a fixed universe of n elements
// identified 0..n-1, also known as union-find. Each element carries a parent
// index and a rank held in flat slices; a root is its own parent. Find applies
// two-pass path compression and Union attaches by rank, which together bound
// the amortized cost per operation by the inverse Ackermann function.
//
// Construction creates n singleton sets. Elements are never destroyed, Union
// only merges sets, so the number of distinct sets is monotonically decreasing.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int
}

// New - Returns a new DisjointSet of n elements, each in its own set.
//   - n is the fixed number of elements in the universe
//
// It returns:
//   - disjointSet is a pointer to a DisjointSet struct
//   - err is a normal Go error which should be nil if everything went ok
func New(n int) (disjointSet *DisjointSet, err error) {
	// Check if n is valid
	if n <= 0 {
		err = fmt.Errorf("n must be a positive value higher than 0 (zero)")
		return
	}

	disjointSet = &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range disjointSet.parent {
		disjointSet.parent[i] = i
	}

	return
}

// Find - Returns the root of the set containing x. The walk to the root is
// followed by a second pass repointing every visited element directly to the
// root, flattening future lookups.
//   - x is an element index in 0..n-1
//
// It returns:
//   - root is the representative element of the set containing x
//   - err is of type OutOfRange if x is outside the universe
func (D *DisjointSet) Find(x int) (root int, err error) {
	if err = D.checkRange(x); err != nil {
		return
	}

	root = x
	for D.parent[root] != root {
		root = D.parent[root]
	}

	// Path compression
	for D.parent[x] != root {
		D.parent[x], x = root, D.parent[x]
	}

	return
}

// Union - Merges the sets containing x and y. The root of lower rank is
// attached under the root of higher rank; on equal ranks x's root becomes the
// new root and its rank grows by one.
//   - x and y are element indices in 0..n-1
//
// It returns:
//   - merged is true if x and y were in different sets, false if the call was a no-op
//   - err is of type OutOfRange if x or y is outside the universe
func (D *DisjointSet) Union(x, y int) (merged bool, err error) {
	rootX, err := D.Find(x)
	if err != nil {
		return
	}
	rootY, err := D.Find(y)
	if err != nil {
		return
	}

	if rootX == rootY {
		return
	}

	if D.rank[rootX] < D.rank[rootY] {
		rootX, rootY = rootY, rootX
	} else if D.rank[rootX] == D.rank[rootY] {
		D.rank[rootX]++
	}
	D.parent[rootY] = rootX
	D.count--
	merged = true

	return
}

// Connected - Returns whether x and y are in the same set.
//   - x and y are element indices in 0..n-1
//
// It returns:
//   - connected is true if x and y share a root
//   - err is of type OutOfRange if x or y is outside the universe
func (D *DisjointSet) Connected(x, y int) (connected bool, err error) {
	rootX, err := D.Find(x)
	if err != nil {
		return
	}
	rootY, err := D.Find(y)
	if err != nil {
		return
	}

	connected = rootX == rootY
	return
}

// Count - Returns the number of distinct sets remaining
func (D *DisjointSet) Count() int {
	return D.count
}

// Size - Returns the number of elements in the universe
func (D *DisjointSet) Size() int {
	return len(D.parent)
}

// checkRange - Returns an OutOfRange error if x is outside the universe
func (D *DisjointSet) checkRange(x int) error {
	if x < 0 || x >= len(D.parent) {
		return OutOfRange{}
	}

	return nil
}
