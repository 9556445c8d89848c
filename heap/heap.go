package heap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Heap - Binary heap stored as a complete tree in a growable slice, with
// child(i) = 2i+1, 2i+2 and parent(i) = (i-1)/2. The ordering is supplied at
// construction: the element for which less holds against every other element
// is the extreme and sits at index 0.
//
// Insert appends and sifts up, Extract moves the last element into the root
// slot and sifts down. When both children of a node compare equal in
// extremity, sift down picks the left child.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New - Returns a new Heap ordered by the given comparison.
//   - less reports whether a is more extreme than b, e.g. a < b for a min-heap
//
// It returns:
//   - heap is a pointer to a Heap struct
//   - err is a normal Go error which should be nil if everything went ok
func New[T any](less func(a, b T) bool) (heap *Heap[T], err error) {
	// Check if a comparison was given
	if less == nil {
		err = fmt.Errorf("less can not be nil, it determines the heap ordering")
		return
	}

	heap = &Heap[T]{less: less}
	return
}

// NewMin - Returns a new min-heap over any ordered element type
func NewMin[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{less: func(a, b T) bool { return a < b }}
}

// NewMax - Returns a new max-heap over any ordered element type
func NewMax[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{less: func(a, b T) bool { return a > b }}
}

// NewFromSlice - Returns a new Heap seeded with the given items, established
// in O(n) by sifting down every non-leaf from the back. The slice is copied,
// the heap never aliases caller memory.
//   - less reports whether a is more extreme than b
//   - items is the initial contents of the heap
//
// It returns:
//   - heap is a pointer to a Heap struct
//   - err is a normal Go error which should be nil if everything went ok
func NewFromSlice[T any](less func(a, b T) bool, items []T) (heap *Heap[T], err error) {
	heap, err = New(less)
	if err != nil {
		return
	}

	heap.items = make([]T, len(items))
	copy(heap.items, items)
	for i := len(heap.items)/2 - 1; i >= 0; i-- {
		heap.down(i)
	}

	return
}

// Insert - Adds an element to the heap by appending it and sifting it up
// until the heap property holds again
func (H *Heap[T]) Insert(item T) {
	H.items = append(H.items, item)
	H.up(len(H.items) - 1)
}

// Peek - Returns the current extreme without removing it.
//
// It returns:
//   - item is the extreme element, or the zero value if the heap is empty
//   - found is false if the heap is empty
func (H *Heap[T]) Peek() (item T, found bool) {
	if len(H.items) == 0 {
		return
	}

	item = H.items[0]
	found = true
	return
}

// Extract - Removes and returns the current extreme. The last element is
// moved into the root slot and sifted down until the heap property holds again.
//
// It returns:
//   - item is the extreme element, or the zero value if the heap is empty
//   - found is false if the heap is empty
func (H *Heap[T]) Extract() (item T, found bool) {
	n := len(H.items)
	if n == 0 {
		return
	}

	item = H.items[0]
	found = true

	H.items[0] = H.items[n-1]
	var zero T
	H.items[n-1] = zero
	H.items = H.items[:n-1]
	H.down(0)

	return
}

// Size - Returns the number of elements stored
func (H *Heap[T]) Size() int {
	return len(H.items)
}

// IsEmpty - Returns true if the heap holds no elements
func (H *Heap[T]) IsEmpty() bool {
	return len(H.items) == 0
}

// up - Sifts the element at index i toward the root, swapping with its parent
// while it is more extreme than the parent
func (H *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !H.less(H.items[i], H.items[parent]) {
			break
		}
		H.items[i], H.items[parent] = H.items[parent], H.items[i]
		i = parent
	}
}

// down - Sifts the element at index i toward the leaves, swapping with the
// more extreme child while the heap property is violated. On a tie between
// children the left child wins.
func (H *Heap[T]) down(i int) {
	n := len(H.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}

		child := left
		if right := left + 1; right < n && H.less(H.items[right], H.items[left]) {
			child = right
		}

		if !H.less(H.items[child], H.items[i]) {
			break
		}
		H.items[i], H.items[child] = H.items[child], H.items[i]
		i = child
	}
}
