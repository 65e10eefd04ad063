package maprouter

import (
	"github.com/pkg/errors"
)

var errHeapEmpty = errors.New("heap is empty")

// HNode is a priority-queue entry in the shortest-path search: the node it
// reaches, the best accumulated cost found so far, the A* priority (cost plus
// heuristic) the heap orders by, and the edge used to reach it (for
// backtracking the path once the goal is popped).
type HNode struct {
	NodeIndex int
	Cost      uint32
	Priority  uint32
	PrevEdge  int
}

type HNodes []HNode

// Heap is a binary min-heap of HNodes ordered by Priority. Because nodes are
// re-inserted on every improving relaxation rather than updated in place
// (lazy decrease-key), a popped entry must be checked against the caller's
// best-known cost before use.
type Heap struct {
	items HNodes
	size  int
}

// Create creates an empty heap.
func Create() *Heap {
	return &Heap{items: make(HNodes, 0), size: 0}
}

// Insert adds an element to the heap, then restores the heap property by
// sifting it up from the last position.
func (h *Heap) Insert(n HNode) {
	h.items = append(h.items, n)
	h.size++
	h.heapifyUp()
}

// Min returns the minimum-priority item of the heap.
func (h *Heap) Min() (HNode, error) {
	if !h.IsEmpty() {
		return h.items[0], nil
	}
	return HNode{}, errHeapEmpty
}

// DeleteMin removes the minimum-priority item, promoting the last item to the
// root and sifting it down to restore the heap property.
func (h *Heap) DeleteMin() error {
	if h.IsEmpty() {
		return errHeapEmpty
	}
	h.items[0] = h.items[h.size-1]
	h.size--
	h.items = h.items[:len(h.items)-1]
	h.heapifyDown(0)
	return nil
}

func parentIndex(i int) int     { return (i - 1) / 2 }
func leftChildIndex(i int) int  { return 2*i + 1 }
func rightChildIndex(i int) int { return 2*i + 2 }

func (h *Heap) hasLeftChild(i int) bool  { return leftChildIndex(i) < h.size }
func (h *Heap) hasRightChild(i int) bool { return rightChildIndex(i) < h.size }
func (h *Heap) hasParent(i int) bool     { return parentIndex(i) >= 0 }

func (h *Heap) leftChild(i int) HNode  { return h.items[leftChildIndex(i)] }
func (h *Heap) rightChild(i int) HNode { return h.items[rightChildIndex(i)] }
func (h *Heap) parent(i int) HNode     { return h.items[parentIndex(i)] }

// heapifyUp sifts the last-inserted item up while its parent has a larger
// priority.
func (h *Heap) heapifyUp() {
	i := h.size - 1
	for h.hasParent(i) && h.parent(i).Priority > h.items[i].Priority {
		temp := h.items[i]
		h.items[i] = h.parent(i)
		h.items[parentIndex(i)] = temp
		i = parentIndex(i)
	}
}

// heapifyDown sifts the item at i down through the smaller of its children
// until the heap property holds or a leaf is reached.
func (h *Heap) heapifyDown(i int) {
	for h.hasLeftChild(i) {
		smallerChildIndex := leftChildIndex(i)
		if h.hasRightChild(i) && h.rightChild(i).Priority < h.leftChild(i).Priority {
			smallerChildIndex = rightChildIndex(i)
		}
		if h.items[i].Priority < h.items[smallerChildIndex].Priority {
			break
		}
		temp := h.items[i]
		h.items[i] = h.items[smallerChildIndex]
		h.items[smallerChildIndex] = temp
		i = smallerChildIndex
	}
}

// IsEmpty reports whether the heap holds no items.
func (h *Heap) IsEmpty() bool {
	return h.size == 0
}
