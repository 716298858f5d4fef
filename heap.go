package binheap

import (
	"fmt"
	"math/bits"
)

/*
Heap is a binomial heap: a forest of binomial trees threaded through a
circular root list, holding at most one tree per rank between operations so
that the root count always equals the popcount of the element count.

Insert, DeleteMin, DecreaseKey, Delete and Meld all run in O(log n). FindMin
and the counters are O(1).

A Heap is built for a single exclusive owner. Nothing here locks; overlapping
operations from two goroutines will corrupt the link structure. Wrap the heap
in a mutex or confine it to one goroutine if it must be shared.
*/
type Heap struct {
	size  int
	trees int
	min   *node // root with the smallest key, nil when empty
	last  *node // entry point into the circular root list, nil when empty
}

// New creates an empty heap.
func New() *Heap {
	return &Heap{}
}

// Insert adds key with an associated value and returns the live handle used
// by DecreaseKey and Delete. Any int is a valid key.
func (h *Heap) Insert(key int, value any) *Item {
	n := newNode(key, value)
	if h.Empty() {
		h.size = 1
		h.trees = 1
		h.min = n
		h.last = n
		return n.item
	}
	h.connect(singleton(n))
	h.consolidate()
	return n.item
}

// FindMin returns the item with the smallest key, or nil when the heap is
// empty. Querying an empty heap is expected and is not an error.
func (h *Heap) FindMin() *Item {
	if h.Empty() {
		return nil
	}
	return h.min.item
}

// DeleteMin removes the item with the smallest key and returns it. The
// returned handle is dead. Fails with ErrEmptyHeap on an empty heap.
func (h *Heap) DeleteMin() (*Item, error) {
	if h.Empty() {
		return nil, fmt.Errorf("%w: cannot delete the minimum", ErrEmptyHeap)
	}
	it := h.min.item
	h.extractRoot(h.min)
	it.node = nil
	return it, nil
}

// DecreaseKey lowers item's key by the given non-negative amount, then
// restores heap order by swapping payloads up the parent chain. The handle
// must be live and must belong to this heap.
func (h *Heap) DecreaseKey(item *Item, by int) error {
	if item == nil || item.node == nil {
		return fmt.Errorf("%w: nil or dead item handle", ErrInvalidArgument)
	}
	if by < 0 {
		return fmt.Errorf("%w: negative decrease amount %d", ErrInvalidArgument, by)
	}
	item.key -= by
	h.siftUp(item.node)
	return nil
}

// Delete removes item's element no matter where it sits in the forest. The
// payload is raised to its tree root by unconditional swaps, which pushes
// every displaced item one level down and therefore cannot break heap order,
// and the root is then extracted exactly like a delete-min. No key sentinel
// is involved, so keys near the representable minimum are safe.
func (h *Heap) Delete(item *Item) error {
	if item == nil || item.node == nil {
		return fmt.Errorf("%w: nil or dead item handle", ErrInvalidArgument)
	}
	n := item.node
	for n.parent != nil {
		n.swapItem(n.parent)
		n = n.parent
	}
	h.extractRoot(n)
	item.node = nil
	return nil
}

// Meld moves every element of other into h, leaving other empty. The melded
// heap must be a distinct instance.
func (h *Heap) Meld(other *Heap) error {
	if other == nil {
		return fmt.Errorf("%w: nil heap", ErrInvalidArgument)
	}
	if other == h {
		return fmt.Errorf("%w: cannot meld a heap into itself", ErrInvalidArgument)
	}
	if other.Empty() {
		return nil
	}
	if h.Empty() {
		*h = *other
		other.clear()
		return nil
	}
	h.connect(other)
	other.clear()
	h.consolidate()
	return nil
}

// Size returns the number of elements across all trees.
func (h *Heap) Size() int { return h.size }

// Empty reports whether the heap holds no elements.
func (h *Heap) Empty() bool { return h.last == nil }

// NumTrees returns the number of roots in the current root list.
func (h *Heap) NumTrees() int { return h.trees }

// ====== internals ======

func singleton(n *node) *Heap {
	return &Heap{size: 1, trees: 1, min: n, last: n}
}

func (h *Heap) clear() {
	h.size = 0
	h.trees = 0
	h.min = nil
	h.last = nil
}

// connect splices other's circular root list into h's in O(1) and sums the
// counters. The result is denormalized; callers must consolidate.
func (h *Heap) connect(other *Heap) {
	h.last.next, other.last.next = other.last.next, h.last.next
	h.size += other.size
	h.trees += other.trees
}

// roots snapshots the circular root list. Consolidation relinks roots while
// it works, so the live list is never traversed mid-pass.
func (h *Heap) roots() []*node {
	if h.last == nil {
		return nil
	}
	out := make([]*node, 0, h.trees)
	n := h.last
	for {
		out = append(out, n)
		n = n.next
		if n == h.last {
			break
		}
	}
	return out
}

// consolidate normalizes the root list so each rank appears at most once,
// carrying equal-rank trees into one another like binary addition. The slot
// array gets one slot of headroom beyond the highest reachable rank.
func (h *Heap) consolidate() {
	slots := make([]*node, bits.Len(uint(h.size))+1)
	for _, r := range h.roots() {
		cur := r
		for slots[cur.rank] != nil {
			same := slots[cur.rank]
			slots[cur.rank] = nil
			cur = link(cur, same)
		}
		slots[cur.rank] = cur
	}

	// Rebuild the root list in ascending rank order. last ends up as the
	// highest rank, so last.next is the lowest.
	h.last = nil
	h.min = nil
	h.trees = 0
	for _, r := range slots {
		if r == nil {
			continue
		}
		if h.last == nil {
			r.next = r
			h.min = r
		} else {
			r.next = h.last.next
			h.last.next = r
			if r.key() < h.min.key() {
				h.min = r
			}
		}
		h.last = r
		h.trees++
	}
}

// siftUp walks n's payload toward the root while it beats its parent, then
// refreshes the cached minimum.
func (h *Heap) siftUp(n *node) {
	for n.parent != nil && n.parent.key() > n.key() {
		n.swapItem(n.parent)
		n = n.parent
	}
	if n.key() < h.min.key() {
		h.min = n
	}
}

// extractRoot removes the tree rooted at r from the forest and folds r's
// children back in. r must be a root of h.
func (h *Heap) extractRoot(r *node) {
	if h.size == 1 {
		h.clear()
		return
	}
	if h.trees == 1 {
		// r is the only root and, since size > 1, it has children. They
		// become the whole heap.
		*h = *detachChildren(r)
		return
	}
	h.unlinkRoot(r)
	if sub := detachChildren(r); sub != nil {
		h.connect(sub)
		h.consolidate()
	}
}

// unlinkRoot removes root r from the circular root list. next pointers are
// singly linked, so the predecessor is found by walking the circle; the new
// minimum is derived in the same pass. The caller guarantees at least one
// other root exists.
func (h *Heap) unlinkRoot(r *node) {
	var pred, min *node
	for cur := r.next; cur != r; cur = cur.next {
		if min == nil || cur.key() < min.key() {
			min = cur
		}
		if cur.next == r {
			pred = cur
		}
	}
	pred.next = r.next
	if h.last == r {
		h.last = r.next
	}
	h.size -= 1 << r.rank
	h.trees--
	h.min = min
	r.next = r
}

// detachChildren lifts r's child list out into a standalone heap, clearing
// parent pointers and finding the child minimum in one scan. Returns nil for
// a childless r.
func detachChildren(r *node) *Heap {
	if r.child == nil {
		return nil
	}
	sub := &Heap{
		size:  1<<r.rank - 1,
		trees: r.rank,
		last:  r.child,
	}
	min := r.child
	c := r.child
	for {
		c.parent = nil
		if c.key() < min.key() {
			min = c
		}
		c = c.next
		if c == r.child {
			break
		}
	}
	sub.min = min
	r.child = nil
	r.rank = 0
	return sub
}
