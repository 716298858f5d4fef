package binheap

/*
A node is one vertex of a binomial tree. A tree of rank r holds exactly 2^r
nodes; the root has r children of ranks r-1 down to 0. Every node, root or
internal, sits in exactly one circular sibling list threaded through next.

Nodes never change trees during decrease-key. Only the items they carry move,
so the external Item handles survive any amount of reordering.
*/
type node struct {
	item   *Item
	child  *node // head of the circular child list, nil for leaves
	next   *node // next sibling, circular
	parent *node // nil for roots
	rank   int   // number of children
}

// Item is the handle returned to the caller on Insert. It stays valid for as
// long as its element is in the heap, regardless of how many payload swaps
// move it between nodes. Once the element is removed the handle goes dead and
// is rejected by DecreaseKey and Delete.
type Item struct {
	node  *node
	key   int
	value any
}

// Key returns the item's current key. DecreaseKey lowers it in place.
func (i *Item) Key() int { return i.key }

// Value returns the opaque payload given to Insert.
func (i *Item) Value() any { return i.value }

// Live reports whether the item is still held by a heap.
func (i *Item) Live() bool { return i.node != nil }

func newNode(key int, value any) *node {
	n := &node{}
	n.item = &Item{node: n, key: key, value: value}
	n.next = n
	return n
}

func (n *node) key() int { return n.item.key }

// swapItem exchanges payloads with other and keeps both back-references
// current. Tree shape is untouched.
func (n *node) swapItem(other *node) {
	n.item, other.item = other.item, n.item
	n.item.node = n
	other.item.node = other
}

// adopt splices child into n's circular child list and bumps n's rank.
func (n *node) adopt(child *node) {
	if n.child == nil {
		child.next = child
	} else {
		child.next = n.child.next
		n.child.next = child
	}
	n.child = child
	child.parent = n
	n.rank++
}

// link merges two roots of equal rank into one tree of rank+1. The smaller
// key becomes the parent; a wins ties so the outcome is deterministic.
func link(a, b *node) *node {
	if b.key() < a.key() {
		a, b = b, a
	}
	a.adopt(b)
	return a
}

// children snapshots n's circular child list into a slice. Callers relink
// nodes while iterating, so the live list is never traversed directly.
func (n *node) children() []*node {
	if n.child == nil {
		return nil
	}
	out := make([]*node, 0, n.rank)
	c := n.child
	for {
		out = append(out, c)
		c = c.next
		if c == n.child {
			break
		}
	}
	return out
}
