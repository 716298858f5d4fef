package binheap

import "testing"

func Test_adopt_circle(t *testing.T) {
	p := newNode(1, nil)
	a := newNode(2, nil)
	b := newNode(3, nil)
	c := newNode(4, nil)

	p.adopt(a)
	if p.child != a || a.next != a || a.parent != p {
		t.Errorf("first child must form its own circle")
	}

	p.adopt(b)
	p.adopt(c)
	if p.rank != 3 {
		t.Errorf("expected rank 3, got %d", p.rank)
	}

	kids := p.children()
	if len(kids) != 3 {
		t.Errorf("expected 3 children, got %d", len(kids))
	}
	seen := map[*node]bool{}
	for _, k := range kids {
		if k.parent != p {
			t.Errorf("broken parent link")
		}
		seen[k] = true
	}
	if !seen[a] || !seen[b] || !seen[c] {
		t.Errorf("child list lost a node")
	}
}

func Test_link_smaller_wins(t *testing.T) {
	a := newNode(5, nil)
	b := newNode(9, nil)

	root := link(a, b)
	if root != a {
		t.Errorf("smaller key must become the parent")
	}
	if a.rank != 1 || b.parent != a || a.child != b {
		t.Errorf("relationship error after link")
	}

	c := newNode(3, nil)
	c.rank = 1
	root = link(a, c)
	if root != c {
		t.Errorf("expected c to win the link")
	}
	if c.rank != 2 || a.parent != c {
		t.Errorf("relationship error after second link")
	}
}

func Test_link_tiebreak(t *testing.T) {
	a := newNode(7, nil)
	b := newNode(7, nil)

	root := link(a, b)
	if root != a {
		t.Errorf("ties must keep the first operand as parent")
	}
}

func Test_swapItem(t *testing.T) {
	a := newNode(1, "a")
	b := newNode(2, "b")
	ia, ib := a.item, b.item

	a.swapItem(b)

	if a.item != ib || b.item != ia {
		t.Errorf("items did not swap")
	}
	if ia.node != b || ib.node != a {
		t.Errorf("back-references not updated")
	}
	if a.key() != 2 || b.key() != 1 {
		t.Errorf("keys did not travel with their items")
	}
}

func Test_children_snapshot(t *testing.T) {
	p := newNode(0, nil)
	if p.children() != nil {
		t.Errorf("leaf must have no children")
	}

	for i := 1; i <= 4; i++ {
		p.adopt(newNode(i, nil))
	}
	kids := p.children()
	// relinking the snapshot must not affect the returned slice
	for _, k := range kids {
		k.next = k
	}
	if len(kids) != 4 {
		t.Errorf("expected 4 children, got %d", len(kids))
	}
}
