package voronoi

import "testing"

// seqLess orders arcs purely by seq, so these tests exercise the tree
// mechanics (ordering, traversal, removal) independently of any geometric
// predicate.
func seqLess(a, b *arc) bool { return a.seq < b.seq }

func TestBeachTreeInsertBeforeMaintainsOrder(t *testing.T) {
	tree := newBeachTree()

	a1 := &arc{}
	a2 := &arc{}
	a3 := &arc{}

	n1 := tree.insertBefore(nil, a1) // [a1]
	n3 := tree.insertBefore(nil, a3) // [a1, a3]
	tree.insertBefore(n3, a2)        // [a1, a2, a3]

	var order []*arc
	for n := tree.first(); n != nil; n = n.next {
		order = append(order, n.arc)
	}
	if len(order) != 3 || order[0] != a1 || order[1] != a2 || order[2] != a3 {
		t.Fatalf("traversal order = %v, want [a1 a2 a3]", order)
	}
	if tree.first() != n1 {
		t.Fatal("first() must be the leftmost node")
	}
	if tree.last().arc != a3 {
		t.Fatal("last() must be the rightmost node")
	}
}

func TestBeachTreeLowerBound(t *testing.T) {
	tree := newBeachTree()
	a1 := &arc{seq: 1}
	a2 := &arc{seq: 2}
	a3 := &arc{seq: 3}

	// insertBefore ignores seq for placement, only insertion order, so
	// insert already in seq order to keep lowerBound meaningful here.
	tree.insertBefore(nil, a1)
	tree.insertBefore(nil, a2)
	tree.insertBefore(nil, a3)

	found := tree.lowerBound(&arc{seq: 2}, seqLess)
	if found == nil || found.arc != a2 {
		t.Fatalf("lowerBound(2) should land on a2, got %v", found)
	}

	past := tree.lowerBound(&arc{seq: 99}, seqLess)
	if past != nil {
		t.Fatal("lowerBound past every key should return nil")
	}
}

func TestBeachTreeRemoveNodePreservesNeighborLinks(t *testing.T) {
	tree := newBeachTree()
	a1 := &arc{}
	a2 := &arc{}
	a3 := &arc{}
	tree.insertBefore(nil, a1)
	n2 := tree.insertBefore(nil, a2)
	tree.insertBefore(nil, a3)

	tree.remove(n2)

	first := tree.first()
	if first.arc != a1 {
		t.Fatalf("first arc after removal = %v, want a1", first.arc)
	}
	if first.next == nil || first.next.arc != a3 {
		t.Fatal("removing the middle node must link its former neighbors directly")
	}
	if first.next.previous != first {
		t.Fatal("previous/next links must stay symmetric after removal")
	}
}

func TestBeachTreeRemoveOnlyNode(t *testing.T) {
	tree := newBeachTree()
	n := tree.insertBefore(nil, &arc{})
	tree.remove(n)
	if !tree.empty() {
		t.Fatal("removing the only node must leave the tree empty")
	}
}
