package langtree

import "testing"

func TestIsAncestor(t *testing.T) {
	proto := &Language{ID: "proto"}
	mid := &Language{ID: "mid", Parent: proto}
	leaf := &Language{ID: "leaf", Parent: mid}
	unrelated := &Language{ID: "other"}

	if !IsAncestor(leaf, proto) {
		t.Fatal("expected proto to be an ancestor of leaf")
	}
	if !IsAncestor(leaf, leaf) {
		t.Fatal("expected a language to be its own ancestor")
	}
	if IsAncestor(leaf, unrelated) {
		t.Fatal("expected unrelated language not to be an ancestor")
	}
	if IsAncestor(proto, leaf) {
		t.Fatal("ancestry should not hold in the descendant direction")
	}
}

func TestMilestoneEqual(t *testing.T) {
	lang := &Language{ID: "l"}
	a := Milestone{Starts: 0, Ends: 100, Language: lang}
	b := Milestone{Starts: 0, Ends: 100, Language: lang}
	c := Milestone{Starts: 0, Ends: 200, Language: lang}

	if !a.Equal(b) {
		t.Fatal("expected identical milestones to be equal")
	}
	if a.Equal(c) {
		t.Fatal("expected milestones with different Ends not to be equal")
	}
}

func TestTagOverlaps(t *testing.T) {
	lang := &Language{ID: "l"}
	a := Tag{Start: 0, End: 100, Language: lang}
	b := Tag{Start: 50, End: 150, Language: lang}
	c := Tag{Start: 100, End: 200, Language: lang}

	if !a.Overlaps(b) {
		t.Fatal("expected overlapping tags to overlap")
	}
	if a.Overlaps(c) {
		t.Fatal("expected half-open tags sharing only a boundary not to overlap")
	}
}

func TestTagLessOrdersByStartThenIndex(t *testing.T) {
	lang := &Language{ID: "l"}
	early := Tag{Start: 0, Index: 5, Language: lang}
	late := Tag{Start: 10, Index: 0, Language: lang}
	tieA := Tag{Start: 10, Index: 1, Language: lang}
	tieB := Tag{Start: 10, Index: 2, Language: lang}

	if !Less(early, late) {
		t.Fatal("expected earlier start to sort first regardless of index")
	}
	if !Less(tieA, tieB) {
		t.Fatal("expected ties on start to be broken by index")
	}
	if Less(late, early) {
		t.Fatal("Less should not hold in the reverse direction")
	}
}
