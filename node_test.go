package fastqdedup

import "testing"

func TestInternalNodeEnsureWidthGrowsLazily(t *testing.T) {
	in := &internalNode{}
	if err := in.ensureWidth(3); err != nil {
		t.Fatal(err)
	}
	if len(in.children) != 4 {
		t.Fatalf("len(children) = %d, want 4", len(in.children))
	}
	if in.getChild(3) != nil {
		t.Fatal("getChild(3) returned a non-nil slot right after growth")
	}
}

func TestInternalNodeEnsureWidthRejectsTooWide(t *testing.T) {
	in := &internalNode{}
	if err := in.ensureWidth(maxChildren); err != ErrNodeTooWide {
		t.Fatalf("err = %v, want ErrNodeTooWide", err)
	}
}

func TestInternalNodeGetChildOutOfRange(t *testing.T) {
	in := &internalNode{}
	if in.getChild(0) != nil {
		t.Fatal("getChild on an empty node returned non-nil")
	}
}

func TestInternalNodeHasChildren(t *testing.T) {
	in := &internalNode{}
	if in.hasChildren() {
		t.Fatal("hasChildren() = true for a freshly created node")
	}
	if err := in.ensureWidth(1); err != nil {
		t.Fatal(err)
	}
	in.children[1] = newTerminalNode([]byte("x"), 1)
	if !in.hasChildren() {
		t.Fatal("hasChildren() = false with an occupied slot")
	}
}
