package model

import (
	"math"
	"testing"
)

func TestBuildBalancedHeightFormula(t *testing.T) {
	for n := 1; n <= 200; n++ {
		entries := make([]Entry[int], n)
		for i := range entries {
			entries[i] = Entry[int]{Code: i, Value: i}
		}
		tree := BuildBalanced(entries)

		want := int(math.Ceil(math.Log2(float64(n + 1))))
		if got := tree.Height(); got != want {
			t.Errorf("n=%d: Height() = %d, want %d", n, got, want)
		}
	}
}

func TestBuildBalancedContainsAndInOrder(t *testing.T) {
	entries := []Entry[string]{
		{Code: 101, Value: "a"},
		{Code: 203, Value: "b"},
		{Code: 305, Value: "d"},
		{Code: 1010, Value: "c"},
	}
	tree := BuildBalanced(entries)

	if tree.Size() != len(entries) {
		t.Fatalf("Size() = %d, want %d", tree.Size(), len(entries))
	}

	for _, e := range entries {
		if !tree.Contains(e.Code) {
			t.Errorf("Contains(%d) = false, want true", e.Code)
		}
		got, ok := tree.Get(e.Code)
		if !ok || got != e.Value {
			t.Errorf("Get(%d) = (%v,%v), want (%v,true)", e.Code, got, ok, e.Value)
		}
	}

	if tree.Contains(9999) {
		t.Error("Contains(9999) = true, want false")
	}

	inOrder := tree.InOrder()
	for i := 1; i < len(inOrder); i++ {
		if inOrder[i-1].Code >= inOrder[i].Code {
			t.Fatalf("InOrder() not ascending at index %d: %v", i, inOrder)
		}
	}
	if len(inOrder) != len(entries) {
		t.Fatalf("InOrder() length = %d, want %d", len(inOrder), len(entries))
	}
}

func TestInsertAndRebuild(t *testing.T) {
	tree := NewCoordTree[int]()
	tree.Insert(101, 1)
	tree.Insert(203, 2)
	tree.Insert(101, 99) // overwrite

	if v, ok := tree.Get(101); !ok || v != 99 {
		t.Errorf("Get(101) after overwrite = (%v,%v), want (99,true)", v, ok)
	}
	if tree.Size() != 2 {
		t.Errorf("Size() = %d, want 2", tree.Size())
	}

	rebuilt := tree.Rebuild([]Entry[int]{{Code: 305, Value: 3}})
	if rebuilt.Size() != 3 {
		t.Errorf("Rebuild size = %d, want 3", rebuilt.Size())
	}
	if !rebuilt.Contains(101) || !rebuilt.Contains(203) || !rebuilt.Contains(305) {
		t.Error("Rebuild lost an existing or added entry")
	}
}

func TestEmptyTree(t *testing.T) {
	tree := NewCoordTree[int]()
	if tree.Size() != 0 || tree.Height() != 0 {
		t.Errorf("empty tree: size=%d height=%d, want 0,0", tree.Size(), tree.Height())
	}
	if tree.Contains(1) {
		t.Error("empty tree Contains(1) = true")
	}
}
