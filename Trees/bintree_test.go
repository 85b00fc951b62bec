package Trees

import (
	"testing"

	"golang.org/x/exp/constraints"
)

func TestBinTree_From(t *testing.T) {
	tree := From([]Item[int, int]{{3, 30}, {1, 10}, {2, 20}, {1, 11}})
	if tree.Len() != 3 {
		t.Errorf("tree size is %d, want 3", tree.Len())
	}
	if v, _ := tree.Get(1); v != 11 {
		t.Errorf("later duplicate didn't win: key 1 has value %v", v)
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestBinTree_FromKeys(t *testing.T) {
	tree := FromKeys([]int{5, 3, 5, 9, 3}, -1)
	if tree.Len() != 3 {
		t.Errorf("tree size is %d, want 3", tree.Len())
	}
	for _, k := range []int{3, 5, 9} {
		if v, in := tree.Get(k); !in || v != -1 {
			t.Errorf("key %v has value %v, %v", k, v, in)
		}
	}
}

// sameShape compares node graphs structurally, keys, values and links.
func sameShape[K constraints.Ordered, V comparable](a, b *node[K, V]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.k == b.k && a.v == b.v && sameShape(a.l, b.l) && sameShape(a.r, b.r)
}

func TestBinTree_Copy(t *testing.T) {
	tree := New[int, int]()
	for _i := 0; _i < 2000; _i++ {
		k := rg.Intn(tAddValRange)
		tree.Put(k, k^3)
	}
	cp := tree.Copy()
	if cp.Len() != tree.Len() || cp.Corrupt() {
		t.Fatal("copy differs in size or is corrupt")
	}
	if !sameShape(tree.root, cp.root) {
		t.Error("copy doesn't reproduce the physical shape")
	}
	//the copy must be independent
	a, _ := tree.MinKey()
	cp.Del(a)
	if !tree.Has(a) {
		t.Error("deleting from the copy mutated the original")
	}
	tree.Put(tAddValRange+5, 0)
	if cp.Has(tAddValRange + 5) {
		t.Error("inserting into the original mutated the copy")
	}
}

// Sorted insertion order degenerates a BinTree into a chain. That's accepted
// behavior: the tree stays correct, only D grows to n.
func TestBinTree_DegenerateChain(t *testing.T) {
	tree := New[int, int]()
	for i := 0; i < 500; i++ {
		tree.Put(i, i)
	}
	if tree.Corrupt() {
		t.Error("degenerate tree is corrupt")
	}
	d := 0
	for cur := tree.root; cur != nil; cur = cur.r {
		d++
	}
	if d != 500 {
		t.Errorf("right spine has %d nodes, want 500 on sorted insertion", d)
	}
}
