package Trees

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 20000
	tAddValRange = 40000
)

// testPutGetDel exercises the engine contract against a content model; both
// strategies must pass it unchanged.
func testPutGetDel(t *testing.T, mk func() Tree[int, int]) {
	tree := mk()
	content := make(map[int]int, tAddN)
	{
		a := make([]int, tAddN)
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
		}
		for _, k := range a {
			_, in := content[k]
			if tree.Put(k, k+1) == in {
				t.Errorf("wrong Put result for key %v", k)
			}
			content[k] = k + 1
		}
	}
	if int(tree.Len()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Len(), len(content))
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt after inserts")
	}
	for k, v := range content {
		if a, in := tree.Get(k); !in || a != v {
			t.Errorf("tree does not have key %v with value %v", k, v)
		}
	}
	if tree.Has(tAddValRange + 1) {
		t.Errorf("tree has non existent key %v", tAddValRange+1)
	}
	if _, in := tree.Get(-1); in {
		t.Errorf("tree has non existent key %v", -1)
	}
	if tree.GetOr(-1, -7) != -7 {
		t.Error("GetOr ignored the default")
	}
	{ //overwriting keeps the count
		n := tree.Len()
		for k := range content {
			if tree.Put(k, -k) {
				t.Errorf("overwrite of key %v created a node", k)
			}
			content[k] = -k
			break
		}
		if tree.Len() != n {
			t.Errorf("tree size changed to %d on overwrite, want %d", tree.Len(), n)
		}
	}
	{ //delete some, then everything
		for k := range content {
			if !tree.Del(k) {
				t.Errorf("failed to delete key %v", k)
			}
			if tree.Del(k) {
				t.Errorf("can delete a second time key %v", k)
			}
			delete(content, k)
			if len(content)&1023 == 0 && tree.Corrupt() {
				t.Fatal("tree is corrupt during deletes")
			}
		}
		if tree.Len() != 0 || !tree.IsEmpty() {
			t.Errorf("tree size is %d after draining, want 0", tree.Len())
		}
		if tree.Del(0) {
			t.Error("empty tree deleted a key")
		}
	}
}

// testInOrder checks that a full walk is exactly the sorted content.
func testInOrder(t *testing.T, mk func() Tree[int, int]) {
	tree := mk()
	content := make(map[int]int, tAddN)
	for _i := 0; _i < tAddN; _i++ {
		k := rg.Intn(tAddValRange)
		tree.Put(k, k)
		content[k] = k
	}
	sorted := make([]int, 0, len(content))
	for k := range content {
		sorted = append(sorted, k)
	}
	slices.Sort(sorted)
	var s []int
	tree.Each(func(k, _ int) bool {
		s = append(s, k)
		return true
	})
	if !slices.Equal(s, sorted) {
		t.Error("in-order walk differs from sorted content")
	}
	{ //early stop
		s = s[:0]
		tree.Each(func(k, _ int) bool {
			s = append(s, k)
			return len(s) < 10
		})
		if len(s) != 10 || !slices.Equal(s, sorted[:10]) {
			t.Error("early stopped walk differs from sorted prefix")
		}
	}
}

// testRemoveTwoChildren replays the classic two-children removal: deleting
// the root 50 from {50,25,12,33,34,75} must keep the other five keys and the
// search order intact.
func testRemoveTwoChildren(t *testing.T, mk func() Tree[int, int]) {
	keys := []int{50, 25, 12, 33, 34, 75}
	tree := mk()
	for _, k := range keys {
		tree.Put(k, k)
	}
	if !tree.Del(50) {
		t.Fatal("failed to delete key 50")
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt after two-children removal")
	}
	if tree.Len() != 5 {
		t.Errorf("tree size is %d, want 5", tree.Len())
	}
	for _, k := range keys[1:] {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if tree.Has(50) {
		t.Error("tree has removed key 50")
	}
}

// testShuffledRemovals deletes every key of a fixed tree once, from a fresh
// tree each time, checking integrity after each removal.
func testShuffledRemovals(t *testing.T, mk func() Tree[int, int]) {
	keys := []int{50, 25, 20, 35, 22, 23, 27, 75, 65, 90, 60, 70, 85, 57, 83, 58}
	order := slices.Clone(keys)
	rg.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	for _, gone := range order {
		tree := mk()
		for _, k := range keys {
			tree.Put(k, k)
		}
		if !tree.Del(gone) {
			t.Fatalf("failed to delete key %v", gone)
		}
		if tree.Corrupt() {
			t.Fatalf("tree is corrupt after deleting key %v", gone)
		}
		for _, k := range keys {
			if k == gone {
				if tree.Has(k) {
					t.Errorf("tree has removed key %v", k)
				}
			} else if !tree.Has(k) {
				t.Errorf("tree does not have key %v", k)
			}
		}
	}
}

// testPopAndClear drains via PopItem, then rebuilds and clears.
func testPopAndClear(t *testing.T, mk func() Tree[int, int]) {
	tree := mk()
	if _, in := tree.PopItem(); in {
		t.Error("popped an item off an empty tree")
	}
	content := make(map[int]int, 1000)
	for _i := 0; _i < 1000; _i++ {
		k := rg.Intn(tAddValRange)
		tree.Put(k, k+3)
		content[k] = k + 3
	}
	for !tree.IsEmpty() {
		a, in := tree.PopItem()
		if !in {
			t.Fatal("PopItem failed on a non-empty tree")
		}
		if v, in := content[a.Key]; !in || v != a.Value {
			t.Errorf("popped non existent item %v", a)
		}
		delete(content, a.Key)
	}
	if len(content) != 0 {
		t.Errorf("%d items were never popped", len(content))
	}
	for _i := 0; _i < 100; _i++ {
		k := rg.Intn(tAddValRange)
		tree.Put(k, k)
	}
	tree.Clear()
	if tree.Len() != 0 || tree.Corrupt() {
		t.Error("tree isn't empty after Clear")
	}
	if _, in := tree.MinItem(); in {
		t.Error("cleared tree has a minimum")
	}
}

func TestBinTree_PutGetDel(t *testing.T) {
	testPutGetDel(t, func() Tree[int, int] { return New[int, int]() })
}
func TestSBTree_PutGetDel(t *testing.T) {
	testPutGetDel(t, func() Tree[int, int] { return MakeSBTree[int, int]() })
}
func TestBinTree_InOrder(t *testing.T) {
	testInOrder(t, func() Tree[int, int] { return New[int, int]() })
}
func TestSBTree_InOrder(t *testing.T) {
	testInOrder(t, func() Tree[int, int] { return MakeSBTree[int, int]() })
}
func TestBinTree_RemoveTwoChildren(t *testing.T) {
	testRemoveTwoChildren(t, func() Tree[int, int] { return New[int, int]() })
}
func TestSBTree_RemoveTwoChildren(t *testing.T) {
	testRemoveTwoChildren(t, func() Tree[int, int] { return MakeSBTree[int, int]() })
}
func TestBinTree_ShuffledRemovals(t *testing.T) {
	testShuffledRemovals(t, func() Tree[int, int] { return New[int, int]() })
}
func TestSBTree_ShuffledRemovals(t *testing.T) {
	testShuffledRemovals(t, func() Tree[int, int] { return MakeSBTree[int, int]() })
}
func TestBinTree_PopAndClear(t *testing.T) {
	testPopAndClear(t, func() Tree[int, int] { return New[int, int]() })
}
func TestSBTree_PopAndClear(t *testing.T) {
	testPopAndClear(t, func() Tree[int, int] { return MakeSBTree[int, int]() })
}
