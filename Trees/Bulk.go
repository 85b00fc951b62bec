package Trees

import "golang.org/x/exp/constraints"

// Bulk operations generic over the Tree contract, so they exist once for
// every balancing strategy.

// Update inserts every item of every source into t, in order. Conflicting
// keys are overwritten, so later sources win.
func Update[K constraints.Ordered, V any](t Tree[K, V], sources ...[]Item[K, V]) {
	for _, src := range sources {
		for _, a := range src {
			t.Put(a.Key, a.Value)
		}
	}
}

// Export dumps all items of t in ascending key order. Together with From it
// forms the serialization boundary: From(Export(t)) holds the same items as
// t. The physical shape is not preserved — it depends on insertion order,
// which is ascending on import.
func Export[K constraints.Ordered, V any](t Tree[K, V]) []Item[K, V] {
	r := make([]Item[K, V], 0, t.Len())
	t.Each(func(k K, v V) bool {
		r = append(r, Item[K, V]{k, v})
		return true
	})
	return r
}

// RemoveItems deletes a batch of keys drawn from the closure iterator keys,
// returning how many were present. keys is drained completely before the
// first deletion: deletions mutate the very structure a lazy key sequence may
// still be reading from, so interleaving the two is never safe.
func RemoveItems[K constraints.Ordered, V any](t Tree[K, V], keys func() (K, bool)) uint {
	var ks []K
	for k, in := keys(); in; k, in = keys() {
		ks = append(ks, k)
	}
	var n uint
	for _, k := range ks {
		if t.Del(k) {
			n++
		}
	}
	return n
}

// DelSlice deletes every item whose key lies in [start, end), returning the
// number deleted. A nil bound means unbounded on that side.
func DelSlice[K constraints.Ordered, V any](t Tree[K, V], start, end *K) uint {
	it := t.Items(start, end, false)
	return RemoveItems(t, func() (K, bool) {
		a, in := it.Next()
		return a.Key, in
	})
}

// PopMin removes and returns the item with the smallest key.
func PopMin[K constraints.Ordered, V any](t Tree[K, V]) (Item[K, V], bool) {
	a, in := t.MinItem()
	if in {
		t.Del(a.Key)
	}
	return a, in
}

// PopMax removes and returns the item with the largest key.
func PopMax[K constraints.Ordered, V any](t Tree[K, V]) (Item[K, V], bool) {
	a, in := t.MaxItem()
	if in {
		t.Del(a.Key)
	}
	return a, in
}

// NSmallest returns up to n items with the smallest keys, ascending. If pop
// is true the items are removed from t as they are taken.
func NSmallest[K constraints.Ordered, V any](t Tree[K, V], n uint, pop bool) []Item[K, V] {
	if n > t.Len() {
		n = t.Len()
	}
	r := make([]Item[K, V], 0, n)
	if pop {
		for i := uint(0); i < n; i++ {
			a, _ := PopMin(t)
			r = append(r, a)
		}
	} else {
		it := t.Items(nil, nil, false)
		for i := uint(0); i < n; i++ {
			a, _ := it.Next()
			r = append(r, a)
		}
	}
	return r
}

// NLargest returns up to n items with the largest keys, descending. If pop is
// true the items are removed from t as they are taken.
func NLargest[K constraints.Ordered, V any](t Tree[K, V], n uint, pop bool) []Item[K, V] {
	if n > t.Len() {
		n = t.Len()
	}
	r := make([]Item[K, V], 0, n)
	if pop {
		for i := uint(0); i < n; i++ {
			a, _ := PopMax(t)
			r = append(r, a)
		}
	} else {
		it := t.Items(nil, nil, true)
		for i := uint(0); i < n; i++ {
			a, _ := it.Next()
			r = append(r, a)
		}
	}
	return r
}

// SetDefault returns the value of k; when k is absent, d is inserted first
// and returned.
func SetDefault[K constraints.Ordered, V any](t Tree[K, V], k K, d V) V {
	if v, in := t.Get(k); in {
		return v
	}
	t.Put(k, d)
	return d
}

// Pop removes k and returns the value it had.
func Pop[K constraints.Ordered, V any](t Tree[K, V], k K) (V, bool) {
	v, in := t.Get(k)
	if in {
		t.Del(k)
	}
	return v, in
}
