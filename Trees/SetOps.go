package Trees

import "golang.org/x/exp/constraints"

// Set algebra over the Tree contract. Every operator materializes the key set
// of each operand from a full key walk, applies the mathematical set
// operation on keys only, and rebuilds a fresh result tree; values are
// resolved from the operands afterwards. Results always use the unbalanced
// BinTree strategy. O(n log n) per operation — these are bulk operations, not
// point ones.

// keySet materializes the keys of t.
func keySet[K constraints.Ordered, V any](t Tree[K, V]) map[K]struct{} {
	s := make(map[K]struct{}, t.Len())
	t.Each(func(k K, _ V) bool {
		s[k] = struct{}{}
		return true
	})
	return s
}

// multiGet resolves k against trees in order; the first tree that contains k
// wins. This order dependence is part of the contract of Union and
// SymmetricDifference.
func multiGet[K constraints.Ordered, V any](trees []Tree[K, V], k K) (V, bool) {
	for _, t := range trees {
		if v, in := t.Get(k); in {
			return v, true
		}
	}
	return *new(V), false
}

// Intersection returns a new tree with the keys common to t and every tree of
// others. Values come from t.
func Intersection[K constraints.Ordered, V any](t Tree[K, V], others ...Tree[K, V]) *BinTree[K, V] {
	keys := keySet(t)
	for _, o := range others {
		os := keySet(o)
		for k := range keys {
			if _, in := os[k]; !in {
				delete(keys, k)
			}
		}
	}
	r := New[K, V]()
	for k := range keys {
		if v, in := t.Get(k); in {
			r.Put(k, v)
		}
	}
	return r
}

// Union returns a new tree with the keys present in t or any tree of others.
// For keys present in several operands the value of the first containing
// operand in the order [t, others...] wins.
func Union[K constraints.Ordered, V any](t Tree[K, V], others ...Tree[K, V]) *BinTree[K, V] {
	keys := keySet(t)
	for _, o := range others {
		o.Each(func(k K, _ V) bool {
			keys[k] = struct{}{}
			return true
		})
	}
	all := append([]Tree[K, V]{t}, others...)
	r := New[K, V]()
	for k := range keys {
		if v, in := multiGet(all, k); in {
			r.Put(k, v)
		}
	}
	return r
}

// Difference returns a new tree with the keys of t absent from every tree of
// others. Values come from t.
func Difference[K constraints.Ordered, V any](t Tree[K, V], others ...Tree[K, V]) *BinTree[K, V] {
	keys := keySet(t)
	for _, o := range others {
		o.Each(func(k K, _ V) bool {
			delete(keys, k)
			return true
		})
	}
	r := New[K, V]()
	for k := range keys {
		if v, in := t.Get(k); in {
			r.Put(k, v)
		}
	}
	return r
}

// SymmetricDifference returns a new tree with the keys present in exactly one
// of t and other. Values are resolved in the order [t, other].
func SymmetricDifference[K constraints.Ordered, V any](t, other Tree[K, V]) *BinTree[K, V] {
	keys := keySet(t)
	other.Each(func(k K, _ V) bool {
		if _, in := keys[k]; in {
			delete(keys, k)
		} else {
			keys[k] = struct{}{}
		}
		return true
	})
	both := []Tree[K, V]{t, other}
	r := New[K, V]()
	for k := range keys {
		if v, in := multiGet(both, k); in {
			r.Put(k, v)
		}
	}
	return r
}

// IsSubset reports whether every key of t is in other. Values are never
// consulted.
func IsSubset[K constraints.Ordered, V any](t, other Tree[K, V]) bool {
	os := keySet(other)
	sub := true
	t.Each(func(k K, _ V) bool {
		if _, in := os[k]; !in {
			sub = false
		}
		return sub
	})
	return sub
}

// IsSuperset reports whether every key of other is in t.
func IsSuperset[K constraints.Ordered, V any](t, other Tree[K, V]) bool {
	return IsSubset(other, t)
}

// IsDisjoint reports whether t and other share no key.
func IsDisjoint[K constraints.Ordered, V any](t, other Tree[K, V]) bool {
	os := keySet(other)
	disjoint := true
	t.Each(func(k K, _ V) bool {
		if _, in := os[k]; in {
			disjoint = false
		}
		return disjoint
	})
	return disjoint
}
