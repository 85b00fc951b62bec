package Trees

import "golang.org/x/exp/constraints"

// base holds the state every strategy shares: the owned root and the item
// count. It implements everything that only reads the node graph, so lookup,
// navigation, and iteration exist once and aren't re-implemented per
// strategy. Mutation (Put/Del) belongs to the embedding strategy; count is
// maintained by the strategy as well.
type base[K constraints.Ordered, V any] struct {
	root  *node[K, V]
	count uint
}

// Len [Tree.Len]
// Time: O(1); Space: O(1)
func (u *base[K, V]) Len() uint {
	return u.count
}

// IsEmpty [Tree.IsEmpty]
func (u *base[K, V]) IsEmpty() bool {
	return u.count == 0
}

// Clear [Tree.Clear]. Every node is released post-order, children before
// parent, so no removed node keeps a subtree alive. Recursive.
// Time: O(n)
func (u *base[K, V]) Clear() {
	releaseAll(u.root)
	u.root, u.count = nil, 0
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Get(k K) (V, bool) {
	for cur := u.root; cur != nil; {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return cur.v, true
		} else {
			cur = cur.r
		}
	}
	return *new(V), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Has(k K) bool {
	for cur := u.root; cur != nil; {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// GetOr [Tree.GetOr]
// Time: O(D); Space: O(1)
func (u *base[K, V]) GetOr(k K, d V) V {
	if v, in := u.Get(k); in {
		return v
	}
	return d
}

// MinItem [Tree.MinItem]
// Time: O(D); Space: O(1)
func (u *base[K, V]) MinItem() (Item[K, V], bool) {
	if cur := u.root; cur == nil {
		return Item[K, V]{}, false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return Item[K, V]{cur.k, cur.v}, true
	}
}

// MaxItem [Tree.MaxItem]
// Time: O(D); Space: O(1)
func (u *base[K, V]) MaxItem() (Item[K, V], bool) {
	if cur := u.root; cur == nil {
		return Item[K, V]{}, false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return Item[K, V]{cur.k, cur.v}, true
	}
}

// MinKey [Tree.MinKey]
func (u *base[K, V]) MinKey() (K, bool) {
	a, in := u.MinItem()
	return a.Key, in
}

// MaxKey [Tree.MaxKey]
func (u *base[K, V]) MaxKey() (K, bool) {
	a, in := u.MaxItem()
	return a.Key, in
}

// Successor [Tree.Successor]. While descending left, the current node is a
// successor candidate; while descending right it never is. On an exact match
// the leftmost node of the right subtree wins if it is smaller than the best
// candidate so far.
// Time: O(D); Space: O(1)
func (u *base[K, V]) Successor(k K) (Item[K, V], bool) {
	cur := u.root
	var succ *node[K, V]
	for cur != nil {
		if k == cur.k {
			break
		} else if k < cur.k {
			if succ == nil || cur.k < succ.k {
				succ = cur
			}
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if cur != nil && cur.r != nil {
		for cur = cur.r; cur.l != nil; {
			cur = cur.l
		}
		if succ == nil || cur.k < succ.k {
			succ = cur
		}
	}
	if succ == nil {
		return Item[K, V]{}, false
	}
	return Item[K, V]{succ.k, succ.v}, true
}

// Predecessor [Tree.Predecessor]. Symmetric to Successor: candidates are
// recorded while descending right, and on an exact match the rightmost node
// of the left subtree wins if it is larger.
// Time: O(D); Space: O(1)
func (u *base[K, V]) Predecessor(k K) (Item[K, V], bool) {
	cur := u.root
	var prev *node[K, V]
	for cur != nil {
		if k == cur.k {
			break
		} else if k < cur.k {
			cur = cur.l
		} else {
			if prev == nil || cur.k > prev.k {
				prev = cur
			}
			cur = cur.r
		}
	}
	if cur != nil && cur.l != nil {
		for cur = cur.l; cur.r != nil; {
			cur = cur.r
		}
		if prev == nil || cur.k > prev.k {
			prev = cur
		}
	}
	if prev == nil {
		return Item[K, V]{}, false
	}
	return Item[K, V]{prev.k, prev.v}, true
}

// Floor [Tree.Floor]. Returns immediately on an exact match, otherwise the
// largest key passed while moving right. Not shared with Predecessor: the
// candidate rules differ on exact matches and merging them costs a constant
// factor on every call.
// Time: O(D); Space: O(1)
func (u *base[K, V]) Floor(k K) (Item[K, V], bool) {
	var prev *node[K, V]
	for cur := u.root; cur != nil; {
		if k == cur.k {
			return Item[K, V]{cur.k, cur.v}, true
		} else if k < cur.k {
			cur = cur.l
		} else {
			if prev == nil || cur.k > prev.k {
				prev = cur
			}
			cur = cur.r
		}
	}
	if prev == nil {
		return Item[K, V]{}, false
	}
	return Item[K, V]{prev.k, prev.v}, true
}

// Ceiling [Tree.Ceiling]. Symmetric to Floor.
// Time: O(D); Space: O(1)
func (u *base[K, V]) Ceiling(k K) (Item[K, V], bool) {
	var succ *node[K, V]
	for cur := u.root; cur != nil; {
		if k == cur.k {
			return Item[K, V]{cur.k, cur.v}, true
		} else if k > cur.k {
			cur = cur.r
		} else {
			if succ == nil || cur.k < succ.k {
				succ = cur
			}
			cur = cur.l
		}
	}
	if succ == nil {
		return Item[K, V]{}, false
	}
	return Item[K, V]{succ.k, succ.v}, true
}

// SuccessorKey [Tree.SuccessorKey]
func (u *base[K, V]) SuccessorKey(k K) (K, bool) {
	a, in := u.Successor(k)
	return a.Key, in
}

// PredecessorKey [Tree.PredecessorKey]
func (u *base[K, V]) PredecessorKey(k K) (K, bool) {
	a, in := u.Predecessor(k)
	return a.Key, in
}

// FloorKey [Tree.FloorKey]
func (u *base[K, V]) FloorKey(k K) (K, bool) {
	a, in := u.Floor(k)
	return a.Key, in
}

// CeilingKey [Tree.CeilingKey]
func (u *base[K, V]) CeilingKey(k K) (K, bool) {
	a, in := u.Ceiling(k)
	return a.Key, in
}

// leafItem is the leaf reached by always descending left, then right, from
// the root: the cheapest node to detach. Backs PopItem.
func (u *base[K, V]) leafItem() (Item[K, V], bool) {
	cur := u.root
	if cur == nil {
		return Item[K, V]{}, false
	}
	for {
		if cur.l != nil {
			cur = cur.l
		} else if cur.r != nil {
			cur = cur.r
		} else {
			return Item[K, V]{cur.k, cur.v}, true
		}
	}
}

// Each [Tree.Each]
// Time: O(n); Space: O(D)
func (u *base[K, V]) Each(f func(K, V) bool) {
	var st []*node[K, V]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.k, cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// Items [Tree.Items]
func (u *base[K, V]) Items(start, end *K, reverse bool) *Iterator[K, V] {
	return newIterator(u.root, start, end, reverse)
}

// Keys [Tree.Keys]
func (u *base[K, V]) Keys(reverse bool) func() (K, bool) {
	it := u.Items(nil, nil, reverse)
	return func() (K, bool) {
		a, in := it.Next()
		return a.Key, in
	}
}

// Values [Tree.Values]
func (u *base[K, V]) Values(reverse bool) func() (V, bool) {
	it := u.Items(nil, nil, reverse)
	return func() (V, bool) {
		a, in := it.Next()
		return a.Value, in
	}
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(D)
func (u *base[K, V]) Corrupt() bool {
	var n uint
	ordered := true
	var prev K
	u.Each(func(k K, _ V) bool {
		if n > 0 && !(prev < k) {
			ordered = false
			return false
		}
		prev = k
		n++
		return true
	})
	return !ordered || n != u.count
}
