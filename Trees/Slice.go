package Trees

import "golang.org/x/exp/constraints"

// Slice is a live, bounded view of a Tree: the items whose keys lie in the
// half-open range [from, to), where a nil bound means unbounded on that side.
// A Slice holds no copies and performs no caching — every read re-walks the
// backing tree, so mutation of the tree is immediately visible through the
// Slice, and Del through the Slice deletes in the tree. A Slice must not
// outlive its tree.
// A Slice is read-and-delete only: there is deliberately no Put, range
// assignment is unsupported.
type Slice[K constraints.Ordered, V any] struct {
	t        Tree[K, V]
	from, to *K
}

// in reports whether k lies inside the slice bounds.
func (u *Slice[K, V]) in(k K) bool {
	return (u.from == nil || *u.from <= k) && (u.to == nil || k < *u.to)
}

// intersectBounds narrows the outer range [f1, t1) by the inner [f2, t2):
// the new lower bound is the max of the lowers, the new upper the min of the
// uppers.
func intersectBounds[K constraints.Ordered](f1, t1, f2, t2 *K) (*K, *K) {
	f, t := f1, t1
	if f == nil || (f2 != nil && *f2 > *f) {
		f = f2
	}
	if t == nil || (t2 != nil && *t2 < *t) {
		t = t2
	}
	return f, t
}

// Get the value of k, treating keys outside the bounds as absent.
// Time: O(D); Space: O(1)
func (u *Slice[K, V]) Get(k K) (V, bool) {
	if !u.in(k) {
		return *new(V), false
	}
	return u.t.Get(k)
}

// Has reports whether k is present and inside the bounds.
// Time: O(D); Space: O(1)
func (u *Slice[K, V]) Has(k K) bool {
	return u.in(k) && u.t.Has(k)
}

// Del k through the slice, deleting it in the backing tree. Keys outside the
// bounds are treated as absent and left untouched.
// Time: O(D); Space: O(1)
func (u *Slice[K, V]) Del(k K) bool {
	return u.in(k) && u.t.Del(k)
}

// Items returns an iterator over the slice, bounded by the intersection of
// the slice bounds with the caller-supplied [start, end). The no-modification
// contract of Tree.Items applies.
func (u *Slice[K, V]) Items(start, end *K, reverse bool) *Iterator[K, V] {
	f, t := intersectBounds(u.from, u.to, start, end)
	return u.t.Items(f, t, reverse)
}

// Keys is the key counterpart of Items over the whole slice.
func (u *Slice[K, V]) Keys(reverse bool) func() (K, bool) {
	it := u.Items(nil, nil, reverse)
	return func() (K, bool) {
		a, in := it.Next()
		return a.Key, in
	}
}

// Values is the value counterpart of Keys.
func (u *Slice[K, V]) Values(reverse bool) func() (V, bool) {
	it := u.Items(nil, nil, reverse)
	return func() (V, bool) {
		a, in := it.Next()
		return a.Value, in
	}
}

// Each visits the in-range items in ascending key order until f returns
// false.
func (u *Slice[K, V]) Each(f func(K, V) bool) {
	for it := u.Items(nil, nil, false); ; {
		a, in := it.Next()
		if !in || !f(a.Key, a.Value) {
			return
		}
	}
}

// SubSlice returns a narrower view: the new bounds are the intersection of
// u's bounds with [start, end). Both views stay backed by the same tree.
func (u *Slice[K, V]) SubSlice(start, end *K) *Slice[K, V] {
	f, t := intersectBounds(u.from, u.to, start, end)
	return &Slice[K, V]{u.t, f, t}
}

// MinItem is the in-range item with the smallest key.
// Time: O(n) worst case (the bounds are a filter, not an index).
func (u *Slice[K, V]) MinItem() (Item[K, V], bool) {
	return u.Items(nil, nil, false).Next()
}

// MaxItem is the in-range item with the largest key.
// Time: O(n) worst case.
func (u *Slice[K, V]) MaxItem() (Item[K, V], bool) {
	return u.Items(nil, nil, true).Next()
}

// Len counts the in-range items by walking the backing tree; it is not O(1).
func (u *Slice[K, V]) Len() uint {
	var n uint
	u.Each(func(K, V) bool {
		n++
		return true
	})
	return n
}
