package Trees

import "golang.org/x/exp/constraints"

// Iterator walks the items of a tree one element per call to Next, in
// ascending key order, or descending when constructed with reverse set. Only
// items whose keys lie in the half-open range [start, end) are produced; a
// nil start behaves like the minimum key and a nil end means no upper bound.
// The suspended state is an explicit pending-node stack, so producing the
// next element costs amortized O(1) and no recursion or coroutine is
// involved. An Iterator is lazy, finite and single-pass: once Next returned
// false it never returns true again.
// The Iterator holds non-owning references into the live node graph. The
// backing tree must not be structurally modified (Put of a new key, Del,
// Clear) between the first and the last call to Next; doing so leaves the
// results undefined. There will be no panic if such cases happen so design
// the algorithm with this in mind.
type Iterator[K constraints.Ordered, V any] struct {
	st         []*node[K, V]
	start, end *K
	reverse    bool
}

func newIterator[K constraints.Ordered, V any](root *node[K, V], start, end *K, reverse bool) *Iterator[K, V] {
	u := &Iterator[K, V]{start: start, end: end, reverse: reverse}
	u.descend(root)
	return u
}

// descend stacks the path from n down its "first" side: left when ascending,
// right when reversed.
func (u *Iterator[K, V]) descend(n *node[K, V]) {
	for n != nil {
		u.st = append(u.st, n)
		if u.reverse {
			n = n.r
		} else {
			n = n.l
		}
	}
}

func (u *Iterator[K, V]) inRange(k K) bool {
	if u.start != nil && k < *u.start {
		return false
	}
	if u.end != nil && k >= *u.end {
		return false
	}
	return true
}

// Next produces the next in-range item. The second return value is false
// when the iterator is exhausted.
// Time: amortized O(1) per call; O(D) worst case. Space: O(1)
func (u *Iterator[K, V]) Next() (Item[K, V], bool) {
	for len(u.st) > 0 {
		cur := u.st[len(u.st)-1]
		u.st = u.st[:len(u.st)-1]
		if u.reverse {
			u.descend(cur.l)
		} else {
			u.descend(cur.r)
		}
		if u.inRange(cur.k) {
			return Item[K, V]{cur.k, cur.v}, true
		}
	}
	return Item[K, V]{}, false
}
