package Trees

import "golang.org/x/exp/constraints"

// SBTree is a balancing strategy for the same contract as BinTree: a binary
// search tree that maintains balance through rotations by checking the sizes
// of subtrees. The worst case height is O(log n) regardless of insertion
// order, at the memory cost of one size word per node.
// Note that Del doesn't rebalance (same as the original algorithm), so after
// a long sequence of removals the height bound is relative to the size before
// that sequence; the next Put restores it.
type SBTree[K constraints.Ordered, V any] struct {
	base[K, V]
}

// MakeSBTree returns an empty SBTree. SBTree shouldn't be created directly
// using struct literal.
func MakeSBTree[K constraints.Ordered, V any]() *SBTree[K, V] {
	return &SBTree[K, V]{}
}

// BuildSBTree builds an SBTree from the given item slice recursively. This is
// faster than repeatedly calling Put, but the slice must be sorted in strictly
// ascending key order (no duplicates). If safe==true this function checks the
// condition and panics with InvalidSliceError when it is broken; otherwise the
// check is skipped and a violating slice produces a corrupt tree. Set safe to
// false when the condition is known to hold to avoid the redundant checks.
// Time: O(n)
func BuildSBTree[K constraints.Ordered, V any](items []Item[K, V], safe bool) *SBTree[K, V] {
	var build func(s []Item[K, V]) *node[K, V]
	if safe {
		build = func(s []Item[K, V]) *node[K, V] {
			if len(s) > 0 {
				mid := len(s) >> 1
				l, r := build(s[0:mid]), build(s[mid+1:])
				if l != nil && !(l.k < s[mid].Key) {
					panic(InvalidSliceError[K]{l.k, s[mid].Key})
				}
				if r != nil && !(s[mid].Key < r.k) {
					panic(InvalidSliceError[K]{s[mid].Key, r.k})
				}
				return &node[K, V]{s[mid].Key, s[mid].Value, l, r, uint(len(s))}
			}
			return nil
		}
	} else {
		build = func(s []Item[K, V]) *node[K, V] {
			if len(s) > 0 {
				mid := len(s) >> 1
				return &node[K, V]{s[mid].Key, s[mid].Value, build(s[0:mid]), build(s[mid+1:]), uint(len(s))}
			}
			return nil
		}
	}
	return &SBTree[K, V]{base[K, V]{build(items), uint(len(items))}}
}

// maintain the subtree rooted at *curPtr recursively to satisfy the
// size-balance property using rotateLeft and rotateRight. rightBigger
// indicates which side just grew, removing redundant size comparisons.
// curPtr is passed by reference.
// Time: amortized O(1)
func (u *SBTree[K, V]) maintain(curPtr **node[K, V], rightBigger bool) {
	cur := *curPtr
	if cur == nil {
		return
	}
	if rightBigger {
		if rc := cur.r; rc == nil {
			return
		} else if size(rc.r) > size(cur.l) {
			rotateLeft(curPtr)
		} else if size(rc.l) > size(cur.l) {
			rotateRight(&cur.r)
			rotateLeft(curPtr)
		} else {
			return
		}
	} else {
		if lc := cur.l; lc == nil {
			return
		} else if size(lc.l) > size(cur.r) {
			rotateRight(curPtr)
		} else if size(lc.r) > size(cur.r) {
			rotateLeft(&cur.l)
			rotateRight(curPtr)
		} else {
			return
		}
	}
	u.maintain(&cur.l, false)
	u.maintain(&cur.r, true)
	u.maintain(curPtr, false)
	u.maintain(curPtr, true)
}

// insert k/v into the subtree rooted at *curPtr recursively. curPtr is passed
// by reference. Returns true if a new node was attached; an existing key only
// has its value overwritten, without touching sizes or balance.
func (u *SBTree[K, V]) insert(curPtr **node[K, V], k K, v V) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[K, V]{k: k, v: v, sz: 1}
		return true
	}
	inserted := false
	if k < cur.k {
		inserted = u.insert(&cur.l, k, v)
	} else if k == cur.k {
		cur.v = v
		return false
	} else {
		inserted = u.insert(&cur.r, k, v)
	}
	if inserted {
		cur.sz++
		u.maintain(curPtr, k > cur.k)
	}
	return inserted
}

// Put [Tree.Put]. Recursive.
// Time: O(D)
func (u *SBTree[K, V]) Put(k K, v V) bool {
	if u.insert(&u.root, k, v) {
		u.count++
		return true
	}
	return false
}

// remove k from the subtree rooted at *curPtr recursively. curPtr is passed
// by reference. The two-children case detaches the in-order successor and
// copies its item into the target node, decrementing sizes along the way.
// remove doesn't call maintain, see the SBTree doc.
// Time: O(D)
func (u *SBTree[K, V]) remove(curPtr **node[K, V], k K) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	deleted := false
	if k < cur.k {
		deleted = u.remove(&cur.l, k)
	} else if k > cur.k {
		deleted = u.remove(&cur.r, k)
	} else {
		if cur.l != nil && cur.r != nil {
			s := &cur.r
			for (*s).l != nil {
				(*s).sz--
				s = &(*s).l
			}
			repl := *s
			cur.k, cur.v = repl.k, repl.v
			*s = repl.r
			repl.release()
			cur.sz--
		} else {
			repl := cur.l
			if repl == nil {
				repl = cur.r
			}
			*curPtr = repl
			cur.release()
		}
		return true
	}
	if deleted {
		cur.sz--
	}
	return deleted
}

// Del [Tree.Del]. Recursive.
// Time: O(D)
func (u *SBTree[K, V]) Del(k K) bool {
	if u.remove(&u.root, k) {
		u.count--
		return true
	}
	return false
}

// PopItem [Tree.PopItem]
// Time: O(D); Space: O(1)
func (u *SBTree[K, V]) PopItem() (Item[K, V], bool) {
	a, in := u.leafItem()
	if in {
		u.Del(a.Key)
	}
	return a, in
}

// Slice [Tree.Slice]
func (u *SBTree[K, V]) Slice(start, end *K) *Slice[K, V] {
	return &Slice[K, V]{u, start, end}
}

// Copy returns a new independent SBTree holding the same items; no nodes are
// shared with u.
// Time: O(n)
func (u *SBTree[K, V]) Copy() *SBTree[K, V] {
	return BuildSBTree(Export[K, V](u), false)
}

// Corrupt [Tree.Corrupt]. Additionally to the search order and count checks,
// verifies the recorded subtree sizes. Recursive.
// Time: O(n)
func (u *SBTree[K, V]) Corrupt() bool {
	return u.base.Corrupt() || badSize(u.root)
}

func badSize[K constraints.Ordered, V any](n *node[K, V]) bool {
	if n == nil {
		return false
	}
	if n.sz != size(n.l)+size(n.r)+1 {
		return true
	}
	return badSize(n.l) || badSize(n.r)
}
