package Trees

import "golang.org/x/exp/constraints"

// BinTree is the unbalanced reference strategy: a plain binary search tree
// with unique keys and no rotations. Operations cost O(D) where D is the
// height; D is O(log n) on random insertion order but degenerates to n under
// sorted insertion order. That is accepted behavior, not a defect — use
// SBTree when adversarial insertion order matters.
// The tree exclusively owns its node graph. Slices and iterators over it hold
// non-owning references and must not outlive it.
type BinTree[K constraints.Ordered, V any] struct {
	base[K, V]
}

// New returns an empty BinTree.
func New[K constraints.Ordered, V any]() *BinTree[K, V] {
	return &BinTree[K, V]{}
}

// From builds a BinTree by inserting items in order, so later duplicate keys
// overwrite earlier ones. This is also the import half of the serialization
// boundary: From(Export(t)) reproduces t's items, though not necessarily its
// physical shape.
func From[K constraints.Ordered, V any](items []Item[K, V]) *BinTree[K, V] {
	u := New[K, V]()
	for _, a := range items {
		u.Put(a.Key, a.Value)
	}
	return u
}

// FromKeys builds a BinTree assigning v to every key of keys.
func FromKeys[K constraints.Ordered, V any](keys []K, v V) *BinTree[K, V] {
	u := New[K, V]()
	for _, k := range keys {
		u.Put(k, v)
	}
	return u
}

// Put [Tree.Put]
// Time: O(D); Space: O(1)
func (u *BinTree[K, V]) Put(k K, v V) bool {
	cur := &u.root
	for *cur != nil {
		if n := *cur; k < n.k {
			cur = &n.l
		} else if k == n.k {
			n.v = v
			return false
		} else {
			cur = &n.r
		}
	}
	*cur = &node[K, V]{k: k, v: v}
	u.count++
	return true
}

// Del [Tree.Del]. A node with two children isn't detached itself: the
// in-order successor (leftmost of the right subtree) is detached from its own
// parent, its key and value are copied into the target node, and the
// successor node is released. The successor's key is larger than everything
// left of the target and smaller than everything that remains to its right,
// so the search invariant survives the swap.
// Time: O(D); Space: O(1)
func (u *BinTree[K, V]) Del(k K) bool {
	cur := &u.root
	for *cur != nil {
		if n := *cur; k < n.k {
			cur = &n.l
		} else if k > n.k {
			cur = &n.r
		} else {
			if n.l != nil && n.r != nil {
				s := &n.r
				for (*s).l != nil {
					s = &(*s).l
				}
				repl := *s
				*s = repl.r
				n.k, n.v = repl.k, repl.v
				repl.release()
			} else {
				repl := n.l
				if repl == nil {
					repl = n.r
				}
				*cur = repl
				n.release()
			}
			u.count--
			return true
		}
	}
	return false
}

// PopItem [Tree.PopItem]
// Time: O(D); Space: O(1)
func (u *BinTree[K, V]) PopItem() (Item[K, V], bool) {
	a, in := u.leafItem()
	if in {
		u.Del(a.Key)
	}
	return a, in
}

// Slice [Tree.Slice]
func (u *BinTree[K, V]) Slice(start, end *K) *Slice[K, V] {
	return &Slice[K, V]{u, start, end}
}

// Copy returns a new independent BinTree holding the same items; no nodes are
// shared with u. Items are re-inserted in pre-order, which reproduces u's
// physical shape (an ascending walk would rebuild a degenerate chain).
// Recursive.
// Time: O(n*D)
func (u *BinTree[K, V]) Copy() *BinTree[K, V] {
	t := New[K, V]()
	var cp func(*node[K, V])
	cp = func(n *node[K, V]) {
		if n != nil {
			t.Put(n.k, n.v)
			cp(n.l)
			cp(n.r)
		}
	}
	cp(u.root)
	return t
}
