package Sets

import (
	"github.com/g-m-twostay/bintrees/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered set backed by a search tree: elements are the tree's
// keys and Range yields them in ascending order. It implements Set and
// ExtendedSet. Like the backing tree it is not safe for concurrent mutation.
type TreeSet[E constraints.Ordered] struct {
	t Trees.Tree[E, struct{}]
}

// New returns an empty TreeSet backed by the unbalanced reference tree.
func New[E constraints.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E, struct{}]()}
}

// Balanced returns an empty TreeSet backed by a size-balanced tree, for
// element streams with adversarial (e.g. already sorted) order.
func Balanced[E constraints.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{Trees.MakeSBTree[E, struct{}]()}
}

// Of returns a TreeSet holding the given elements.
func Of[E constraints.Ordered](es ...E) *TreeSet[E] {
	u := New[E]()
	for _, e := range es {
		u.Put(e)
	}
	return u
}

// Put [Set.Put]
func (u *TreeSet[E]) Put(e E) bool {
	return u.t.Put(e, struct{}{})
}

// Has [Set.Has]
func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

// Remove [Set.Remove]
func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Del(e)
}

// Size [Set.Size]
func (u *TreeSet[E]) Size() uint {
	return u.t.Len()
}

// Take [Set.Take]
func (u *TreeSet[E]) Take() (E, bool) {
	a, in := Trees.PopMin(u.t)
	return a.Key, in
}

// Range [Set.Range]
func (u *TreeSet[E]) Range(f func(E) bool) {
	u.t.Each(func(e E, _ struct{}) bool {
		return f(e)
	})
}

// Min element of the set.
func (u *TreeSet[E]) Min() (E, bool) {
	return u.t.MinKey()
}

// Max element of the set.
func (u *TreeSet[E]) Max() (E, bool) {
	return u.t.MaxKey()
}

// Clear the set.
func (u *TreeSet[E]) Clear() {
	u.t.Clear()
}

// PutAll [ExtendedSet.PutAll]
func (u *TreeSet[E]) PutAll(o Set[E]) uint {
	var n uint
	o.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return n
}

// RemoveAll [ExtendedSet.RemoveAll]
func (u *TreeSet[E]) RemoveAll(o Set[E]) uint {
	var n uint
	o.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return n
}

// Eq [ExtendedSet.Eq]
func (u *TreeSet[E]) Eq(o Set[E]) bool {
	if u.Size() != o.Size() {
		return false
	}
	eq := true
	o.Range(func(e E) bool {
		if !u.Has(e) {
			eq = false
		}
		return eq
	})
	return eq
}

// Union [ExtendedSet.Union]
func (u *TreeSet[E]) Union(o Set[E]) {
	u.PutAll(o)
}

// Intersect [ExtendedSet.Intersect]. The doomed elements are collected before
// the first removal so the walk never reads a mutating structure.
func (u *TreeSet[E]) Intersect(o Set[E]) {
	gone := make([]E, 0)
	u.Range(func(e E) bool {
		if !o.Has(e) {
			gone = append(gone, e)
		}
		return true
	})
	for _, e := range gone {
		u.Remove(e)
	}
}

// Filter [ExtendedSet.Filter]
func (u *TreeSet[E]) Filter(f func(E) bool) ExtendedSet[E] {
	r := New[E]()
	u.Range(func(e E) bool {
		if f(e) {
			r.Put(e)
		}
		return true
	})
	return r
}

// Copy returns an independent TreeSet with the same elements, backed by the
// unbalanced strategy.
func (u *TreeSet[E]) Copy() *TreeSet[E] {
	r := New[E]()
	r.PutAll(u)
	return r
}

// Diff returns a new set with the elements of u absent from o.
func (u *TreeSet[E]) Diff(o *TreeSet[E]) *TreeSet[E] {
	return &TreeSet[E]{Trees.Difference(u.t, o.t)}
}

// SymDiff returns a new set with the elements in exactly one of u and o.
func (u *TreeSet[E]) SymDiff(o *TreeSet[E]) *TreeSet[E] {
	return &TreeSet[E]{Trees.SymmetricDifference(u.t, o.t)}
}

// IsSubset reports whether every element of u is in o.
func (u *TreeSet[E]) IsSubset(o *TreeSet[E]) bool {
	return Trees.IsSubset(u.t, o.t)
}

// IsSuperset reports whether every element of o is in u.
func (u *TreeSet[E]) IsSuperset(o *TreeSet[E]) bool {
	return Trees.IsSuperset(u.t, o.t)
}

// IsDisjoint reports whether u and o share no element.
func (u *TreeSet[E]) IsDisjoint(o *TreeSet[E]) bool {
	return Trees.IsDisjoint(u.t, o.t)
}
