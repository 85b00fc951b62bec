package Sets

import "golang.org/x/exp/constraints"

// Set of unique ordered elements.
// Receivers that has A bool as A second return value indicates whether the
// first return value is defined; for example Take on an empty set returns
// (x E, false) and x should not be used.
type Set[E constraints.Ordered] interface {
	//Put e into the set. Returning true if e wasn't already present.
	Put(e E) bool
	//Has element e. Implementations should optimize Has for membership
	//checking instead of relying on the second return value of other
	//methods.
	Has(e E) bool
	//Remove e from the set. Returning true if e was present.
	Remove(e E) bool
	//Size of the set.
	Size() uint
	//Take removes and returns the smallest element.
	Take() (E, bool)
	//Range over all elements in ascending order, stopping early when f
	//returns false. The set must not be modified during the iteration.
	Range(f func(E) bool)
}

// ExtendedSet adds bulk operations over other sets.
type ExtendedSet[E constraints.Ordered] interface {
	Set[E]
	//PutAll elements of o, returning how many were newly added.
	PutAll(o Set[E]) uint
	//RemoveAll elements of o, returning how many were present.
	RemoveAll(o Set[E]) uint
	//Eq reports whether both sets hold exactly the same elements.
	Eq(o Set[E]) bool
	//Union adds every element of o to this set.
	Union(o Set[E])
	//Intersect keeps only the elements also present in o.
	Intersect(o Set[E])
	//Filter returns a new set with the elements satisfying f.
	Filter(f func(E) bool) ExtendedSet[E]
}
