package Trees

import "golang.org/x/exp/constraints"

// Item is A single key/value pair of A tree. It is the unit of iteration,
// bulk operations, and the serialization boundary (Export/From).
type Item[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// Tree is the contract every balancing strategy satisfies: an ordered
// associative container over unique keys with in-place value overwrite.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, calling MinItem on an
// empty tree returns (x Item, false); the value of x should not be used.
// Absent keys and empty containers are always reported through that bool,
// never through A substituted default value; the only defaulting lookup is
// GetOr, where the caller supplies the default itself.
// Trees are not safe for concurrent mutation; callers sharing A tree across
// goroutines must synchronize externally.
// If an implementation didn't specify anything special, the implemented
// receivers follow the behaviors defined here. Methods implemented
// recursively should be noted, otherwise functions are implemented
// iteratively.
type Tree[K constraints.Ordered, V any] interface {
	//Put k with value v. If k is already present, its value is overwritten
	//in place and no node is created. Returns true iff A new key was added.
	Put(k K, v V) bool
	//Del k from the tree. Returns false if k is absent.
	Del(k K) bool
	//Get the value of k.
	Get(k K) (V, bool)
	//GetOr the value of k, or d if k is absent.
	GetOr(k K, d V) V
	//Has reports whether k is present. Use Has instead of the second return
	//value of Get when only membership matters, as implementations should
	//optimize it for that purpose.
	Has(k K) bool
	//Len is the number of items. It always equals the number of reachable
	//nodes.
	Len() uint
	IsEmpty() bool
	//Clear releases every node, children before parent, and resets the tree
	//to empty.
	Clear()
	//MinItem is the item with the smallest key.
	MinItem() (Item[K, V], bool)
	//MaxItem is the item with the largest key.
	MaxItem() (Item[K, V], bool)
	MinKey() (K, bool)
	MaxKey() (K, bool)
	//PopItem removes and returns an arbitrary item cheaply: the leaf reached
	//by descending left, then right, from the root.
	PopItem() (Item[K, V], bool)
	//Successor is the item with the smallest key greater than k. k itself
	//doesn't have to be present.
	Successor(k K) (Item[K, V], bool)
	//Predecessor is the item with the largest key less than k. k itself
	//doesn't have to be present.
	Predecessor(k K) (Item[K, V], bool)
	//Floor is the item with the largest key less than or equal to k.
	Floor(k K) (Item[K, V], bool)
	//Ceiling is the item with the smallest key greater than or equal to k.
	Ceiling(k K) (Item[K, V], bool)
	SuccessorKey(k K) (K, bool)
	PredecessorKey(k K) (K, bool)
	FloorKey(k K) (K, bool)
	CeilingKey(k K) (K, bool)
	//Items returns an iterator over the items whose keys lie in the
	//half-open range [start, end), in ascending key order, or descending if
	//reverse is set. A nil bound means unbounded on that side. The iterator
	//is lazy, finite, and single-pass. The tree must not be modified while
	//the iterator is in use, otherwise the results are undefined. There will
	//be no panic if such cases happen so design the algorithm with this in
	//mind.
	Items(start, end *K, reverse bool) *Iterator[K, V]
	//Keys returns A closure function f acting like an iterator over all
	//keys. Calling f is like calling "Next()" of iterators: k, valid=f().
	//valid can't turn true after it first became false. The same
	//no-modification contract as Items applies.
	Keys(reverse bool) func() (K, bool)
	//Values is the value counterpart of Keys.
	Values(reverse bool) func() (V, bool)
	//Each visits all items in ascending key order and calls f for each,
	//stopping early when f returns false.
	Each(f func(K, V) bool)
	//Slice is A live, non-owning view of the items whose keys lie in
	//[start, end). A nil bound means unbounded on that side.
	Slice(start, end *K) *Slice[K, V]
	//Corrupt returns whether the tree has corrupt structures: keys out of
	//search order, or A recorded count that disagrees with the reachable
	//nodes. This is to be distinguished from whether the tree is balanced.
	Corrupt() bool
}
