package Trees

import "golang.org/x/exp/constraints"

// A node in a binary search tree.
// The zero value is meaningless; nodes only come from insertion. Every node
// is owned by exactly one parent (or the tree root slot) and owns its two
// child subtrees. There are no parent pointers.
type node[K constraints.Ordered, V any] struct {
	k    K
	v    V
	l, r *node[K, V]
	sz   uint // subtree size, maintained by SBTree only; BinTree leaves it stale.
}

// release zeroes this node's fields so a removed node doesn't keep payloads
// or subtrees alive through dangling references.
func (n *node[K, V]) release() {
	n.l, n.r = nil, nil
	n.k = *new(K)
	n.v = *new(V)
}

// releaseAll releases the whole subtree rooted at n, children before parent.
// Recursive.
func releaseAll[K constraints.Ordered, V any](n *node[K, V]) {
	if n != nil {
		releaseAll(n.l)
		releaseAll(n.r)
		n.release()
	}
}

// size of the subtree rooted at n, 0 for the absent child. Only meaningful
// under SBTree.
func size[K constraints.Ordered, V any](n *node[K, V]) uint {
	if n == nil {
		return 0
	}
	return n.sz
}

// rotateLeft performs a left rotation on the node *n. n is passed by
// reference in order to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft[K constraints.Ordered, V any](n **node[K, V]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	rc.sz = r.sz
	r.sz = size(r.l) + size(r.r) + 1
	*n = rc
}

// rotateRight performs a right rotation on the node *n. n is passed by
// reference in order to modify its content.
// Time: O(1); Space: O(1)
func rotateRight[K constraints.Ordered, V any](n **node[K, V]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	lc.sz = r.sz
	r.sz = size(r.l) + size(r.r) + 1
	*n = lc
}
