// Package searchtree implements an unbalanced binary search tree over ordered
// values, with explicit-stack traversals that can be pulled one value at a
// time.
//
// A SearchTree is either empty (nil root) or a node holding a value and two
// subtrees, each of which is itself a SearchTree. Every subtree exclusively
// owns its descendants and there are no parent pointers, so detaching a
// subtree is a single reassignment.
//
// The tree is not safe for concurrent use, and must not be modified while an
// iterator over it is still being pulled.
package searchtree

import (
	"github.com/goose-lang/std"
	"golang.org/x/exp/constraints"
)

// SearchTree is a binary search tree holding distinct values. The zero value
// is an empty tree ready to use.
type SearchTree[V constraints.Ordered] struct {
	root *node[V]
}

type node[V constraints.Ordered] struct {
	val   V
	left  SearchTree[V]
	right SearchTree[V]
}

// New returns an empty tree.
func New[V constraints.Ordered]() *SearchTree[V] {
	return &SearchTree[V]{}
}

func singletonNode[V constraints.Ordered](v V) *node[V] {
	return &node[V]{val: v}
}

// top returns the root node, treating a nil *SearchTree as empty.
func (t *SearchTree[V]) top() *node[V] {
	if t == nil {
		return nil
	}
	return t.root
}

func (t *SearchTree[V]) IsEmpty() bool {
	return t.top() == nil
}

// Insert adds v to the tree. Inserting a value that is already present does
// nothing. New values always become leaves; existing nodes never move.
func (t *SearchTree[V]) Insert(v V) {
	n := t.root
	if n == nil {
		t.root = singletonNode(v)
		return
	}
	// if n.val == v then v is already present
	if v == n.val {
		return
	}
	if v < n.val {
		n.left.Insert(v)
	} else {
		n.right.Insert(v)
	}
}

// Peek returns the value at the root.
func (t *SearchTree[V]) Peek() (V, bool) {
	n := t.top()
	if n == nil {
		var zero V
		return zero, false
	}
	return n.val, true
}

func (t *SearchTree[V]) Contains(v V) bool {
	n := t.top()
	if n == nil {
		return false
	}
	if v == n.val {
		return true
	}
	if v < n.val {
		return n.left.Contains(v)
	}
	return n.right.Contains(v)
}

// Find returns the subtree rooted at v. The result is the link inside t that
// holds v (t itself if v is at the root), not a copy: TakeLeft, SwapRight and
// the other structural operations called on it modify t.
func (t *SearchTree[V]) Find(v V) (*SearchTree[V], bool) {
	var cur = t
	for {
		n := cur.top()
		if n == nil {
			return nil, false
		}
		if v == n.val {
			return cur, true
		}
		if v < n.val {
			cur = &n.left
		} else {
			cur = &n.right
		}
	}
}

// Min returns the smallest value in the tree.
func (t *SearchTree[V]) Min() (V, bool) {
	n := t.top()
	if n == nil {
		var zero V
		return zero, false
	}
	for n.left.root != nil {
		n = n.left.root
	}
	return n.val, true
}

// Max returns the largest value in the tree.
func (t *SearchTree[V]) Max() (V, bool) {
	n := t.top()
	if n == nil {
		var zero V
		return zero, false
	}
	for n.right.root != nil {
		n = n.right.root
	}
	return n.val, true
}

// Size counts the nodes by running an in-order traversal to completion, so it
// takes time linear in the size of the tree.
func (t *SearchTree[V]) Size() uint64 {
	var count = uint64(0)
	it := t.InOrder()
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count = std.SumAssumeNoOverflow(count, 1)
	}
	return count
}

// MinDepth returns the number of nodes on the shortest path from the root to
// a leaf. An empty tree has depth 0 and a single node has depth 1.
func (t *SearchTree[V]) MinDepth() uint64 {
	n := t.top()
	if n == nil {
		return 0
	}
	l := n.left.MinDepth()
	r := n.right.MinDepth()
	// a missing child does not end a path; only leaves do
	if l == 0 {
		return r + 1
	}
	if r == 0 {
		return l + 1
	}
	return min(l, r) + 1
}

// MaxDepth returns the number of nodes on the longest path from the root to a
// leaf, i.e., the height of the tree.
func (t *SearchTree[V]) MaxDepth() uint64 {
	n := t.top()
	if n == nil {
		return 0
	}
	return max(n.left.MaxDepth(), n.right.MaxDepth()) + 1
}
