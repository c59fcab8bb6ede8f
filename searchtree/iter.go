package searchtree

import (
	"iter"

	"github.com/goose-lang/primitive"
	"golang.org/x/exp/constraints"
)

// Every iterator is single-use: Next returns values until it reports false,
// and after that it stays exhausted. Call the factory on the tree again to
// start over.

func seq[V any](next func() (V, bool)) iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// InOrderIter yields values in ascending order.
type InOrderIter[V constraints.Ordered] struct {
	stack *stack[*node[V]]
}

// InOrder starts an in-order (left, root, right) traversal.
func (t *SearchTree[V]) InOrder() *InOrderIter[V] {
	it := &InOrderIter[V]{stack: newStack[*node[V]]()}
	it.pushLeftmost(t.top())
	return it
}

func (it *InOrderIter[V]) pushLeftmost(n *node[V]) {
	for n != nil {
		it.stack.Push(n)
		n = n.left.root
	}
}

func (it *InOrderIter[V]) Next() (V, bool) {
	n, ok := it.stack.Pop()
	if !ok {
		var zero V
		return zero, false
	}
	it.pushLeftmost(n.right.root)
	return n.val, true
}

// Seq adapts the remaining traversal for use with range.
func (it *InOrderIter[V]) Seq() iter.Seq[V] {
	return seq(it.Next)
}

// All returns the values in ascending order. Unlike the iterators, the
// returned sequence can be ranged over more than once; each range starts a
// new traversal.
func (t *SearchTree[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		t.InOrder().Seq()(yield)
	}
}

// PreOrderIter yields each node before its subtrees.
type PreOrderIter[V constraints.Ordered] struct {
	stack *stack[*node[V]]
}

// PreOrder starts a pre-order (root, left, right) traversal.
func (t *SearchTree[V]) PreOrder() *PreOrderIter[V] {
	it := &PreOrderIter[V]{stack: newStack[*node[V]]()}
	if n := t.top(); n != nil {
		it.stack.Push(n)
	}
	return it
}

func (it *PreOrderIter[V]) Next() (V, bool) {
	n, ok := it.stack.Pop()
	if !ok {
		var zero V
		return zero, false
	}
	// right goes in first so that left comes out first
	if n.right.root != nil {
		it.stack.Push(n.right.root)
	}
	if n.left.root != nil {
		it.stack.Push(n.left.root)
	}
	return n.val, true
}

func (it *PreOrderIter[V]) Seq() iter.Seq[V] {
	return seq(it.Next)
}

type postOrderEntry[V constraints.Ordered] struct {
	n *node[V]
	// children of n have already been scheduled
	visited bool
}

// PostOrderIter yields each node after both of its subtrees.
type PostOrderIter[V constraints.Ordered] struct {
	stack *stack[postOrderEntry[V]]
}

// PostOrder starts a post-order (left, right, root) traversal.
func (t *SearchTree[V]) PostOrder() *PostOrderIter[V] {
	it := &PostOrderIter[V]{stack: newStack[postOrderEntry[V]]()}
	if n := t.top(); n != nil {
		it.stack.Push(postOrderEntry[V]{n: n})
	}
	return it
}

func (it *PostOrderIter[V]) Next() (V, bool) {
	for {
		e, ok := it.stack.Pop()
		if !ok {
			var zero V
			return zero, false
		}
		if e.visited {
			return e.n.val, true
		}
		// first visit: put the node back underneath its children
		it.stack.Push(postOrderEntry[V]{n: e.n, visited: true})
		if e.n.right.root != nil {
			it.stack.Push(postOrderEntry[V]{n: e.n.right.root})
		}
		if e.n.left.root != nil {
			it.stack.Push(postOrderEntry[V]{n: e.n.left.root})
		}
	}
}

func (it *PostOrderIter[V]) Seq() iter.Seq[V] {
	return seq(it.Next)
}

// LevelOrderIter yields values breadth-first, top level first and left to
// right within a level.
type LevelOrderIter[V constraints.Ordered] struct {
	queue queue[*node[V]]
}

func (t *SearchTree[V]) LevelOrder() *LevelOrderIter[V] {
	it := &LevelOrderIter[V]{queue: newQueue[*node[V]]()}
	if n := t.top(); n != nil {
		it.queue.Push(n)
	}
	return it
}

func (it *LevelOrderIter[V]) Next() (V, bool) {
	n, ok := it.queue.Pop()
	if !ok {
		var zero V
		return zero, false
	}
	if n.left.root != nil {
		it.queue.Push(n.left.root)
	}
	if n.right.root != nil {
		it.queue.Push(n.right.root)
	}
	return n.val, true
}

func (it *LevelOrderIter[V]) Seq() iter.Seq[V] {
	return seq(it.Next)
}

// InOrderMutIter is an in-order traversal that yields pointers to the stored
// values.
type InOrderMutIter[V constraints.Ordered] struct {
	stack *stack[*node[V]]
}

// InOrderMut starts an in-order traversal that allows values to be updated in
// place. The caller must keep the values in strictly ascending order (for
// example, by adding the same constant to all of them); otherwise later
// lookups and inserts give wrong answers.
func (t *SearchTree[V]) InOrderMut() *InOrderMutIter[V] {
	it := &InOrderMutIter[V]{stack: newStack[*node[V]]()}
	it.pushLeftmost(t.top())
	return it
}

func (it *InOrderMutIter[V]) pushLeftmost(n *node[V]) {
	for n != nil {
		it.stack.Push(n)
		n = n.left.root
	}
}

func (it *InOrderMutIter[V]) Next() (*V, bool) {
	n, ok := it.stack.Pop()
	if !ok {
		return nil, false
	}
	it.pushLeftmost(n.right.root)
	return &n.val, true
}

func (it *InOrderMutIter[V]) Seq() iter.Seq[*V] {
	return seq(it.Next)
}

// IntoIter is a consuming in-order traversal. It owns the nodes it has not
// yet emitted; each emitted node is taken apart and dropped.
type IntoIter[V constraints.Ordered] struct {
	// detached subtrees whose left link has already been taken
	stack *stack[*SearchTree[V]]
}

// IntoIter moves every node of t into a new iterator and leaves t empty. The
// values come out in ascending order. Stopping early simply drops whatever
// the iterator has not emitted.
func (t *SearchTree[V]) IntoIter() *IntoIter[V] {
	it := &IntoIter[V]{stack: newStack[*SearchTree[V]]()}
	if t.IsEmpty() {
		return it
	}
	owned := take(t)
	it.pushLeftmost(&owned)
	return it
}

func (it *IntoIter[V]) pushLeftmost(t *SearchTree[V]) {
	var ok = true
	for ok {
		it.stack.Push(t)
		t, ok = t.TakeLeft()
	}
}

func (it *IntoIter[V]) Next() (V, bool) {
	t, ok := it.stack.Pop()
	if !ok {
		var zero V
		return zero, false
	}
	n := t.root
	primitive.Assert(n != nil && n.left.root == nil)
	if right, ok := t.TakeRight(); ok {
		it.pushLeftmost(right)
	}
	t.root = nil
	return n.val, true
}

func (it *IntoIter[V]) Seq() iter.Seq[V] {
	return seq(it.Next)
}
