package searchtree

// swap exchanges the values x and y point to.
func swap[V any](x *V, y *V) {
	old_y := *y
	*y = *x
	*x = old_y
}

// take moves the subtree out of link, leaving an empty tree in its place.
func take[V any](link *V) V {
	var empty V
	sub := *link
	*link = empty
	return sub
}

// TakeLeft detaches the left subtree and returns it as an independent tree.
// The left link of t becomes empty. It returns false, and leaves t unchanged,
// if t or its left subtree is empty.
func (t *SearchTree[V]) TakeLeft() (*SearchTree[V], bool) {
	n := t.top()
	if n == nil || n.left.root == nil {
		return nil, false
	}
	sub := take(&n.left)
	return &sub, true
}

// TakeRight detaches the right subtree; see TakeLeft.
func (t *SearchTree[V]) TakeRight() (*SearchTree[V], bool) {
	n := t.top()
	if n == nil || n.right.root == nil {
		return nil, false
	}
	sub := take(&n.right)
	return &sub, true
}

// SwapLeft exchanges the root value with the value of the root's left child.
// The shape of the tree does not change. Since only values move, the result
// generally violates the search order; this is a building block for
// restructuring, not an ordinary update.
func (t *SearchTree[V]) SwapLeft() bool {
	n := t.top()
	if n == nil || n.left.root == nil {
		return false
	}
	swap(&n.val, &n.left.root.val)
	return true
}

// SwapRight exchanges the root value with the value of the root's right child.
func (t *SearchTree[V]) SwapRight() bool {
	n := t.top()
	if n == nil || n.right.root == nil {
		return false
	}
	swap(&n.val, &n.right.root.val)
	return true
}
