package bst

// mutatorImpl groups the structural algorithms that rewrite links.
type mutatorImpl[T any] struct {
	t *Tree[T]
}

// insert links value as a new leaf. Equal values descend to the right, so
// the tree keeps every duplicate. The node is allocated before any link is
// touched, so a failed allocation leaves the tree as it was.
func (u mutatorImpl[T]) insert(value T) (*Node[T], error) {
	n, err := u.t.alloc.Allocate()
	if err != nil {
		return nil, err
	}
	if allocateHook != nil {
		allocateHook(n)
	}

	var parent *Node[T]
	link := &u.t.root
	for cur := *link; cur != nil; cur = *link {
		parent = cur
		if u.t.less(value, cur.value) {
			link = &cur.left
		} else {
			link = &cur.right
		}
	}
	n.construct(value, parent)
	*link = n
	return n, nil
}

// remove deletes the first node equal to value met on the descent from
// *link. It returns the value that node held. link is passed by reference
// so the parent's child pointer can be rewritten in place.
func (u mutatorImpl[T]) remove(link **Node[T], value T) (T, bool) {
	cur := *link
	if cur == nil {
		var zero T
		return zero, false
	}
	if u.t.less(value, cur.value) {
		return u.remove(&cur.left, value)
	}
	if u.t.less(cur.value, value) {
		return u.remove(&cur.right, value)
	}

	removed := cur.value
	switch {
	case cur.left == nil:
		u.splice(link, cur, cur.right)
	case cur.right == nil:
		u.splice(link, cur, cur.left)
	default:
		// Promote the in-order successor's value and unlink the successor,
		// which has no left child.
		succLink := &cur.right
		for (*succLink).left != nil {
			succLink = &(*succLink).left
		}
		succ := *succLink
		cur.value = succ.value
		u.splice(succLink, succ, succ.right)
	}
	return removed, true
}

// splice replaces n, reached through link, by its only child.
func (u mutatorImpl[T]) splice(link **Node[T], n, child *Node[T]) {
	if child != nil {
		child.parent = n.parent
	}
	*link = child
	if spliceHook != nil {
		spliceHook(n, child)
	}
	u.release(n)
}

func (u mutatorImpl[T]) release(n *Node[T]) {
	n.destroy()
	u.t.alloc.Deallocate(n)
}

// destroy releases the subtree rooted at n in post-order. The subtree is
// detached from its parent first so the walk never climbs out of it.
func (u mutatorImpl[T]) destroy(n *Node[T]) {
	if n == nil {
		return
	}
	n.parent = nil
	for cur := postFirst(n); cur != nil; {
		following := postNext(cur)
		u.release(cur)
		cur = following
	}
}

// clone deep-copies the subtree rooted at src below parent, allocating from
// the mutator's tree. On failure the partial copy is released.
func (u mutatorImpl[T]) clone(src, parent *Node[T]) (*Node[T], error) {
	if src == nil {
		return nil, nil
	}
	n, err := u.t.alloc.Allocate()
	if err != nil {
		return nil, err
	}
	n.construct(src.value, parent)
	if n.left, err = u.clone(src.left, n); err != nil {
		u.destroy(n)
		return nil, err
	}
	if n.right, err = u.clone(src.right, n); err != nil {
		u.destroy(n)
		return nil, err
	}
	return n, nil
}
