package bst

// The step functions below walk the parent-linked node graph without any
// auxiliary stack. A nil result means the end position of the order.

// first returns the node an order visits first in the tree rooted at root.
func first[T any](order Order, root *Node[T]) *Node[T] {
	switch order {
	case PreOrder:
		return root
	case PostOrder:
		return postFirst(root)
	default:
		return leftmost(root)
	}
}

// last returns the node an order visits last in the tree rooted at root.
func last[T any](order Order, root *Node[T]) *Node[T] {
	switch order {
	case PreOrder:
		return preLast(root)
	case PostOrder:
		return root
	default:
		return rightmost(root)
	}
}

func next[T any](order Order, n *Node[T]) *Node[T] {
	switch order {
	case PreOrder:
		return preNext(n)
	case PostOrder:
		return postNext(n)
	default:
		return inNext(n)
	}
}

func prev[T any](order Order, n *Node[T]) *Node[T] {
	switch order {
	case PreOrder:
		return prePrev(n)
	case PostOrder:
		return postPrev(n)
	default:
		return inPrev(n)
	}
}

func inNext[T any](n *Node[T]) *Node[T] {
	if n.right != nil {
		return leftmost(n.right)
	}
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	return n.parent
}

func inPrev[T any](n *Node[T]) *Node[T] {
	if n.left != nil {
		return rightmost(n.left)
	}
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}
	return n.parent
}

// preLast descends preferring the right child, then the left one.
func preLast[T any](n *Node[T]) *Node[T] {
	for n != nil {
		switch {
		case n.right != nil:
			n = n.right
		case n.left != nil:
			n = n.left
		default:
			return n
		}
	}
	return nil
}

func preNext[T any](n *Node[T]) *Node[T] {
	if n.left != nil {
		return n.left
	}
	if n.right != nil {
		return n.right
	}
	// Climb until an ancestor entered from its left side still has a
	// right subtree to visit.
	for p := n.parent; p != nil; n, p = p, p.parent {
		if n == p.left && p.right != nil {
			return p.right
		}
	}
	return nil
}

func prePrev[T any](n *Node[T]) *Node[T] {
	p := n.parent
	if p == nil {
		return nil
	}
	if n == p.right && p.left != nil {
		return preLast(p.left)
	}
	return p
}

// postFirst descends preferring the left child, then the right one.
func postFirst[T any](n *Node[T]) *Node[T] {
	for n != nil {
		switch {
		case n.left != nil:
			n = n.left
		case n.right != nil:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

func postNext[T any](n *Node[T]) *Node[T] {
	p := n.parent
	if p == nil {
		return nil
	}
	if n == p.left && p.right != nil {
		return postFirst(p.right)
	}
	return p
}

func postPrev[T any](n *Node[T]) *Node[T] {
	if n.right != nil {
		return n.right
	}
	if n.left != nil {
		return n.left
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if n == p.right && p.left != nil {
			return p.left
		}
	}
	return nil
}
