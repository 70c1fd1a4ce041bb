package bst

// Node is a tree cell. Children are owned by the node; parent is a
// back reference used only for climbing during iteration.
type Node[T any] struct {
	value  T
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// construct initializes a freshly allocated node.
func (n *Node[T]) construct(value T, parent *Node[T]) {
	n.value = value
	n.left = nil
	n.right = nil
	n.parent = parent
}

// destroy clears the node so that it holds no references before it goes
// back to the allocator.
func (n *Node[T]) destroy() {
	var zero T
	n.value = zero
	n.left = nil
	n.right = nil
	n.parent = nil
}

func leftmost[T any](n *Node[T]) *Node[T] {
	for n != nil && n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[T any](n *Node[T]) *Node[T] {
	for n != nil && n.right != nil {
		n = n.right
	}
	return n
}
