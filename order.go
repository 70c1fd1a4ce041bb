package bst

import (
	"fmt"
	"strings"
)

// Order selects the traversal discipline an iterator follows.
// The zero value is InOrder.
type Order uint8

const (
	// InOrder visits the left subtree, the node, then the right subtree.
	InOrder Order = iota
	// PreOrder visits the node, the left subtree, then the right subtree.
	PreOrder
	// PostOrder visits the left subtree, the right subtree, then the node.
	PostOrder
)

// Orders lists every traversal order.
var Orders = [...]Order{InOrder, PreOrder, PostOrder}

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in"
	case PreOrder:
		return "pre"
	case PostOrder:
		return "post"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder accepts "in", "pre", "post" and their "-order" spellings.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.TrimSuffix(name, "order"), "-")
	for _, o := range Orders {
		if o.String() == name {
			return o, nil
		}
	}
	return InOrder, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}
