package bst

import "errors"

var (
	// ErrAllocatorExhausted is returned when an allocator refuses to hand out
	// another node.
	ErrAllocatorExhausted = errors.New("allocator exhausted")

	// ErrUnknownOrder is returned by ParseOrder for names that do not denote a
	// traversal order.
	ErrUnknownOrder = errors.New("unknown traversal order")
)
