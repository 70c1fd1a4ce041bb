package bst

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// spliceHook is invoked after a node has been unlinked from the tree and
	// its replacement child, possibly nil, has been relinked in its place.
	spliceHook func(removed, replacement any)

	// allocateHook is invoked after a node is allocated and before it is
	// linked into the tree.
	allocateHook func(node any)
)
