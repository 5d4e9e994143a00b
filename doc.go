// Package treego provides an arena-backed n-ary tree with stable,
// generation-checked node identity.
//
// Trees that gain and lose individual nodes over time are awkward to
// build out of pointers: either nodes keep each other alive long after
// deletion, or a recycled node is silently observed through an old
// reference (the ABA problem). Treego stores all nodes in one
// generation-checked slot arena and wires the topology through opaque
// handles instead. A Handle either resolves to the node it was issued
// for, or provably fails once that node is removed — it never resolves to
// an unrelated node that happens to reuse the slot.
//
// # Quick Start
//
//	tree := treego.New[int]()
//
//	root, _ := tree.InsertRoot(1)
//	child1, _ := tree.Insert(10, root)
//	child2, _ := tree.Insert(11, root)
//	child3, _ := tree.Insert(12, root)
//
//	// Fallible lookup; MustGet is the infallible variant.
//	if v, ok := tree.Get(child2); ok {
//		fmt.Println("value:", *v)
//	}
//
//	// Remove a node together with its whole subtree.
//	tree.Remove(child3)
//
//	// child3's handle is now stale: it reports absence even after the
//	// slot is reused by a later insertion.
//	newChild, _ := tree.Insert(13, root)
//	_ = tree.Contains(child3)  // false
//	_ = tree.Contains(newChild) // true
//
//	// Relocate a subtree.
//	_ = tree.AppendChild(child1, newChild)
//
//	// Traverse lazily.
//	for h := range tree.Descendants(root) {
//		fmt.Println(*tree.MustGet(h))
//	}
//
// # Node Topology
//
// Each node intrusively carries five links: parent, previous sibling,
// next sibling, first child and last child. That makes AppendChild and
// Detach O(1) and child iteration O(children), with no per-node child
// containers to allocate. Sibling order is append order; there is no
// other ordering.
//
// # Concurrency
//
// A Tree is one exclusion unit: one writer, or any number of readers
// with no concurrent writer. Operations never block and never do I/O.
package treego
