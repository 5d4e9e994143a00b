package treego

import "iter"

// The traversal family. Every method returns a lazy, single-pass,
// restartable sequence of handles; nothing is buffered up front. A stale
// starting handle yields an empty sequence. If the topology changes while
// a sequence is being consumed, iteration terminates cleanly instead of
// erroring or looping.

// walk yields start and then follows next from node to node until the
// link runs out. The shared shape behind children, siblings and ancestors.
func (t *Tree[V]) walk(start Handle, next func(*node[V]) Handle) iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for h := start; !h.IsNil(); {
			n, ok := t.nodes.Get(h)
			if !ok {
				return
			}
			successor := next(n)
			if !yield(h) {
				return
			}
			h = successor
		}
	}
}

// Children returns the children of node in append order.
func (t *Tree[V]) Children(h Handle) iter.Seq[Handle] {
	first := NilHandle
	if n, ok := t.nodes.Get(h); ok {
		first = n.firstChild
	}
	return t.walk(first, func(n *node[V]) Handle { return n.nextSibling })
}

// PrecedingSiblings returns node and the siblings before it, nearest
// first. The starting node is yielded first; callers wanting strictly
// preceding siblings discard the first item.
func (t *Tree[V]) PrecedingSiblings(h Handle) iter.Seq[Handle] {
	return t.walk(h, func(n *node[V]) Handle { return n.prevSibling })
}

// FollowingSiblings returns node and the siblings after it.
// The starting node is yielded first; callers wanting strictly following
// siblings discard the first item.
func (t *Tree[V]) FollowingSiblings(h Handle) iter.Seq[Handle] {
	return t.walk(h, func(n *node[V]) Handle { return n.nextSibling })
}

// Ancestors returns node and its ancestors up to the top of its tree.
// The starting node is yielded first; callers wanting strict ancestors
// discard the first item.
func (t *Tree[V]) Ancestors(h Handle) iter.Seq[Handle] {
	return t.walk(h, func(n *node[V]) Handle { return n.parent })
}

// Pre-order traversal runs on an explicit edge state machine instead of
// recursion, so walking a tree never consumes stack proportional to its
// depth. Each node is passed twice, once on the way down (start edge) and
// once on the way up (end edge); only start edges surface as results,
// end edges drive backtracking and depth accounting.

type edgeKind uint8

const (
	edgeStart edgeKind = iota
	edgeEnd
)

type edge struct {
	kind  edgeKind
	node  Handle
	depth int
}

// step advances the edge walk rooted at root by one transition. It
// reports false when the walk is finished — including when a link needed
// for backtracking has vanished because the tree was mutated mid-walk,
// which maps to end-of-iteration rather than an error.
func (t *Tree[V]) step(root Handle, e edge) (edge, bool) {
	n, ok := t.nodes.Get(e.node)
	if !ok {
		return edge{}, false
	}

	switch e.kind {
	case edgeStart:
		if !n.firstChild.IsNil() {
			return edge{kind: edgeStart, node: n.firstChild, depth: e.depth + 1}, true
		}
		return edge{kind: edgeEnd, node: e.node, depth: e.depth}, true

	default: // edgeEnd
		if e.node == root {
			return edge{}, false
		}
		if !n.nextSibling.IsNil() {
			return edge{kind: edgeStart, node: n.nextSibling, depth: e.depth}, true
		}
		if !n.parent.IsNil() {
			return edge{kind: edgeEnd, node: n.parent, depth: e.depth - 1}, true
		}
		return edge{}, false
	}
}

// Descendants returns node and all its descendants in pre-order:
// a node before its descendants, descendants before later siblings. The
// starting node is the first result; callers wanting strict descendants
// discard the first item.
func (t *Tree[V]) Descendants(node Handle) iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		if !t.nodes.Contains(node) {
			return
		}
		e, ok := edge{kind: edgeStart, node: node}, true
		for ok {
			if e.kind == edgeStart && !yield(e.node) {
				return
			}
			e, ok = t.step(node, e)
		}
	}
}

// DescendantsWithDepth is Descendants paired with each node's depth below
// the starting node; the starting node is yielded first, at depth 0.
func (t *Tree[V]) DescendantsWithDepth(node Handle) iter.Seq2[Handle, int] {
	return func(yield func(Handle, int) bool) {
		if !t.nodes.Contains(node) {
			return
		}
		e, ok := edge{kind: edgeStart, node: node}, true
		for ok {
			if e.kind == edgeStart && !yield(e.node, e.depth) {
				return
			}
			e, ok = t.step(node, e)
		}
	}
}
