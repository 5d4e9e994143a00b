package treego

import (
	"fmt"
	"time"

	"github.com/hupe1980/treego/arena"
)

// Handle identifies a node: an opaque (slot, generation) pair issued by
// the node arena. Handles are compared by value. A handle stays meaningful
// until its node is removed; after that it is provably stale and every
// access through it reports absence instead of resolving to whatever node
// reused the slot.
type Handle = arena.Index

// NilHandle is the zero Handle. It never identifies a node and doubles as
// the "no parent" argument to Insert and TryInsert.
var NilHandle Handle

// DefaultCapacity is the node count a zero-configured tree starts with.
const DefaultCapacity = arena.DefaultCapacity

// node carries the intrusive topology of one tree node alongside its
// payload. The five links are the doubly-linked parent/first-child/
// last-child/prev-sibling/next-sibling relation; NilHandle means "none".
type node[V any] struct {
	parent      Handle
	prevSibling Handle
	nextSibling Handle
	firstChild  Handle
	lastChild   Handle
	data        V
}

// Tree is an arena-backed n-ary tree with stable node identity.
//
// Nodes are addressed by Handle, never by pointer, so callers can hold
// on to nodes across arbitrary mutations: a handle either resolves to the
// node it was issued for or reports absence once that node is removed.
// Removal cascades to all descendants; AppendChild relocates whole
// subtrees.
//
// The tree is one exclusion unit: a single writer, or any number of
// readers with no concurrent writer. No operation blocks or suspends.
type Tree[V any] struct {
	nodes   *arena.Arena[node[V]]
	root    Handle
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty tree.
func New[V any](opts ...Option) *Tree[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Tree[V]{
		nodes:   arena.New[node[V]](arena.WithCapacity(o.capacity)),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// Len returns the number of live nodes.
func (t *Tree[V]) Len() int {
	return t.nodes.Len()
}

// Capacity returns the number of nodes the tree can hold without further
// allocation, including those it currently contains.
func (t *Tree[V]) Capacity() int {
	return t.nodes.Capacity()
}

// Reserve allocates space for n additional nodes.
func (t *Tree[V]) Reserve(n int) {
	t.nodes.Reserve(n)
}

// Clear drops every node but keeps the allocated storage. All issued
// handles become stale and the designated root is cleared.
func (t *Tree[V]) Clear() {
	t.nodes.Clear()
	t.root = NilHandle
}

// Insert adds a node carrying data, growing the arena if necessary, and
// returns its handle. If parent is not NilHandle the node is appended as
// its last child; a stale parent fails with ErrStaleHandle and leaves the
// tree unchanged. With NilHandle the node starts detached.
func (t *Tree[V]) Insert(data V, parent Handle) (Handle, error) {
	start := time.Now()

	h, err := t.insert(data, parent, false)

	t.metrics.RecordInsert(time.Since(start), err)
	t.logger.LogInsert(h, parent, err)

	return h, err
}

// TryInsert is Insert using existing capacity only. It fails with ErrFull
// when the arena is full; the caller keeps data and may Reserve and
// retry. This is the only recoverable failure in the API.
func (t *Tree[V]) TryInsert(data V, parent Handle) (Handle, error) {
	start := time.Now()

	h, err := t.insert(data, parent, true)

	t.metrics.RecordInsert(time.Since(start), err)
	t.logger.LogInsert(h, parent, err)

	return h, err
}

func (t *Tree[V]) insert(data V, parent Handle, existingCapacityOnly bool) (Handle, error) {
	// Validate up front: insertion must be all-or-nothing, so a dead
	// parent may not leak a detached node into the arena.
	if !parent.IsNil() && !t.nodes.Contains(parent) {
		return NilHandle, &ErrStaleHandle{Handle: parent}
	}

	var h Handle
	if existingCapacityOnly {
		var err error
		h, err = t.nodes.TryInsert(node[V]{data: data})
		if err != nil {
			return NilHandle, err
		}
	} else {
		h = t.nodes.Insert(node[V]{data: data})
	}

	if !parent.IsNil() {
		// Cannot fail: both endpoints were just proven live and a fresh
		// node is never its own parent.
		if err := t.appendChild(parent, h); err != nil {
			t.nodes.Remove(h)
			return NilHandle, err
		}
	}

	return h, nil
}

// InsertRoot adds a node carrying data and designates it as the tree's
// root. It fails with ErrRootExists while a root is designated; that is a
// caller-logic error, not a retryable condition.
func (t *Tree[V]) InsertRoot(data V) (Handle, error) {
	start := time.Now()

	h, err := t.insertRoot(data, false)

	t.metrics.RecordInsert(time.Since(start), err)
	t.logger.LogInsert(h, NilHandle, err)

	return h, err
}

// TryInsertRoot is InsertRoot using existing capacity only, failing with
// ErrFull when the arena is full.
func (t *Tree[V]) TryInsertRoot(data V) (Handle, error) {
	start := time.Now()

	h, err := t.insertRoot(data, true)

	t.metrics.RecordInsert(time.Since(start), err)
	t.logger.LogInsert(h, NilHandle, err)

	return h, err
}

func (t *Tree[V]) insertRoot(data V, existingCapacityOnly bool) (Handle, error) {
	if !t.root.IsNil() {
		return NilHandle, ErrRootExists
	}

	var h Handle
	if existingCapacityOnly {
		var err error
		h, err = t.nodes.TryInsert(node[V]{data: data})
		if err != nil {
			return NilHandle, err
		}
	} else {
		h = t.nodes.Insert(node[V]{data: data})
	}

	t.root = h

	return h, nil
}

// Root returns the designated root, if one exists.
func (t *Tree[V]) Root() (Handle, bool) {
	return t.root, !t.root.IsNil()
}

// AppendChild makes child the last child of parent. The child's own
// subtree travels with it, so this doubles as subtree relocation when
// child is already attached elsewhere.
//
// Appending a node to itself fails with ErrSelfAppend, appending it to
// one of its own descendants fails with ErrCycle, and a dead endpoint
// fails with ErrStaleHandle; in every failure case the tree is left
// unchanged, so a node can never become its own ancestor. Relocating the
// designated root clears the root designation.
func (t *Tree[V]) AppendChild(parent, child Handle) error {
	start := time.Now()

	err := t.appendChild(parent, child)

	t.metrics.RecordMove(time.Since(start), err)
	t.logger.LogMove(parent, child, err)

	return err
}

func (t *Tree[V]) appendChild(parent, child Handle) error {
	if parent == child {
		return ErrSelfAppend
	}
	if !t.nodes.Contains(parent) {
		return &ErrStaleHandle{Handle: parent}
	}
	if !t.nodes.Contains(child) {
		return &ErrStaleHandle{Handle: child}
	}

	// Detaching first severs child from above, but cannot help when the
	// destination sits inside child's own subtree; that link would close
	// a cycle, so refuse it outright.
	for a := range t.Ancestors(parent) {
		if a == child {
			return ErrCycle
		}
	}

	t.detach(child)

	p, c, ok := t.nodes.Get2(parent, child)
	if !ok {
		// Distinct live handles cannot alias; detach does not free.
		return &ErrStaleHandle{Handle: child}
	}

	c.parent = parent
	last := p.lastChild
	p.lastChild = child
	if last.IsNil() {
		p.firstChild = child
	} else {
		c.prevSibling = last
		ln, _ := t.nodes.Get(last)
		ln.nextSibling = child
	}

	// A node that was the designated root is now a child; the tree no
	// longer has a designated root.
	if t.root == child {
		t.root = NilHandle
	}

	return nil
}

// Detach removes node from its parent and sibling list without deleting
// it or its subtree; first child and last child links are untouched, so
// the subtree travels with the node. Detaching an already detached node
// is a no-op. A stale handle fails with ErrStaleHandle.
func (t *Tree[V]) Detach(node Handle) error {
	if !t.nodes.Contains(node) {
		return &ErrStaleHandle{Handle: node}
	}

	t.detach(node)

	return nil
}

func (t *Tree[V]) detach(h Handle) {
	n, ok := t.nodes.Get(h)
	if !ok {
		return
	}

	parent, prev, next := n.parent, n.prevSibling, n.nextSibling
	n.parent, n.prevSibling, n.nextSibling = NilHandle, NilHandle, NilHandle

	if !next.IsNil() {
		nn, _ := t.nodes.Get(next)
		nn.prevSibling = prev
	} else if !parent.IsNil() {
		pn, _ := t.nodes.Get(parent)
		pn.lastChild = prev
	}

	if !prev.IsNil() {
		pv, _ := t.nodes.Get(prev)
		pv.nextSibling = next
	} else if !parent.IsNil() {
		pn, _ := t.nodes.Get(parent)
		pn.firstChild = next
	}
}

// Remove deletes node and its entire subtree, returning the removed
// node's payload. It reports false for a stale handle and leaves the tree
// unchanged. Every handle into the removed subtree becomes stale.
func (t *Tree[V]) Remove(node Handle) (V, bool) {
	start := time.Now()

	var zero V
	if !t.nodes.Contains(node) {
		t.logger.LogRemove(node, 0, false)
		return zero, false
	}

	// Collect strict descendants before mutating anything: the walk
	// relies on the very links the removal tears down.
	var descendants []Handle
	for d := range t.Descendants(node) {
		if d != node {
			descendants = append(descendants, d)
		}
	}

	n, _ := t.nodes.Remove(node)

	// Re-link the former neighbors with the detach rule, applied to the
	// node's last-known links.
	if !n.nextSibling.IsNil() {
		if nn, ok := t.nodes.Get(n.nextSibling); ok {
			nn.prevSibling = n.prevSibling
		}
	} else if !n.parent.IsNil() {
		if pn, ok := t.nodes.Get(n.parent); ok {
			pn.lastChild = n.prevSibling
		}
	}
	if !n.prevSibling.IsNil() {
		if pv, ok := t.nodes.Get(n.prevSibling); ok {
			pv.nextSibling = n.nextSibling
		}
	} else if !n.parent.IsNil() {
		if pn, ok := t.nodes.Get(n.parent); ok {
			pn.firstChild = n.nextSibling
		}
	}

	// The subtree is discarded as a unit; no inter-relinking needed.
	for _, d := range descendants {
		t.nodes.Remove(d)
	}

	if t.root == node {
		t.root = NilHandle
	}

	removed := 1 + len(descendants)
	t.metrics.RecordRemove(removed, time.Since(start))
	t.logger.LogRemove(node, removed, true)

	return n.data, true
}

// Get returns a pointer to the payload of node, or false for a stale
// handle. The pointer may be used to mutate the payload in place; it must
// not be retained across Remove or Clear.
func (t *Tree[V]) Get(node Handle) (*V, bool) {
	n, ok := t.nodes.Get(node)
	if !ok {
		return nil, false
	}

	return &n.data, true
}

// MustGet is the infallible variant of Get for call sites that already
// proved liveness. It panics on a stale handle.
func (t *Tree[V]) MustGet(node Handle) *V {
	v, ok := t.Get(node)
	if !ok {
		panic(fmt.Sprintf("treego: MustGet on stale handle %s", node))
	}

	return v
}

// Contains reports whether node resolves to a live node of this tree.
func (t *Tree[V]) Contains(node Handle) bool {
	return t.nodes.Contains(node)
}

// Parent returns the parent of node. It reports false when node is stale
// or has no parent.
func (t *Tree[V]) Parent(node Handle) (Handle, bool) {
	n, ok := t.nodes.Get(node)
	if !ok || n.parent.IsNil() {
		return NilHandle, false
	}

	return n.parent, true
}

func (t *Tree[V]) String() string {
	root := "none"
	if !t.root.IsNil() {
		root = t.root.String()
	}
	return fmt.Sprintf("Tree{len: %d, capacity: %d, root: %s}", t.Len(), t.Capacity(), root)
}
