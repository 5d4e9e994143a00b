package treego

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/treego/testutil"
)

// checkInvariants validates the intrusive topology of every live node:
// sibling links are symmetric, first/last child agree with the child
// list, children point back to their parent, and no node is its own
// ancestor.
func checkInvariants[V any](t *testing.T, tree *Tree[V]) {
	t.Helper()

	for h := range tree.nodes.Indexes() {
		n, ok := tree.nodes.Get(h)
		require.True(t, ok)

		// next_sibling(a) = b ⇔ previous_sibling(b) = a.
		if !n.nextSibling.IsNil() {
			ns, ok := tree.nodes.Get(n.nextSibling)
			require.True(t, ok, "%s: dangling next sibling", h)
			require.Equal(t, h, ns.prevSibling, "%s: sibling links asymmetric", h)
		}
		if !n.prevSibling.IsNil() {
			ps, ok := tree.nodes.Get(n.prevSibling)
			require.True(t, ok, "%s: dangling previous sibling", h)
			require.Equal(t, h, ps.nextSibling, "%s: sibling links asymmetric", h)
		}

		// first_child and last_child are both set or both empty; ends of
		// the child list have no outer siblings.
		require.Equal(t, n.firstChild.IsNil(), n.lastChild.IsNil(), "%s: first/last child mismatch", h)
		if !n.firstChild.IsNil() {
			fc, ok := tree.nodes.Get(n.firstChild)
			require.True(t, ok, "%s: dangling first child", h)
			require.True(t, fc.prevSibling.IsNil(), "%s: first child has a previous sibling", h)

			lc, ok := tree.nodes.Get(n.lastChild)
			require.True(t, ok, "%s: dangling last child", h)
			require.True(t, lc.nextSibling.IsNil(), "%s: last child has a next sibling", h)
		}

		// Every child names h as its parent, and the chain from first
		// child reaches last child.
		last := NilHandle
		for c := range tree.Children(h) {
			cn, ok := tree.nodes.Get(c)
			require.True(t, ok)
			require.Equal(t, h, cn.parent, "%s: child %s does not point back", h, c)
			last = c
		}
		require.Equal(t, n.lastChild, last, "%s: child chain does not end at last child", h)

		// No cycles: walking parents from h must terminate without
		// revisiting h.
		seen := 0
		for a := range tree.Ancestors(h) {
			if seen > 0 {
				require.NotEqual(t, h, a, "%s is its own ancestor", h)
			}
			seen++
			require.LessOrEqual(t, seen, tree.Len(), "ancestor chain longer than the tree")
		}
	}

	// The designated root, if any, is live and parentless.
	if root, ok := tree.Root(); ok {
		n, live := tree.nodes.Get(root)
		require.True(t, live, "designated root is stale")
		require.True(t, n.parent.IsNil(), "designated root has a parent")
	}
}

// TestRandomizedOperations drives a random mix of inserts, removals,
// relocations and detaches and validates every topology invariant after
// each step.
func TestRandomizedOperations(t *testing.T) {
	rng := testutil.NewRNG(4711)
	tree := New[int]()

	root, err := tree.InsertRoot(0)
	require.NoError(t, err)

	live := []Handle{root}
	next := 1

	reap := func() {
		alive := live[:0]
		for _, h := range live {
			if tree.Contains(h) {
				alive = append(alive, h)
			}
		}
		live = alive
	}

	for i := 0; i < 2000; i++ {
		switch op := rng.Intn(10); {
		case op < 5: // insert under a random live node
			parent := testutil.Pick(rng, live)
			h, err := tree.Insert(next, parent)
			require.NoError(t, err)
			live = append(live, h)
			next++

		case op < 7: // relocate a random subtree
			parent := testutil.Pick(rng, live)
			child := testutil.Pick(rng, live)
			wasAncestor := isAncestor(tree, child, parent)
			err := tree.AppendChild(parent, child)
			switch {
			case parent == child:
				require.ErrorIs(t, err, ErrSelfAppend)
			case wasAncestor:
				require.ErrorIs(t, err, ErrCycle)
			default:
				require.NoError(t, err)
			}

		case op < 8: // detach a random subtree
			require.NoError(t, tree.Detach(testutil.Pick(rng, live)))

		default: // remove a random subtree
			h := testutil.Pick(rng, live)
			size := 0
			for range tree.Descendants(h) {
				size++
			}
			if size == tree.Len() {
				continue // keep at least one node so every op has a target
			}
			_, ok := tree.Remove(h)
			require.True(t, ok)
			reap()
		}

		checkInvariants(t, tree)
	}

	require.Greater(t, tree.Len(), 0)
}

// isAncestor reports whether a is an ancestor of (or equal to) b.
func isAncestor[V any](tree *Tree[V], a, b Handle) bool {
	for h := range tree.Ancestors(b) {
		if h == a {
			return true
		}
	}
	return false
}
