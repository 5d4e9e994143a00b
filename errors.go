package treego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/treego/arena"
)

var (
	// ErrFull is returned by TryInsert and TryInsertRoot when the arena
	// has no free slot. This is the only recoverable failure: the caller
	// keeps the rejected payload and may Reserve and retry.
	ErrFull = arena.ErrFull

	// ErrRootExists is returned when a root is inserted while one is
	// already designated. A caller-logic error, not retryable.
	ErrRootExists = errors.New("treego: a root node already exists")

	// ErrSelfAppend is returned when a node is appended as a child of
	// itself.
	ErrSelfAppend = errors.New("treego: cannot append a node to itself")

	// ErrCycle is returned when a node is appended as a child of one of
	// its own descendants, which would make it its own ancestor.
	ErrCycle = errors.New("treego: cannot append a node to its own descendant")
)

// ErrStaleHandle indicates a handle that no longer resolves to a live
// node: its node was removed, the tree was cleared, or the handle belongs
// to a different tree.
type ErrStaleHandle struct {
	Handle Handle
}

func (e *ErrStaleHandle) Error() string {
	return fmt.Sprintf("treego: stale handle %s", e.Handle)
}
