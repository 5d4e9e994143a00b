package arena

import (
	"errors"
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrFull is returned by TryInsert when no free slot is left.
// The caller keeps the rejected record and may Reserve and retry.
var ErrFull = errors.New("arena: full")

// DefaultCapacity is the slot count a zero-configured arena starts with.
const DefaultCapacity = 4

// noSlot terminates the free-list chain.
const noSlot = ^uint32(0)

// Index is an opaque handle to a record: a (slot, generation) pair.
//
// Indexes are compared by value; two indexes are equal only if both slot
// and generation match. The zero Index is never issued (generations start
// at 1) and acts as the canonical "no record" value.
type Index struct {
	slot       uint32
	generation uint32
}

// IsNil reports whether i is the zero "no record" index.
func (i Index) IsNil() bool {
	return i == Index{}
}

func (i Index) String() string {
	if i.IsNil() {
		return "Index(nil)"
	}
	return fmt.Sprintf("Index(slot=%d, gen=%d)", i.slot, i.generation)
}

// entry is one slot of the store. generation counts occupancies of the
// slot: it is bumped on every free, so indexes issued for an earlier
// occupant can never validate again. nextFree is only meaningful while
// the slot is on the free list.
type entry[T any] struct {
	generation uint32
	nextFree   uint32
	value      T
}

// Arena is a generation-checked slot store for records of type T.
//
// Not safe for concurrent use.
type Arena[T any] struct {
	entries  []entry[T]
	freeHead uint32
	live     *roaring.Bitmap
}

type options struct {
	capacity int
}

// Option configures a new Arena.
type Option func(*options)

// WithCapacity pre-allocates n slots.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

// New creates an empty arena. Without options it holds DefaultCapacity
// slots; capacity doubles when insertion outgrows it.
func New[T any](opts ...Option) *Arena[T] {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	a := &Arena[T]{
		freeHead: noSlot,
		live:     roaring.New(),
	}
	a.Reserve(o.capacity)

	return a
}

// Len returns the number of live records.
func (a *Arena[T]) Len() int {
	return int(a.live.GetCardinality())
}

// Capacity returns the number of records the arena can hold without
// further allocation, including those it currently contains.
func (a *Arena[T]) Capacity() int {
	return len(a.entries)
}

// Reserve allocates n additional slots.
func (a *Arena[T]) Reserve(n int) {
	base := len(a.entries)
	a.entries = append(a.entries, make([]entry[T], n)...)

	// Chain the new slots so the lowest one is recycled first. Fresh
	// slots start at generation 1; the zero Index stays invalid forever.
	for i := base + n - 1; i >= base; i-- {
		a.entries[i].generation = 1
		a.entries[i].nextFree = a.freeHead
		a.freeHead = uint32(i)
	}
}

// Insert adds a record, growing the arena if no slot is free, and returns
// its index. Growth doubles capacity; issued indexes stay valid because
// only storage is reallocated, slots are never renumbered.
func (a *Arena[T]) Insert(v T) Index {
	if a.freeHead == noSlot {
		grow := len(a.entries)
		if grow == 0 {
			grow = 1
		}
		a.Reserve(grow)
	}

	return a.allocate(v)
}

// TryInsert adds a record using existing capacity only. It fails with
// ErrFull when no slot is free; the caller keeps v and may Reserve and
// retry.
func (a *Arena[T]) TryInsert(v T) (Index, error) {
	if a.freeHead == noSlot {
		return Index{}, ErrFull
	}

	return a.allocate(v), nil
}

func (a *Arena[T]) allocate(v T) Index {
	slot := a.freeHead
	e := &a.entries[slot]
	a.freeHead = e.nextFree
	e.value = v
	a.live.Add(slot)

	return Index{slot: slot, generation: e.generation}
}

// Remove frees the record at i and returns it. The second return value is
// false when i is stale or was never issued. After Remove, i never
// validates again, even once the slot is recycled.
func (a *Arena[T]) Remove(i Index) (T, bool) {
	var zero T

	e, ok := a.ref(i)
	if !ok {
		return zero, false
	}

	v := e.value
	e.value = zero // release payload references
	e.generation++
	e.nextFree = a.freeHead
	a.freeHead = i.slot
	a.live.Remove(i.slot)

	return v, true
}

// Contains reports whether i resolves to a live record.
func (a *Arena[T]) Contains(i Index) bool {
	_, ok := a.ref(i)
	return ok
}

// Get returns a pointer to the record at i, or false when i is stale.
// The pointer stays valid until the record is removed or the arena is
// cleared; it must not be retained across either.
func (a *Arena[T]) Get(i Index) (*T, bool) {
	e, ok := a.ref(i)
	if !ok {
		return nil, false
	}

	return &e.value, true
}

// Get2 returns pointers to two distinct records at once. It returns false
// when either index is stale or when both name the same slot; handing out
// two mutable views of one record is a caller-logic error, not an
// aliasing convenience.
func (a *Arena[T]) Get2(i, j Index) (*T, *T, bool) {
	if i.slot == j.slot {
		return nil, nil, false
	}

	ei, ok := a.ref(i)
	if !ok {
		return nil, nil, false
	}
	ej, ok := a.ref(j)
	if !ok {
		return nil, nil, false
	}

	return &ei.value, &ej.value, true
}

// Indexes returns a lazy iterator over the indexes of all live records,
// in slot order. The arena must not be mutated while iterating.
func (a *Arena[T]) Indexes() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		it := a.live.Iterator()
		for it.HasNext() {
			slot := it.Next()
			if !yield(Index{slot: slot, generation: a.entries[slot].generation}) {
				return
			}
		}
	}
}

// Clear drops every record but keeps the allocated storage. All issued
// indexes become stale.
func (a *Arena[T]) Clear() {
	var zero T

	a.freeHead = noSlot
	for i := len(a.entries) - 1; i >= 0; i-- {
		e := &a.entries[i]
		if a.live.Contains(uint32(i)) {
			e.value = zero
			e.generation++
		}
		e.nextFree = a.freeHead
		a.freeHead = uint32(i)
	}
	a.live.Clear()
}

func (a *Arena[T]) ref(i Index) (*entry[T], bool) {
	if i.slot >= uint32(len(a.entries)) || !a.live.Contains(i.slot) {
		return nil, false
	}

	e := &a.entries[i.slot]
	if e.generation != i.generation {
		return nil, false
	}

	return e, true
}
