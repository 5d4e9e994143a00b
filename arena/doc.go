// Package arena provides a generation-checked slot arena.
//
// Records live in a flat growable store and are addressed by an opaque
// Index carrying both a slot number and a generation counter. Freed slots
// are recycled under a strictly greater generation, so an Index issued for
// an earlier occupant never validates again. This is what makes the arena
// safe against the ABA problem: a stale Index fails its generation check
// instead of silently resolving to whatever record reused the slot.
//
// Architecture:
//   - Slot store: one growable slice of records, indexed by slot number.
//     Growth reallocates storage but never renumbers slots, so issued
//     indexes survive capacity doubling.
//   - Free list: freed slots are chained through their entries and reused
//     in LIFO order.
//   - Occupancy: live slots are tracked in a Roaring Bitmap, which powers
//     Len and the Indexes iterator without scanning dead slots.
//
// The arena is a single exclusion unit. No operation is safe under
// concurrent use without external synchronization.
package arena
