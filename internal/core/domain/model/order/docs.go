// Package order provides domain entities and business logic for procurement
// order management. It implements the Order aggregate root with lifecycle
// management and role-gated state transitions.
//
// The package includes:
//   - Order: the aggregate root holding status, branch, product snapshot, and timestamps
//   - Status: a state machine over the fixed chef -> financier -> supplier ->
//     chef-checking -> financier-checking -> completed workflow
//   - Typed per-role edits (QuantityEdits, PricingEdits, CheckingEdits, SnapshotReplace)
//     that scope which fields each role may write in each status
//
// Key business rules:
//   - Every status has at most one legal successor; everything else is an invalid transition
//   - A chef submission needs at least one product with quantity > 0
//   - A supplier handoff needs a price > 0 on every ordered product
//   - Every transition replaces the whole product snapshot (last-write-wins)
//   - completed is terminal; nothing writes a completed order
//
// The package follows Domain-Driven Design principles: the aggregate has
// private fields, is created only through its constructors, and rejects any
// transition that would break an invariant without partially applying it.
package order
