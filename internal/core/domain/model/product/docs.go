// Package product models the purchasable catalog and the per-order product
// snapshot shared by every role in the procurement workflow.
//
// A Product carries both catalog identity (id, name, category, unit) and
// per-order state (quantity, price, comments, check marks). An order always
// holds a full snapshot of products, never a diff; the snapshot is rebuilt on
// every workflow transition.
//
// SnapshotFromCatalog produces a fresh order-scoped snapshot from the master
// catalog, and CarryLastPrices seeds last-known-price hints from a previous
// order so the supplier can re-price quickly.
package product
