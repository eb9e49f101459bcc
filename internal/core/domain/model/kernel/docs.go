// Package kernel contains shared value objects used across the procurement domain.
//
// The package includes:
//   - Branch: the physical site an order is placed from
//   - Role: the actor kind that may act on an order in a given status
//   - ConstructorGuard: a defensive pattern ensuring domain objects are built
//     through their constructors
//
// All value objects are immutable and validate themselves; a zero value is
// invalid until produced by one of the package's factory functions.
package kernel
