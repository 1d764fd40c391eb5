// Package order provides the Order aggregate root and its lifecycle
// management for the commerce core.
//
// The package includes:
//   - Order: the aggregate root that owns the item collection, totals,
//     payment status, and the recorded domain events
//   - Status: a state machine that enforces valid order status transitions
//     through a fixed adjacency table
//   - Item: an order line with a derived line total
//   - Domain events recorded on creation, shipping, delivery, and cancellation
//
// Key business rules:
//   - totalAmount = subTotal + shippingCost + tax after every mutation
//   - subTotal is always the sum of the item line totals
//   - items can be added or removed only while the order is Pending
//   - item quantities can be shrunk (never zeroed) while Pending or Processing
//   - status moves only along the transitions the adjacency table permits
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
