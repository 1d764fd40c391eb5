// Package kernel provides shared domain primitives used across all aggregates
// in the commerce core.
//
// The package includes:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//   - Money: an immutable, non-negative monetary amount in minor units
//   - DomainEvent / EventSource: the contract aggregates use to record domain
//     events for an external dispatcher
//
// All value objects in this package are immutable and safe for concurrent use.
package kernel
