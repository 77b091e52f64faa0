// Package services provides domain services that implement business rules
// spanning multiple domain concepts in the order tracking system.
//
// The package includes:
//   - AccessPolicy: a pure decision service mapping (actor, order, desired
//     action) to allow/deny, covering both the transition permission matrix
//     and the read-path ownership rules
//
// Domain services hold no state beyond configuration and perform no I/O,
// so they can be consulted from any layer without a store round trip.
package services
