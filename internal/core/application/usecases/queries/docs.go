// Package queries contains read-only operations for the order tracking
// domain. Implements the query side of the CQRS architecture: handlers
// read through raw SQL against the database connection rather than the
// repositories, restore aggregates only to run access checks, and return
// flat response structures.
//
// Listing handlers share one pagination contract. A page is a keyset scan
// over the tenant partition ordered by identifier, fetching one row more
// than the limit to decide whether a continuation cursor is produced.
// Predicate filters (ownership, status, availability) are applied after
// the fetch, so a page may carry fewer records than the limit while the
// cursor still advances over the underlying scan.
package queries
