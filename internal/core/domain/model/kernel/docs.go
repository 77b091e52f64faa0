// Package kernel contains shared value objects used across the domain model:
// tenant identifiers, prefixed entity identifiers and the pagination cursor.
//
// All identifiers are immutable value objects constructed through factory
// functions. The zero value of each type is invalid and rejected by Validate,
// which keeps unvalidated external input out of the domain layer.
package kernel
