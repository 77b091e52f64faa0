package order

import (
	"errors"
	"fmt"
	"strings"

	"resto/internal/pkg/errs"
)

// ErrTransitionNotAllowed is returned when the current status does not
// satisfy the precondition for the desired status. Callers observing it
// after a concurrent update should re-fetch the order and re-derive intent
// rather than retry blindly.
var ErrTransitionNotAllowed = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	CREATED ──> COOKING ──> SENDED ──> DELIVERED
//	   │
//	   └──> CANCELLED
//
// Status only ever moves forward along this graph; it never regresses.
// DELIVERED and CANCELLED are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	// Orders in this status may be cancelled or taken into cooking.
	Created

	// Cooking indicates the kitchen has started preparing the order.
	Cooking

	// Sended indicates the order has left the kitchen and is on its way.
	Sended

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before cooking started.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Cooking:   "COOKING",
		Sended:    "SENDED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Cooking:   "COOKING",
		Sended:    "SENDED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// transitionPreconditions maps each reachable status to the single current
// status an order must be in for the transition to be allowed. Created is
// absent: it is the initial state and never a transition target.
func transitionPreconditions() map[Status]Status {
	return map[Status]Status{
		Cooking:   Created,
		Sended:    Cooking,
		Delivered: Sended,
		Cancelled: Created,
	}
}

// StatusFromString parses a status from its case-insensitive string form.
// Returns an error for values that are not one of the five known states,
// so malformed requests are rejected before any workflow check runs.
func StatusFromString(value string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", value))
}

// String returns the canonical upper-case name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Cooking, Sended, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates the transition from s to desired and returns the
// new status. Checks run cheapest and most general first: the desired value
// must be a known status before the workflow precondition is consulted, so
// a malformed request never learns the order's current state.
//
// Returns:
//   - (desired, nil) when the transition is allowed
//   - (0, ValueIsInvalidError) when desired is not a known status
//   - (0, ErrTransitionNotAllowed) when the current status does not match
//     the precondition for desired
//
// Example:
//
//	next, err := current.TransitionTo(order.Cooking)
//	if err != nil {
//	    // invalid request or workflow violation
//	}
func (s Status) TransitionTo(desired Status) (Status, error) {
	if err := desired.Validate(); err != nil {
		return 0, err
	}

	required, ok := transitionPreconditions()[desired]
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a transition target", ErrTransitionNotAllowed, desired)
	}

	if s != required {
		return 0, fmt.Errorf("%w: cannot move from %s to %s", ErrTransitionNotAllowed, s, desired)
	}

	return desired, nil
}

// CanTransitionTo reports whether TransitionTo would succeed, without
// performing the transition. Useful for pre-validation in workflow checks.
func (s Status) CanTransitionTo(desired Status) bool {
	_, err := s.TransitionTo(desired)
	return err == nil
}
