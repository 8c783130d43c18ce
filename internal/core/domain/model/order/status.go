package order

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// Status represents the lifecycle state of an order or of an individual
// order item (both share the same enumeration). It implements a state
// machine with fixed transitions to ensure orders follow the kitchen
// workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──┬──> Served ──> Completed
//	   │            │             │                 ├──────────────> Completed
//	   └────────────┴─────────────┴─────────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them. The
// table is a DAG; no sequence of valid transitions can revisit a status,
// and self-transitions are never allowed.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	Pending

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is ready for pickup or serving.
	Ready

	// Served indicates the order has been delivered to the table.
	Served

	// Completed indicates the order has been finished and settled.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Served:    "served",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getTransitions returns the fixed transition table: for each status, the
// set of statuses it may move to. Terminal statuses map to an empty list.
// The table is not configurable at runtime.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Served, Completed, Cancelled},
		Served:    {Completed},
		Completed: {},
		Cancelled: {},
	}
}

// StatusFromString parses a wire name ("pending", "confirmed", ...) into a
// Status. Returns an error for names outside the enumeration.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Preparing, Ready, Served,
// Completed, Cancelled. Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns "unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidNextStatuses returns the statuses this status may transition to.
// The result is empty for terminal statuses and for invalid values.
func (s Status) ValidNextStatuses() []Status {
	next, ok := getTransitions()[s]
	if !ok {
		return nil
	}
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether the transition from s to target appears
// in the transition table. Self-transitions are never in the table and
// always return false.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// CanCancel reports whether Cancelled is a valid next status.
// True for Pending, Confirmed, Preparing, and Ready; false for Served
// and for the terminal statuses.
func (s Status) CanCancel() bool {
	return s.CanTransitionTo(Cancelled)
}

// IsTerminal reports whether the status has no outgoing transitions.
// True only for Completed and Cancelled.
func (s Status) IsTerminal() bool {
	next, ok := getTransitions()[s]
	return ok && len(next) == 0
}

// TransitionTo validates and performs the transition from s to target.
//
// Returns:
//   - (target, nil) when the transition appears in the table
//   - (0, error) otherwise; the error classifies as validation_error and
//     the caller must leave the persisted status unchanged
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid transition from %s", target.String(), s.String()))
	}

	return target, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from Pending, Confirmed, Preparing, and Ready. Invalid from Served
// (order already at the table must be completed), from terminal statuses,
// and from Unknown.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
