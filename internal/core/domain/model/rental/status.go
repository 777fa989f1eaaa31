package rental

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Status represents the lifecycle state of a rental order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Open ──┬──> Approved ──> Closed
//	       │        └──(re-approval allowed)
//	       └──> Cancelled
//
// Closed and Cancelled are terminal. There is no cancellation path from
// Approved. Status is a value object that validates state transitions and
// provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when an order is first placed.
	// Orders in this status carry no dates, address, or amounts yet.
	Open

	// Approved indicates the rental window, address, and total have been set.
	// An Approved order may be re-approved with updated details.
	Approved

	// Closed indicates the rental has been returned and settled.
	// This is a terminal state.
	Closed

	// Cancelled indicates the order was withdrawn while still Open.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Approved:  "Approved",
		Closed:    "Closed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "Open",
		Approved:  "Approved",
		Closed:    "Closed",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status name as stored or received over the API.
// Returns Unknown with an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Open, Approved, Closed, and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Open -> Approved (initial approval)
//   - Approved -> Approved (re-approval with updated window or address)
//
// Any other current status is a conflict.
func (s Status) Approve() (Status, error) {
	if s != Open && s != Approved {
		return 0, errs.NewConflictErrorWithCause(
			"order cannot be approved",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}
	return Approved, nil
}

// Close transitions the status to Closed.
//
// Valid transitions:
//   - Approved -> Closed (rental returned)
//
// Any other current status is a conflict.
func (s Status) Close() (Status, error) {
	if s != Approved {
		return 0, errs.NewConflictErrorWithCause(
			"order cannot be closed",
			fmt.Errorf("%s is not a valid status to close", s.String()),
		)
	}
	return Closed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Open -> Cancelled
//
// An already-Cancelled order reports a distinct conflict from other
// non-open statuses so callers can surface the difference.
func (s Status) Cancel() (Status, error) {
	if s == Cancelled {
		return 0, errs.NewConflictError("order is already cancelled")
	}
	if s != Open {
		return 0, errs.NewConflictErrorWithCause(
			"order cannot be cancelled",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
