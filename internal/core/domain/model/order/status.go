package order

import (
	"fmt"

	"waiter/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	NEW ──> IN_PREPARATION ──> READY ──> PAID ──> REFUNDED
//	 │             │             │
//	 └─────────────┴─────────────┴──> CANCELLED
//
// Pay, Cancel, and Refund are guarded because they have financial and audit
// consequences. The kitchen progression (NEW -> IN_PREPARATION -> READY) is an
// open, unguarded status change so staff can correct workflow freely; the
// asymmetry is intentional.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first created.
	New

	// InPreparation indicates the kitchen is working on the order.
	InPreparation

	// Ready indicates the order is ready to be served and paid.
	Ready

	// Paid indicates the order has been settled. The total is frozen
	// from this point on; only a refund can follow.
	Paid

	// Refunded indicates a paid order was refunded. Globally terminal.
	Refunded

	// Cancelled indicates the order was cancelled before payment. Terminal
	// except that re-cancelling is tolerated.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		New:           "NEW",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Paid:          "PAID",
		Refunded:      "REFUNDED",
		Cancelled:     "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:           "NEW",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Paid:          "PAID",
		Refunded:      "REFUNDED",
		Cancelled:     "CANCELLED",
	}
}

// StatusFromString parses a status name as used on the wire and in storage.
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// TotalFrozen reports whether the order total is frozen in this status.
// Once an order is paid (or subsequently refunded) the total is no longer
// recomputed from live menu prices.
func (s Status) TotalFrozen() bool {
	return s == Paid || s == Refunded
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Ready -> Paid
//
// Any other current status is rejected with an InvalidStateError naming the
// violated rule.
func (s Status) Pay() (Status, error) {
	if s != Ready {
		return Unknown, errs.NewInvalidStateErrorWithCause(
			"only READY orders can be paid",
			fmt.Errorf("current status is %s", s),
		)
	}
	return Paid, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any status except Paid and Refunded; cancelling an already
// cancelled order is allowed and stays Cancelled.
func (s Status) Cancel() (Status, error) {
	if s == Paid || s == Refunded {
		return Unknown, errs.NewInvalidStateErrorWithCause(
			"cannot cancel a paid or refunded order",
			fmt.Errorf("current status is %s", s),
		)
	}
	return Cancelled, nil
}

// Refund transitions the status to Refunded.
//
// Valid transitions:
//   - Paid -> Refunded
func (s Status) Refund() (Status, error) {
	if s != Paid {
		return Unknown, errs.NewInvalidStateErrorWithCause(
			"only PAID orders can be refunded",
			fmt.Errorf("current status is %s", s),
		)
	}
	return Refunded, nil
}
