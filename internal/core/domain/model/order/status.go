package order

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Priced ──> Assigned ──> OutForDelivery ──> Delivered ──> Completed
//	    │            │           │           │               │                │
//	    └────────────┴───────────┴───────────┴───────────────┴────────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them.
// Which actor may perform each transition is decided by the transition
// table in authorizer.go.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a restaurant places an order.
	Pending

	// Confirmed indicates an admin has accepted the order.
	Confirmed

	// Priced indicates all order items carry cost and selling prices
	// and the order total has been derived from them.
	Priced

	// Assigned indicates a driver has been assigned for delivery.
	Assigned

	// OutForDelivery indicates the driver has picked up the order.
	OutForDelivery

	// Delivered indicates the driver has handed the order over.
	Delivered

	// Completed indicates the restaurant acknowledged delivery.
	// This is a terminal state.
	Completed

	// Cancelled indicates the order was abandoned before completion.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Priced:         "priced",
		Assigned:       "assigned",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Priced:         "priced",
		Assigned:       "assigned",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, e.g. "out_for_delivery".
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// StatusFromString parses a status from its snake_case name as it appears
// on the wire and in the database. Returns an error for unrecognized names.
func StatusFromString(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", str))
}

// AllStatuses returns every valid status in lifecycle order.
// Useful for exhaustive checks over the transition table.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Priced, Assigned, OutForDelivery, Delivered, Completed, Cancelled}
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment. Orders before assignment must not reference a driver;
// orders at or past assignment must. Cancelled orders may keep the driver
// they had when cancellation happened, so both forms are accepted there.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if s == Cancelled {
		return nil
	}

	requiresDriver := s == Assigned || s == OutForDelivery || s == Delivered || s == Completed
	if hasDriver && !requiresDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !hasDriver && requiresDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}
