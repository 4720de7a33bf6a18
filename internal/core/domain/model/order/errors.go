package order

import "errors"

// Error kinds returned by ApplyTransition. Callers classify them with
// errors.Is; the HTTP layer maps each kind to a response status.
var (
	// ErrOrderIsTerminal is returned for any transition requested on a
	// completed or cancelled order.
	ErrOrderIsTerminal = errors.New("order is in a terminal status")

	// ErrUnauthorized is returned when the actor's role or identity does not
	// satisfy the transition table.
	ErrUnauthorized = errors.New("actor is not authorized for this transition")

	// ErrInvalidPricing is returned when the pricing payload for the
	// confirmed -> priced transition is missing or malformed. No item is
	// priced when this is returned.
	ErrInvalidPricing = errors.New("pricing payload is invalid")

	// ErrInvalidDriver is returned when the driver targeted by the
	// priced -> assigned transition is missing, inactive, or not a driver.
	ErrInvalidDriver = errors.New("driver is invalid")

	// ErrPrecedingStateRequired is returned by the defensive re-check on the
	// delivered -> completed transition. If the transition table is correct
	// this is unreachable; hitting it means an internal invariant broke.
	ErrPrecedingStateRequired = errors.New("order has not reached the required preceding status")
)
