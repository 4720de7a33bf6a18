package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// cancelReasonPrefix marks cancellation reasons appended to an order's notes.
const cancelReasonPrefix = "CANCELLED: "

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a food-distribution order. It is the aggregate root that
// manages the order lifecycle from placement through pricing and delivery to
// completion, and it is the single mutation surface: every external write
// goes through ApplyTransition.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and placing restaurant
//   - Must carry at least one item; item quantities are positive
//   - Status transitions follow the transition table in authorizer.go
//   - Once priced, the total amount equals the sum of the items' line totals
//   - Terminal orders (completed, cancelled) never change again
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID

	// driverID is the assigned driver's ID (nil until the assigned transition)
	driverID *kernel.UUID

	status      Status
	totalAmount kernel.Money
	notes       string
	items       []*Item

	// version supports the optimistic-concurrency check at persistence time;
	// it is bumped by every applied transition.
	version int

	createdAt time.Time
	updatedAt time.Time

	// Lifecycle timestamps, each set exactly once the first time the order
	// enters the corresponding status, never cleared.
	confirmedAt *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	isConstructed bool
}

// TransitionPayload carries the transition-specific input of ApplyTransition.
// Only the field relevant to the requested target status is read:
// Pricing for priced, DriverID for assigned, CancelReason for cancelled.
type TransitionPayload struct {
	Pricing      []ItemPricing
	DriverID     *kernel.UUID
	CancelReason string
}

// NewOrder creates a new Order in pending status, placed by a restaurant
// with at least one unpriced item. The total amount starts at zero and is
// only ever derived by the pricing step.
func NewOrder(id, restaurantID kernel.UUID, items []*Item, notes string) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		totalAmount:   kernel.ZeroMoney(),
		notes:         notes,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// lifecycle transitions. It validates the identifier fields and the
// consistency between status and driver assignment.
func RestoreOrder(
	id, restaurantID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	totalAmount kernel.Money,
	notes string,
	items []*Item,
	version int,
	createdAt, updatedAt time.Time,
	confirmedAt, pickedUpAt, deliveredAt, cancelledAt *time.Time,
) (*Order, error) {
	o := &Order{
		status:        status,
		notes:         notes,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		confirmedAt:   confirmedAt,
		pickedUpAt:    pickedUpAt,
		deliveredAt:   deliveredAt,
		cancelledAt:   cancelledAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		status.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
		totalAmount.Validate(),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidError(
			"order version", fmt.Errorf("%d is not greater than 0", version))
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = driverID
	}
	o.totalAmount = totalAmount

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the identifier of the restaurant that placed the order.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Driver returns the assigned driver's ID, or nil before assignment.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the derived order total. Zero until the order is priced.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Notes returns the free-text notes, including any appended cancellation reason.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// Version returns the optimistic-concurrency version of the aggregate.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last applied mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ConfirmedAt returns when the order was confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// PickedUpAt returns when the driver picked the order up, or nil.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// ApplyTransition moves the order to the target status on behalf of an actor.
//
// The algorithm:
//  1. Reject any transition on a terminal order with ErrOrderIsTerminal.
//  2. Consult the transition table; reject with ErrUnauthorized if the
//     actor's role or identity does not permit the move.
//  3. Apply transition-specific business rules: pricing for priced
//     (atomic across all items), driver assignment for assigned, the
//     defensive delivered re-check for completed, and the notes marker
//     for cancelled.
//  4. Set the new status, stamp the matching lifecycle timestamp the first
//     time that status is reached, refresh updatedAt, and bump the version.
//
// On success it returns the OrderStatusChanged event for the notification
// collaborator. Persistence is the caller's concern: the aggregate is only
// considered transitioned once the repository write (with its optimistic
// version check) succeeds.
//
// The caller must verify driver activity against the actor directory before
// requesting the assigned transition; the aggregate only checks that a
// driver id is present.
func (o *Order) ApplyTransition(
	a actor.Actor,
	target Status,
	payload TransitionPayload,
) (OrderStatusChanged, error) {
	if err := o.Validate(); err != nil {
		return OrderStatusChanged{}, err
	}
	if err := a.Validate(); err != nil {
		return OrderStatusChanged{}, err
	}
	if err := target.Validate(); err != nil {
		return OrderStatusChanged{}, err
	}

	if o.status.IsTerminal() {
		return OrderStatusChanged{}, fmt.Errorf("%w: order %s is %s", ErrOrderIsTerminal, o.id, o.status)
	}

	if err := Authorize(a, o, target); err != nil {
		return OrderStatusChanged{}, err
	}

	switch target {
	case Priced:
		total, err := PriceItems(o.items, payload.Pricing)
		if err != nil {
			return OrderStatusChanged{}, err
		}
		o.totalAmount = total

	case Assigned:
		if payload.DriverID == nil {
			return OrderStatusChanged{}, fmt.Errorf("%w: no driver supplied", ErrInvalidDriver)
		}
		if err := payload.DriverID.Validate(); err != nil {
			return OrderStatusChanged{}, fmt.Errorf("%w: %w", ErrInvalidDriver, err)
		}
		driverID := *payload.DriverID
		o.driverID = &driverID

	case Completed:
		// Defensive re-check; the transition table already encodes this path.
		if o.status != Delivered {
			return OrderStatusChanged{}, fmt.Errorf("%w: order %s is %s, not %s",
				ErrPrecedingStateRequired, o.id, o.status, Delivered)
		}

	case Cancelled:
		o.appendCancelReason(payload.CancelReason)

	case Unknown, Pending, Confirmed, OutForDelivery, Delivered:
		// No transition-specific rules.
	}

	now := time.Now().UTC()
	from := o.status
	o.status = target
	o.stampStatusTimestamp(target, now)
	o.updatedAt = now
	o.version++

	return OrderStatusChanged{
		OrderID:    o.id,
		From:       from,
		To:         target,
		ActorID:    a.ID(),
		OccurredAt: now,
	}, nil
}

// appendCancelReason records the cancellation marker in the notes.
func (o *Order) appendCancelReason(reason string) {
	marker := cancelReasonPrefix + strings.TrimSpace(reason)
	if o.notes == "" {
		o.notes = marker
		return
	}
	o.notes = o.notes + "\n" + marker
}

// stampStatusTimestamp sets the lifecycle timestamp matching the status the
// first time that status is reached. Timestamps are never cleared.
func (o *Order) stampStatusTimestamp(status Status, now time.Time) {
	switch status {
	case Confirmed:
		if o.confirmedAt == nil {
			o.confirmedAt = &now
		}
	case OutForDelivery:
		if o.pickedUpAt == nil {
			o.pickedUpAt = &now
		}
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &now
		}
	case Cancelled:
		if o.cancelledAt == nil {
			o.cancelledAt = &now
		}
	case Unknown, Pending, Priced, Assigned, Completed:
		// No dedicated timestamp field.
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.ProductID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"order items",
				fmt.Errorf("duplicate product %s", item.ProductID()),
			)
		}
		seen[item.ProductID()] = struct{}{}
	}

	o.items = items
	return nil
}
