package commands

import (
	"errors"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order to a new
// lifecycle status on behalf of an acting restaurant, driver, or admin.
// Optional payload fields carry the data some transitions require:
// pricing entries for "priced", a driver for "assigned", and a reason
// for "cancelled".
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, adminID, actor.RoleAdmin, order.Confirmed)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition rejected: %w", err)
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole actor.Role
	target    order.Status

	pricing      []order.ItemPricing
	driverID     *kernel.UUID
	cancelReason string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// Validates the identifiers, the acting role, and the target status.
// Payload data is attached through the With* builders; it is validated
// against the order by the aggregate itself.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole actor.Role,
	target order.Status,
) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setActor(actorID, actorRole),
		transitionCommand.setTarget(target),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// WithPricing attaches the per-item pricing payload for a "priced" transition.
func (c TransitionOrderCommand) WithPricing(pricing []order.ItemPricing) TransitionOrderCommand {
	c.pricing = pricing
	return c
}

// WithDriver attaches the driver to assign for an "assigned" transition.
func (c TransitionOrderCommand) WithDriver(driverID kernel.UUID) TransitionOrderCommand {
	c.driverID = &driverID
	return c
}

// WithCancelReason attaches the reason for a "cancelled" transition.
func (c TransitionOrderCommand) WithCancelReason(reason string) TransitionOrderCommand {
	c.cancelReason = reason
	return c
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the acting party.
func (c TransitionOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the declared role of the acting party.
func (c TransitionOrderCommand) ActorRole() actor.Role {
	return c.actorRole
}

// Target returns the requested status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Payload assembles the transition payload for the aggregate.
func (c TransitionOrderCommand) Payload() order.TransitionPayload {
	return order.TransitionPayload{
		Pricing:      c.pricing,
		DriverID:     c.driverID,
		CancelReason: c.cancelReason,
	}
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setActor(actorID kernel.UUID, actorRole actor.Role) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
