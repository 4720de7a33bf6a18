package commands

import (
	"context"
	"errors"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/order"
)

// ErrNotAnActiveRestaurant is returned when the placing actor is not a
// registered, active restaurant account.
var ErrNotAnActiveRestaurant = errors.New("placing actor must be an active restaurant")

// PlaceOrderCommandHandler handles the business logic for order placement.
// Verifies the placing restaurant against the directory and creates the
// order in "pending" status with unpriced items.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), restaurantID, items, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending and awaiting confirmation
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Rejects placement when the restaurant is unknown, inactive, or not a
// restaurant account. Uses a transaction so the order is persisted
// completely or not at all.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.ActorDirectory().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if account.Role() != actor.RoleRestaurant || !account.IsActive() {
		return ErrNotAnActiveRestaurant
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		item, err := order.NewItem(line.ProductID, line.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.RestaurantID(), items, cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
