package commands

import (
	"context"
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"
)

// TransitionOrderCommandHandler orchestrates order lifecycle transitions.
// Loads the order, authorizes and applies the transition through the
// aggregate, persists the result with an optimistic version check, and
// stages a status-change notification in the same transaction.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrUnauthorized):
//	    log.Println("actor may not perform this transition")
//	case errors.Is(err, errs.ErrConcurrentModification):
//	    log.Println("order changed underneath us, retry")
//	case err != nil:
//	    log.Printf("transition failed: %v", err)
//	}
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for order transition operations.
// Requires a UoWFactory coordinating the order repository, the actor
// directory, and the notification outbox.
func NewTransitionOrderCommandHandler(uowFactory UoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// The aggregate enforces terminal-state, authorization, and payload
// rules; the handler adds the one check that needs I/O, that an
// assignment target is a registered active driver. A concurrent
// transition of the same order surfaces as errs.ErrConcurrentModification
// from the repository update.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	acting, err := actor.NewActor(cmd.ActorID(), cmd.ActorRole())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Target() == order.Assigned {
		if err = h.checkDriver(ctx, uow, cmd); err != nil {
			return err
		}
	}

	event, err := aggregate.ApplyTransition(acting, cmd.Target(), cmd.Payload())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.NotificationOutbox().Stage(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// checkDriver verifies the assignment target against the directory.
// A missing driver id is left to the aggregate, which reports it the
// same way.
func (h TransitionOrderCommandHandler) checkDriver(ctx context.Context, uow UoW, cmd TransitionOrderCommand) error {
	driverID := cmd.Payload().DriverID
	if driverID == nil {
		return nil
	}

	account, err := uow.ActorDirectory().Get(ctx, *driverID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: driver %s is not registered", order.ErrInvalidDriver, *driverID)
	}
	if err != nil {
		return err
	}

	if !account.IsActiveDriver() {
		return fmt.Errorf("%w: account %s is not an active driver", order.ErrInvalidDriver, *driverID)
	}

	return nil
}
