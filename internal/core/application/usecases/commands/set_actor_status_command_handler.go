package commands

import (
	"context"
)

// SetActorStatusCommandHandler handles account activation and deactivation.
type SetActorStatusCommandHandler struct {
	uowFactory ActorUoWFactory
}

// NewSetActorStatusCommandHandler creates a handler for account status changes.
// Requires an ActorUoWFactory for transactional persistence.
func NewSetActorStatusCommandHandler(uowFactory ActorUoWFactory) SetActorStatusCommandHandler {
	return SetActorStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h *SetActorStatusCommandHandler) Handle(ctx context.Context, cmd SetActorStatusCommand) error {
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

	directory := uow.ActorDirectory()
	account, err := directory.Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	if cmd.IsActive() {
		account.Activate()
	} else {
		account.Deactivate()
	}

	if err = directory.Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
