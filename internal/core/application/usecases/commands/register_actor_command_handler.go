package commands

import (
	"context"

	"distribution/internal/core/domain/model/actor"
)

// RegisterActorCommandHandler handles account registration.
// New accounts are created active and can immediately take part in the
// order lifecycle.
type RegisterActorCommandHandler struct {
	uowFactory ActorUoWFactory
}

// NewRegisterActorCommandHandler creates a handler for account registration.
// Requires an ActorUoWFactory for transactional persistence.
func NewRegisterActorCommandHandler(uowFactory ActorUoWFactory) RegisterActorCommandHandler {
	return RegisterActorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterActorCommandHandler) Handle(ctx context.Context, cmd RegisterActorCommand) error {
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

	account, err := actor.NewAccount(cmd.ActorID(), cmd.Name(), cmd.Role())
	if err != nil {
		return err
	}

	if err = uow.ActorDirectory().Add(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
