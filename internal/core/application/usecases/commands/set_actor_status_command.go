package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var ErrSetActorStatusCommandIsNotConstructed = errors.New(
	"SetActorStatusCommand must be created via NewSetActorStatusCommand constructor",
)

// SetActorStatusCommand represents a request to activate or deactivate a
// directory account. Deactivated drivers are no longer eligible for
// assignment; deactivated restaurants can no longer place orders.
type SetActorStatusCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	isActive bool

	guard guard.ConstructorGuard
}

// NewSetActorStatusCommand creates a command to change an account's
// active flag.
func NewSetActorStatusCommand(actorID kernel.UUID, isActive bool) (SetActorStatusCommand, error) {
	statusCommand := SetActorStatusCommand{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := statusCommand.setActorID(actorID); err != nil {
		return SetActorStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetActorStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetActorStatusCommandIsNotConstructed)
}

// ActorID returns the identifier of the account to change.
func (c SetActorStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// IsActive returns the requested active flag.
func (c SetActorStatusCommand) IsActive() bool {
	return c.isActive
}

func (c *SetActorStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
