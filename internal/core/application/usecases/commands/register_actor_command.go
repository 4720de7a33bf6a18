package commands

import (
	"errors"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var ErrRegisterActorCommandIsNotConstructed = errors.New(
	"RegisterActorCommand must be created via NewRegisterActorCommand constructor",
)

// RegisterActorCommand represents a request to register a restaurant,
// driver, or admin account in the actor directory.
type RegisterActorCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	name    string
	role    actor.Role

	guard guard.ConstructorGuard
}

// NewRegisterActorCommand creates a command to register a new account.
// Validates that the identifier is valid, the name is present, and the
// role is one of the known roles.
func NewRegisterActorCommand(actorID kernel.UUID, name string, role actor.Role) (RegisterActorCommand, error) {
	registerCommand := RegisterActorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setActorID(actorID),
		registerCommand.setName(name),
		registerCommand.setRole(role),
	); err != nil {
		return RegisterActorCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterActorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterActorCommandIsNotConstructed)
}

// ActorID returns the identifier for the new account.
func (c RegisterActorCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the account's display name.
func (c RegisterActorCommand) Name() string {
	return c.name
}

// Role returns the account's role.
func (c RegisterActorCommand) Role() actor.Role {
	return c.role
}

func (c *RegisterActorCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RegisterActorCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterActorCommand) setRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
