package commands

import (
	"errors"

	"distribution/internal/pkg/guard"
)

var ErrRelayNotificationsCommandIsNotConstructed = errors.New(
	"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
)

// RelayNotificationsCommand represents a request to drain the notification
// outbox and deliver staged status-change notifications.
type RelayNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewRelayNotificationsCommand creates a command to relay staged notifications.
// This is a parameterless command triggered by the relay job.
func NewRelayNotificationsCommand() RelayNotificationsCommand {
	return RelayNotificationsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}
