package ports

import (
	"context"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
)

// ActorDirectory defines the persistence contract for registered actors.
// The directory is the source of truth for which restaurants, drivers
// and admins exist and whether they are currently active.
type ActorDirectory interface {
	// Add registers a new account.
	// The account must be valid and not already exist in the directory.
	Add(ctx context.Context, account *actor.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, account *actor.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*actor.Account, error)
}
