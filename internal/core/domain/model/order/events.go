package order

import (
	"time"

	"distribution/internal/core/domain/model/kernel"
)

// OrderStatusChanged is the domain event emitted after a transition has been
// applied and persisted. The notification collaborator consumes it
// best-effort; delivery failures never fail the transition itself.
type OrderStatusChanged struct {
	OrderID    kernel.UUID
	From       Status
	To         Status
	ActorID    kernel.UUID
	OccurredAt time.Time
}
