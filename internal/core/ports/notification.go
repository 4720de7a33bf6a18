package ports

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
)

// Notification is a staged status-change message awaiting delivery.
type Notification struct {
	ID    kernel.UUID
	Event order.OrderStatusChanged
}

// NotificationOutbox stages status-change notifications inside the same
// transaction that records the transition. A relay later drains the
// staged rows and hands them to a NotificationPublisher. Delivery is
// best effort: a failed publish never rolls back the transition that
// produced the event.
type NotificationOutbox interface {
	// Stage records the event for later delivery.
	Stage(ctx context.Context, event order.OrderStatusChanged) error

	// GetPending retrieves up to limit staged notifications, oldest first.
	GetPending(ctx context.Context, limit int) ([]Notification, error)

	// MarkSent marks the given notifications as delivered.
	MarkSent(ctx context.Context, ids []kernel.UUID) error
}

// NotificationPublisher delivers a single notification to the outside
// world (counterparty webhook, message broker, or just a log line).
type NotificationPublisher interface {
	Publish(ctx context.Context, notification Notification) error
}
