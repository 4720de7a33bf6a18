// Package notifier delivers status-change notifications to the outside world.
package notifier

import (
	"context"
	"log/slog"

	"distribution/internal/core/ports"
)

// SlogPublisher writes notifications to the structured log.
// Stands in for a counterparty webhook or broker integration; the relay
// only depends on the NotificationPublisher port, so swapping the
// transport later does not touch the pipeline.
type SlogPublisher struct {
	logger *slog.Logger
}

// NewSlogPublisher creates a publisher that logs delivered notifications.
func NewSlogPublisher(logger *slog.Logger) *SlogPublisher {
	return &SlogPublisher{
		logger: logger.With("component", "notification_publisher"),
	}
}

// Publish logs the notification at info level.
func (p *SlogPublisher) Publish(ctx context.Context, notification ports.Notification) error {
	p.logger.InfoContext(ctx, "Order status changed",
		"notification_id", notification.ID.String(),
		"order_id", notification.Event.OrderID.String(),
		"from", notification.Event.From.String(),
		"to", notification.Event.To.String(),
		"actor_id", notification.Event.ActorID.String(),
		"occurred_at", notification.Event.OccurredAt,
	)
	return nil
}
