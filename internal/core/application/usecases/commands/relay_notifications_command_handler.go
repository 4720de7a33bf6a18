package commands

import (
	"context"
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/ports"
)

// ErrNoPendingNotifications is returned when the outbox holds nothing to
// deliver. The relay job treats it as an expected idle tick.
var ErrNoPendingNotifications = errors.New("no pending notifications found")

// relayBatchSize caps how many notifications one relay run delivers.
const relayBatchSize = 100

// RelayNotificationsCommandHandler drains the notification outbox.
// Delivery is best effort: a notification that fails to publish stays
// pending and is retried on the next run, while the rest of the batch
// still goes out.
type RelayNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	publisher  ports.NotificationPublisher
}

// NewRelayNotificationsCommandHandler creates a handler for notification relay runs.
// Requires a NotificationUoWFactory for outbox access and a publisher
// for the actual delivery.
func NewRelayNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	publisher ports.NotificationPublisher,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes one relay run.
// Publishes up to relayBatchSize pending notifications and marks the
// delivered ones as sent. Publish failures are joined into the returned
// error but never prevent the delivered ones from being marked.
func (h RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) error {
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

	outbox := uow.NotificationOutbox()
	pending, err := outbox.GetPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoPendingNotifications
	}

	var publishErrs error
	delivered := make([]kernel.UUID, 0, len(pending))
	for _, notification := range pending {
		if publishErr := h.publisher.Publish(ctx, notification); publishErr != nil {
			publishErrs = errors.Join(publishErrs, publishErr)
			continue
		}
		delivered = append(delivered, notification.ID)
	}

	if len(delivered) > 0 {
		if err = outbox.MarkSent(ctx, delivered); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return publishErrs
}
