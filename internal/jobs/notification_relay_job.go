package jobs

import (
	"context"
	"errors"
	"log/slog"

	"distribution/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationRelayJob manages the scheduled draining of the notification outbox.
// Runs every five seconds to deliver staged status-change notifications.
type NotificationRelayJob struct {
	handler commands.RelayNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRelayJob creates a new job for relaying notifications.
// Uses RelayNotificationsCommandHandler to drain the outbox every five seconds.
func NewNotificationRelayJob(handler commands.RelayNotificationsCommandHandler, logger *slog.Logger) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_relay_job"),
	}
}

// Start begins the notification relay job to run every five seconds.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRelayNotificationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty outbox is an expected idle tick
			if !errors.Is(err, commands.ErrNoPendingNotifications) {
				j.logger.ErrorContext(ctx, "Notification relay job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every five seconds)")
	return nil
}

// Stop stops the notification relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
