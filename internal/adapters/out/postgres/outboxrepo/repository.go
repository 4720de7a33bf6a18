package outboxrepo

import (
	"context"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNotificationOutbox implements NotificationOutbox using GORM.
type GormNotificationOutbox struct {
	db *gorm.DB
}

// NewGormNotificationOutbox creates a new GORM notification outbox.
func NewGormNotificationOutbox(db *gorm.DB) *GormNotificationOutbox {
	return &GormNotificationOutbox{db: db}
}

// Stage records the event for later delivery.
func (r *GormNotificationOutbox) Stage(ctx context.Context, event order.OrderStatusChanged) error {
	dto := fromEvent(kernel.NewUUID(), event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending retrieves up to limit undelivered notifications, oldest first.
func (r *GormNotificationOutbox) GetPending(ctx context.Context, limit int) ([]ports.Notification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]ports.Notification, 0, len(dtos))
	for _, dto := range dtos {
		notification, convErr := toNotification(dto)
		if convErr != nil {
			return nil, convErr
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// MarkSent marks the given notifications as delivered.
func (r *GormNotificationOutbox) MarkSent(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id IN ?", raw).
		Update("sent_at", now).Error
}
