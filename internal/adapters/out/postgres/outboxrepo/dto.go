// Package outboxrepo persists staged status-change notifications.
// Notifications are written in the same transaction as the order update
// and drained later by the relay job, so a transition is never lost and
// a slow downstream never blocks a transition.
package outboxrepo

import (
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/ports"

	"github.com/google/uuid"
)

// NotificationDTO represents one staged notification row.
// SentAt stays NULL until the relay delivers the notification.
type NotificationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	FromStatus string    `gorm:"type:varchar(32)"`
	ToStatus   string    `gorm:"type:varchar(32)"`
	ActorID    uuid.UUID `gorm:"type:uuid"`
	OccurredAt time.Time
	SentAt     *time.Time `gorm:"index"`
}

// TableName specifies the database table name for staged notifications.
func (NotificationDTO) TableName() string {
	return "notification_outbox"
}

func fromEvent(id kernel.UUID, event order.OrderStatusChanged) NotificationDTO {
	return NotificationDTO{
		ID:         id.Bytes(),
		OrderID:    event.OrderID.Bytes(),
		FromStatus: event.From.String(),
		ToStatus:   event.To.String(),
		ActorID:    event.ActorID.Bytes(),
		OccurredAt: event.OccurredAt,
	}
}

func toNotification(dto NotificationDTO) (ports.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Notification{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return ports.Notification{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return ports.Notification{}, err
	}

	from, err := order.StatusFromString(dto.FromStatus)
	if err != nil {
		return ports.Notification{}, err
	}

	to, err := order.StatusFromString(dto.ToStatus)
	if err != nil {
		return ports.Notification{}, err
	}

	return ports.Notification{
		ID: id,
		Event: order.OrderStatusChanged{
			OrderID:    orderID,
			From:       from,
			To:         to,
			ActorID:    actorID,
			OccurredAt: dto.OccurredAt,
		},
	}, nil
}
