package queries

import (
	"context"
	"database/sql"

	"distribution/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDriverDeliveriesQueryHandler retrieves a driver's deliveries from the database.
type GetDriverDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverDeliveriesQueryHandler creates a handler for driver delivery queries.
// Requires a GORM database connection for query execution.
func NewGetDriverDeliveriesQueryHandler(db *gorm.DB) GetDriverDeliveriesQueryHandler {
	return GetDriverDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders assigned to the driver.
// Returns the most recently updated deliveries first.
func (h GetDriverDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDriverDeliveriesQuery,
) ([]GetDriverDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetDriverDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			status,
			total_amount,
			picked_up_at,
			delivered_at
		FROM orders
		WHERE driver_id = ?
		ORDER BY updated_at DESC, id
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			restaurantID uuid.UUID
			status       string
			totalAmount  decimal.Decimal
			pickedUpAt   sql.NullTime
			deliveredAt  sql.NullTime
		)

		if err = rows.Scan(&id, &restaurantID, &status, &totalAmount, &pickedUpAt, &deliveredAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ownerID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}

		total, moneyErr := kernel.MoneyFromDecimal(totalAmount)
		if moneyErr != nil {
			return nil, moneyErr
		}

		resp := GetDriverDeliveriesQueryResponse{
			ID:           orderID,
			RestaurantID: ownerID,
			Status:       status,
			TotalAmount:  total,
		}
		if pickedUpAt.Valid {
			t := pickedUpAt.Time
			resp.PickedUpAt = &t
		}
		if deliveredAt.Valid {
			t := deliveredAt.Time
			resp.DeliveredAt = &t
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
