package queries

import (
	"context"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves open orders from the database.
// Filters out terminal orders to provide active workload visibility.
//
// Example:
//
//	handler := NewGetUncompletedOrdersQueryHandler(db)
//	query := NewGetUncompletedOrdersQuery()
//
//	openOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get open orders: %v", err)
//	    return err
//	}
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all uncompleted orders.
// Returns orders in any non-terminal status, oldest first.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			driver_id,
			status,
			total_amount,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
	`, order.Completed.String(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			restaurantID uuid.UUID
			driverID     uuid.NullUUID
			status       string
			totalAmount  decimal.Decimal
			createdAt    time.Time
		)

		if err = rows.Scan(&id, &restaurantID, &driverID, &status, &totalAmount, &createdAt); err != nil {
			return nil, err
		}

		resp, respErr := newUncompletedOrderResponse(id, restaurantID, driverID, status, totalAmount, createdAt)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func newUncompletedOrderResponse(
	id uuid.UUID,
	restaurantID uuid.UUID,
	driverID uuid.NullUUID,
	status string,
	totalAmount decimal.Decimal,
	createdAt time.Time,
) (GetUncompletedOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetUncompletedOrdersQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return GetUncompletedOrdersQueryResponse{}, err
	}

	var driver *kernel.UUID
	if driverID.Valid {
		parsed, driverErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if driverErr != nil {
			return GetUncompletedOrdersQueryResponse{}, driverErr
		}
		driver = &parsed
	}

	total, err := kernel.MoneyFromDecimal(totalAmount)
	if err != nil {
		return GetUncompletedOrdersQueryResponse{}, err
	}

	return GetUncompletedOrdersQueryResponse{
		ID:           orderID,
		RestaurantID: ownerID,
		DriverID:     driver,
		Status:       status,
		TotalAmount:  total,
		CreatedAt:    createdAt,
	}, nil
}
