// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and driver assignment. The version column
// backs the optimistic concurrency check performed on every update.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID      `gorm:"type:uuid;index"`
	Status       string          `gorm:"type:varchar(32);index"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(14,2)"`
	Notes        string
	Version      int
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime:false"`
	ConfirmedAt  *time.Time
	PickedUpAt   *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. Cost and selling prices stay
// NULL until the pricing transition fills them in.
type OrderItemDTO struct {
	OrderID      uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Quantity     int                 `gorm:"not null"`
	CostPrice    decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	SellingPrice decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	TotalPrice   decimal.Decimal     `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional driver assignment and items.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		DriverID:     driverID,
		Status:       aggregate.Status().String(),
		TotalAmount:  aggregate.TotalAmount().Decimal(),
		Notes:        aggregate.Notes(),
		Version:      aggregate.Version(),
		Items:        items,
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		ConfirmedAt:  aggregate.ConfirmedAt(),
		PickedUpAt:   aggregate.PickedUpAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		CancelledAt:  aggregate.CancelledAt(),
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) OrderItemDTO {
	dto := OrderItemDTO{
		OrderID:    orderID.Bytes(),
		ProductID:  item.ProductID().Bytes(),
		Quantity:   item.Quantity(),
		TotalPrice: item.TotalPrice().Decimal(),
	}
	if cost := item.CostPrice(); cost != nil {
		dto.CostPrice = decimal.NewNullDecimal(cost.Decimal())
	}
	if selling := item.SellingPrice(); selling != nil {
		dto.SellingPrice = decimal.NewNullDecimal(selling.Decimal())
	}
	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, items, and driver
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.MoneyFromDecimal(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, restaurantID, driverID,
		status, totalAmount, dto.Notes, items,
		dto.Version,
		dto.CreatedAt, dto.UpdatedAt,
		dto.ConfirmedAt, dto.PickedUpAt, dto.DeliveredAt, dto.CancelledAt,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var costPrice, sellingPrice *kernel.Money
	if dto.CostPrice.Valid {
		cost, costErr := kernel.MoneyFromDecimal(dto.CostPrice.Decimal)
		if costErr != nil {
			return nil, costErr
		}
		costPrice = &cost
	}
	if dto.SellingPrice.Valid {
		selling, sellingErr := kernel.MoneyFromDecimal(dto.SellingPrice.Decimal)
		if sellingErr != nil {
			return nil, sellingErr
		}
		sellingPrice = &selling
	}

	totalPrice, err := kernel.MoneyFromDecimal(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(productID, dto.Quantity, costPrice, sellingPrice, totalPrice)
}
