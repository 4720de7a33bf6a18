package queries

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var ErrGetDriverDeliveriesQueryIsNotConstructed = errors.New(
	"GetDriverDeliveriesQuery must be created via NewGetDriverDeliveriesQuery constructor",
)

// GetDriverDeliveriesQuery retrieves all orders assigned to one driver,
// including finished deliveries. Used for driver work history and the
// driver's active run sheet.
type GetDriverDeliveriesQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverDeliveriesQuery creates a query for one driver's deliveries.
// Validates that the driver identifier is valid.
func NewGetDriverDeliveriesQuery(driverID kernel.UUID) (GetDriverDeliveriesQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverDeliveriesQuery{}, err
	}

	return GetDriverDeliveriesQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverDeliveriesQueryIsNotConstructed)
}

// DriverID returns the driver whose deliveries are requested.
func (q GetDriverDeliveriesQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetDriverDeliveriesQueryResponse represents one delivery on a driver's sheet.
type GetDriverDeliveriesQueryResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Status       string
	TotalAmount  kernel.Money
	PickedUpAt   *time.Time
	DeliveredAt  *time.Time
}
