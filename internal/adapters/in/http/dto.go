package http

import (
	"time"

	"github.com/google/uuid"
)

// Request and response bodies for the REST API. Money amounts travel as
// decimal strings so clients never see binary floating point.

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one requested line in an order placement request.
type NewOrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// NewOrder is the order placement request body.
type NewOrder struct {
	Items []NewOrderItem `json:"items"`
	Notes string         `json:"notes,omitempty"`
}

// OrderCreated is returned after a successful placement.
type OrderCreated struct {
	ID uuid.UUID `json:"id"`
}

// ItemPrice is one per-item entry of a pricing payload.
type ItemPrice struct {
	ProductID    uuid.UUID `json:"product_id"`
	CostPrice    string    `json:"cost_price"`
	SellingPrice string    `json:"selling_price"`
}

// TransitionRequest is the transition request body. Target names the
// requested status; the remaining fields are required only by the
// transitions that consume them.
type TransitionRequest struct {
	Target       string      `json:"target"`
	Pricing      []ItemPrice `json:"pricing,omitempty"`
	DriverID     *uuid.UUID  `json:"driver_id,omitempty"`
	CancelReason string      `json:"cancel_reason,omitempty"`
}

// NewActor is the account registration request body.
type NewActor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// ActorStatus is the account activation request body.
type ActorStatus struct {
	IsActive bool `json:"is_active"`
}

// Order is the open-order listing entry.
type Order struct {
	ID           uuid.UUID  `json:"id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	DriverID     *uuid.UUID `json:"driver_id,omitempty"`
	Status       string     `json:"status"`
	TotalAmount  string     `json:"total_amount"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Delivery is one entry on a driver's delivery sheet.
type Delivery struct {
	ID           uuid.UUID  `json:"id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	Status       string     `json:"status"`
	TotalAmount  string     `json:"total_amount"`
	PickedUpAt   *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
}
