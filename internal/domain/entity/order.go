package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every order. Cancellation
	// removes the row outright, so there is no cancelled state to transition to.
	OrderStatusPending OrderStatus = "pending"
)

// Order belongs to exactly one User. It is created on placement and deleted
// (not soft-deleted) by its owner within the cancellation window.
type Order struct {
	ID         uuid.UUID
	UserID     uuid.UUID // Immutable owner reference.
	ProductID  string
	Quantity   int
	TotalPrice decimal.Decimal // Fixed-point, two fractional digits.
	Status     OrderStatus
	CreatedAt  time.Time // Server-set, immutable; anchors the cancellation window.
}
