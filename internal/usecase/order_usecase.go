package usecase

import (
	"context"

	"myfarm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	ProductID  string
	Quantity   int
	TotalPrice decimal.Decimal
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// CreateOrder places a pending order for the caller.
	CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// ListOrders returns the caller's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// CancelOrder deletes an order the caller owns, provided the cancellation
	// window has not elapsed.
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) error

	// ListAllOrders returns every order, newest first. Administrative listing.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)
}
