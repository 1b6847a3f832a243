package repository

import (
	"context"
	"errors"

	"myfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist or does not
// belong to the requesting user. The two cases are deliberately
// indistinguishable so that foreign orders cannot be probed.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists a new order with a server-assigned ID and timestamp.
	Create(ctx context.Context, order *entity.Order) error

	// FindByIDAndUser retrieves an order scoped to its owner.
	FindByIDAndUser(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error)

	// ListByUser returns a user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAll returns every order, newest first. Administrative listing.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// Delete removes an order row outright. Deleting an already-deleted
	// order is a no-op.
	Delete(ctx context.Context, orderID uuid.UUID) error
}
