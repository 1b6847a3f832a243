package postgres

import (
	"context"

	"myfarm/internal/domain/entity"
	domainerrors "myfarm/internal/domain/errors"
	"myfarm/internal/domain/repository"
	"myfarm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order with a server-assigned ID and timestamp.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references an unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.Status = entity.OrderStatus(orderM.Status)
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByIDAndUser retrieves an order scoped to its owner. An order belonging
// to another user is reported as not found.
func (repo *orderRepository) FindByIDAndUser(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns a user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomainSlice(orderModels), nil
}

// ListAll returns every order, newest first.
func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return toOrderDomainSlice(orderModels), nil
}

// Delete removes an order row outright. Deleting a row that is already gone
// affects nothing and returns nil, which keeps concurrent double-cancels safe.
func (repo *orderRepository) Delete(ctx context.Context, orderID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", orderID).
		Delete(&model.OrderModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order")
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:         data.ID,
		UserID:     data.UserID,
		ProductID:  data.ProductID,
		Quantity:   data.Quantity,
		TotalPrice: data.TotalPrice,
		Status:     entity.OrderStatus(data.Status),
		CreatedAt:  data.CreatedAt,
	}
}

func toOrderDomainSlice(models []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrderDomain(&models[i]))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	if order == nil {
		return nil
	}

	return &model.OrderModel{
		ID:         order.ID,
		UserID:     order.UserID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
	}
}
