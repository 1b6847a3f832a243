package impl

import (
	"context"
	"testing"
	"time"

	"myfarm/internal/domain/entity"
	domainerrors "myfarm/internal/domain/errors"
	"myfarm/internal/domain/repository"
	mockRepo "myfarm/internal/mocks/repository"
	"myfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder_RoundsTotalPrice(t *testing.T) {
	fx := createTestOrderService(t, time.Minute)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
			RunAndReturn(func(_ context.Context, order *entity.Order) error {
				order.ID = uuid.New()
				order.CreatedAt = time.Now()

				return nil
			})
	})

	order, err := fx.service.CreateOrder(ctx, userID, &usecase.CreateOrderInput{
		ProductID:  "tomato-box",
		Quantity:   3,
		TotalPrice: decimal.RequireFromString("12.995"),
	})

	require.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("13.00")),
		"got %s", order.TotalPrice)
}

func TestOrderService_CancelOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t, time.Minute)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByIDAndUser(ctx, orderID, userID).Return(nil, repository.ErrOrderNotFound)
	})

	err := fx.service.CancelOrder(ctx, userID, orderID)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_CancelOrder_WithinWindow(t *testing.T) {
	fx := createTestOrderService(t, time.Minute)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	createdAt := time.Now()
	fx.setClock(createdAt.Add(30 * time.Second))

	order := &entity.Order{ID: orderID, UserID: userID, CreatedAt: createdAt}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByIDAndUser(ctx, orderID, userID).Return(order, nil)
		mockOrderRepo.EXPECT().Delete(ctx, orderID).Return(nil)
	})

	err := fx.service.CancelOrder(ctx, userID, orderID)

	assert.NoError(t, err)
}

func TestOrderService_CancelOrder_ExactlyAtWindowStillCancels(t *testing.T) {
	fx := createTestOrderService(t, time.Minute)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	createdAt := time.Now()
	// Exactly the window elapsed is still permitted.
	fx.setClock(createdAt.Add(time.Minute))

	order := &entity.Order{ID: orderID, UserID: userID, CreatedAt: createdAt}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByIDAndUser(ctx, orderID, userID).Return(order, nil)
		mockOrderRepo.EXPECT().Delete(ctx, orderID).Return(nil)
	})

	err := fx.service.CancelOrder(ctx, userID, orderID)

	assert.NoError(t, err)
}

func TestOrderService_CancelOrder_WindowExpired(t *testing.T) {
	fx := createTestOrderService(t, time.Minute)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	createdAt := time.Now()
	fx.setClock(createdAt.Add(time.Minute + time.Millisecond))

	order := &entity.Order{ID: orderID, UserID: userID, CreatedAt: createdAt}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().FindByIDAndUser(ctx, orderID, userID).Return(order, nil)
	})

	err := fx.service.CancelOrder(ctx, userID, orderID)

	assert.True(t, errors.Is(err, domainerrors.ErrCancellationWindowExpired))
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t, time.Minute)

	ctx := context.Background()
	userID := uuid.New()
	rows := []*entity.Order{
		{ID: uuid.New(), UserID: userID, CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: userID, CreatedAt: time.Now().Add(-time.Hour)},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().ListByUser(ctx, userID).Return(rows, nil)
	})

	orders, err := fx.service.ListOrders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, rows, orders)
}

func TestOrderService_ListAllOrders_Error(t *testing.T) {
	fx := createTestOrderService(t, time.Minute)

	ctx := context.Background()
	dbError := errors.New("database connection failed")

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().ListAll(ctx).Return(nil, dbError)
	})

	orders, err := fx.service.ListAllOrders(ctx)

	assert.Nil(t, orders)
	assert.Contains(t, err.Error(), "failed to list all orders")
}
