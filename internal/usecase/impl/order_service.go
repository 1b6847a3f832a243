package impl

import (
	"context"
	"log/slog"
	"time"

	"myfarm/config"
	deliverycontext "myfarm/internal/delivery/context"
	"myfarm/internal/domain/entity"
	domainerrors "myfarm/internal/domain/errors"
	"myfarm/internal/domain/repository"
	"myfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager          repository.TransactionManager
	cancellationWindow time.Duration
	logger             *slog.Logger

	// now is the clock used for the cancellation window check; tests swap it.
	now func() time.Time
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:          params.TxManager,
		cancellationWindow: params.Config.CancellationWindow(),
		logger:             params.Logger,
		now:                time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places a pending order for the caller. The total price is
// normalized to two fractional digits before it is stored.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("userID", userID), slog.String("productID", input.ProductID))

	order := &entity.Order{
		UserID:     userID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		TotalPrice: input.TotalPrice.Round(2),
		Status:     entity.OrderStatusPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns the caller's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// CancelOrder deletes an order the caller owns. The lookup is scoped to the
// owner, so a foreign or already-cancelled order is reported as not found;
// a lost race between two concurrent cancels resolves the same way. The
// window boundary is exclusive on the fail side: an elapsed time of exactly
// the window still cancels.
func (srv *orderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	srv.log(ctx).Info("Cancelling order", slog.Any("userID", userID), slog.Any("orderID", orderID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByIDAndUser(ctx, orderID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.WithStack(domainerrors.ErrOrderNotFound)
			}

			return errors.Wrap(err, "failed to find order")
		}

		if srv.now().Sub(order.CreatedAt) > srv.cancellationWindow {
			return errors.WithStack(domainerrors.ErrCancellationWindowExpired)
		}

		if err := orderRepo.Delete(ctx, orderID); err != nil {
			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// ListAllOrders returns every order, newest first.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list all orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
