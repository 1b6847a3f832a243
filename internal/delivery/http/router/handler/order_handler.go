package handler

import (
	"log/slog"
	"net/http"
	"time"

	"myfarm/internal/delivery/http/middleware"
	"myfarm/internal/delivery/http/response"
	"myfarm/internal/domain/entity"
	"myfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type createOrderRequest struct {
	ProductID  string          `json:"product_id" validate:"required"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
	TotalPrice decimal.Decimal `json:"total_price" validate:"required"`
}

// orderPayload is the public shape of an order.
type orderPayload struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toOrderPayload(order *entity.Order) orderPayload {
	return orderPayload{
		ID:         order.ID.String(),
		UserID:     order.UserID.String(),
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
	}
}

func toOrderPayloads(orders []*entity.Order) []orderPayload {
	payloads := make([]orderPayload, 0, len(orders))
	for _, order := range orders {
		payloads = append(payloads, toOrderPayload(order))
	}

	return payloads
}

// callerID resolves the authenticated user from the request context.
func callerID(c echo.Context) (uuid.UUID, bool) {
	return middleware.AuthenticatedUserID(c)
}

// CreateOrder places a pending order for the caller.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Forbidden(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), userID, &usecase.CreateOrderInput{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated,
		map[string]orderPayload{"order": toOrderPayload(order)}, "Order created successfully")
}

// ListOrders returns the caller's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Forbidden(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		map[string][]orderPayload{"orders": toOrderPayloads(orders)}, "")
}

// CancelOrder deletes an order the caller owns while the cancellation window
// is still open.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Forbidden(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	if err := h.uc.CancelOrder(c.Request().Context(), userID, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order cancelled successfully")
}
