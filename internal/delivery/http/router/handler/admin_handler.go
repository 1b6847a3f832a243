package handler

import (
	"log/slog"
	"net/http"
	"time"

	"myfarm/internal/delivery/http/response"
	"myfarm/internal/domain/entity"
	"myfarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves the cross-user administrative listings.
type AdminHandler struct {
	profileUC usecase.ProfileUsecase
	orderUC   usecase.OrderUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	profileUC usecase.ProfileUsecase,
	orderUC usecase.OrderUsecase,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		profileUC: profileUC,
		orderUC:   orderUC,
		logger:    logger,
	}
}

// adminProfilePayload is a profile row joined with its owner's account data.
type adminProfilePayload struct {
	profilePayload

	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

func toAdminProfilePayloads(profiles []*entity.AdminProfile) []adminProfilePayload {
	payloads := make([]adminProfilePayload, 0, len(profiles))
	for _, profile := range profiles {
		payloads = append(payloads, adminProfilePayload{
			profilePayload: toProfilePayload(&profile.Profile),
			Email:          profile.Email,
			JoinedAt:       profile.JoinedAt,
		})
	}

	return payloads
}

// ListProfiles returns every profile with its owner's email, newest user
// first.
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.profileUC.ListProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		map[string][]adminProfilePayload{"profiles": toAdminProfilePayloads(profiles)}, "")
}

// ListOrders returns every order across all users, newest first.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		map[string][]orderPayload{"orders": toOrderPayloads(orders)}, "")
}
