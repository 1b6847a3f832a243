package handler

import (
	"log/slog"
	"net/http"
	"time"

	"myfarm/internal/delivery/http/response"
	"myfarm/internal/domain/entity"
	"myfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// updateProfileRequest accepts both field spellings the clients use. The
// snake_case spelling wins when a request carries both.
type updateProfileRequest struct {
	FullName       *string `json:"full_name"`
	FullNameCamel  *string `json:"fullName"`
	Address        *string `json:"address"`
	GPSLocation    *string `json:"gps_location"`
	GPSLocCamel    *string `json:"gpsLocation"`
	PhoneNumber    *string `json:"phone_number"`
	PhoneNumCamel  *string `json:"phoneNumber"`
	Birthday       *string `json:"birthday"`
	Gender         *string `json:"gender"`
	ReferralSource *string `json:"referral_source"`
	ReferralCamel  *string `json:"referralSource"`
}

// preferSnake resolves the dual spellings of a profile field.
func preferSnake(snake, camel *string) *string {
	if snake != nil {
		return snake
	}

	return camel
}

// profilePayload is the public shape of a profile.
type profilePayload struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	FullName       *string   `json:"full_name"`
	Address        *string   `json:"address"`
	GPSLocation    *string   `json:"gps_location"`
	PhoneNumber    *string   `json:"phone_number"`
	Birthday       *string   `json:"birthday"`
	Gender         *string   `json:"gender"`
	ReferralSource *string   `json:"referral_source"`
	ReferralID     string    `json:"referral_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func toProfilePayload(profile *entity.Profile) profilePayload {
	return profilePayload{
		ID:             profile.ID.String(),
		UserID:         profile.UserID.String(),
		FullName:       profile.FullName,
		Address:        profile.Address,
		GPSLocation:    profile.GPSLocation,
		PhoneNumber:    profile.PhoneNumber,
		Birthday:       profile.Birthday,
		Gender:         profile.Gender,
		ReferralSource: profile.ReferralSource,
		ReferralID:     profile.ReferralID,
		CreatedAt:      profile.UserCreatedAt,
	}
}

// pathUserID parses the user ID path parameter. Ownership is already
// enforced by the route middleware before the handler runs.
func pathUserID(c echo.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetProfile returns the profile owned by the user in the path.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		map[string]profilePayload{"profile": toProfilePayload(profile)}, "")
}

// UpdateProfile applies a partial update to the profile owned by the user in
// the path. Absent fields keep their stored values.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FullName:       preferSnake(req.FullName, req.FullNameCamel),
		Address:        req.Address,
		GPSLocation:    preferSnake(req.GPSLocation, req.GPSLocCamel),
		PhoneNumber:    preferSnake(req.PhoneNumber, req.PhoneNumCamel),
		Birthday:       req.Birthday,
		Gender:         req.Gender,
		ReferralSource: preferSnake(req.ReferralSource, req.ReferralCamel),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK,
		map[string]profilePayload{"profile": toProfilePayload(profile)}, "Profile updated successfully")
}
