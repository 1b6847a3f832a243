// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"myfarm/internal/delivery/http/middleware"
	"myfarm/internal/delivery/http/response"
	"myfarm/internal/domain/entity"
	"myfarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// signupRequest carries the signup payload. The optional profile fields use
// the camelCase spellings the clients send at signup time.
type signupRequest struct {
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	FullName       *string `json:"fullName"`
	Address        *string `json:"address"`
	GPSLocation    *string `json:"gpsLocation"`
	PhoneNumber    *string `json:"phoneNumber"`
	Birthday       *string `json:"birthday"`
	Gender         *string `json:"gender"`
	ReferralSource *string `json:"referralSource"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPayload is the public shape of a user. The password hash never leaves
// the domain layer.
type userPayload struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// sessionPayload mirrors the session object the original clients consume.
type sessionPayload struct {
	AccessToken string      `json:"access_token"`
	User        userPayload `json:"user"`
}

type authPayload struct {
	User    userPayload    `json:"user"`
	Session sessionPayload `json:"session"`
}

func toUserPayload(user *entity.User) userPayload {
	return userPayload{
		ID:        user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func toAuthPayload(output *usecase.SessionOutput) authPayload {
	user := toUserPayload(output.User)

	return authPayload{
		User: user,
		Session: sessionPayload{
			AccessToken: output.AccessToken,
			User:        user,
		},
	}
}

// Signup handles the account creation request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		Address:        req.Address,
		GPSLocation:    req.GPSLocation,
		PhoneNumber:    req.PhoneNumber,
		Birthday:       req.Birthday,
		Gender:         req.Gender,
		ReferralSource: req.ReferralSource,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthPayload(output), "Signup successful")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthPayload(output), "Login successful")
}

// Me returns the caller's identity as resolved from the bearer token.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		return response.Forbidden(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]userPayload{"user": toUserPayload(user)}, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
