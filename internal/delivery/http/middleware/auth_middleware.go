package middleware

import (
	"net/http"
	"strings"

	"myfarm/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUserID is where Authenticate stores the caller's ID.
	ContextKeyUserID = "userID"
	// ContextKeyEmail is where Authenticate stores the caller's email.
	ContextKeyEmail = "email"
)

// AuthMiddleware provides middleware for bearer token authentication and
// resource ownership checks.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token. A missing token is 401; a token
// that is present but fails validation (expired, tampered, wrong scheme) is
// 403, mirroring the distinction between "who are you" and "that's not valid".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Invalid or expired token"})
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)

		return next(c)
	}
}

// RequireOwner is a middleware factory that compares a user-id path parameter
// against the authenticated identity. The token is the source of truth for
// whose data is addressed; a mismatch is 403 regardless of whether the
// addressed user exists. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireOwner(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authUserID, ok := AuthenticatedUserID(c)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
			}

			pathUserID, err := uuid.Parse(c.Param(param))
			if err != nil || pathUserID != authUserID {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
			}

			return next(c)
		}
	}
}

// AuthenticatedUserID extracts the caller's ID set by Authenticate.
func AuthenticatedUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return id, ok
}

// AuthenticatedEmail extracts the caller's email set by Authenticate.
func AuthenticatedEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(ContextKeyEmail).(string)

	return email, ok
}
