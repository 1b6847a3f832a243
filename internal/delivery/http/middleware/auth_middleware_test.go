package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"myfarm/internal/domain/service"
	mockService "myfarm/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header is missing")
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token format")
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("signature is invalid"))

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "Bearer bad-token")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthenticate_ValidTokenSetsIdentity(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good-token").
		Return(&service.Claims{UserID: userID, Email: "alice@example.com"}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "Bearer good-token")

	var seenID uuid.UUID
	var seenEmail string
	err := m.Authenticate(func(c echo.Context) error {
		seenID, _ = AuthenticatedUserID(c)
		seenEmail, _ = AuthenticatedEmail(c)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seenID)
	assert.Equal(t, "alice@example.com", seenEmail)
}

func newOwnerTestContext(t *testing.T, authUserID uuid.UUID, pathValue string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/profiles/"+pathValue, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(pathValue)
	c.Set(ContextKeyUserID, authUserID)

	return c, rec
}

func TestRequireOwner_Match(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	userID := uuid.New()
	c, rec := newOwnerTestContext(t, userID, userID.String())

	err := m.RequireOwner("userId")(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireOwner_Mismatch(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c, rec := newOwnerTestContext(t, uuid.New(), uuid.NewString())

	err := m.RequireOwner("userId")(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireOwner_UnparseableParam(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c, rec := newOwnerTestContext(t, uuid.New(), "not-a-uuid")

	err := m.RequireOwner("userId")(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireOwner_NoAuthenticatedIdentity(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/profiles/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.RequireOwner("userId")(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
