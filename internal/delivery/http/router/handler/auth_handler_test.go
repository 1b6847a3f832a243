package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"myfarm/internal/delivery/http/middleware"
	"myfarm/internal/domain/entity"
	"myfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authUsecaseStub struct {
	lastSignup *usecase.SignupInput
	output     *usecase.SessionOutput
	user       *entity.User
}

func (s *authUsecaseStub) Signup(_ context.Context, input *usecase.SignupInput) (*usecase.SessionOutput, error) {
	s.lastSignup = input

	return s.output, nil
}

func (s *authUsecaseStub) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.SessionOutput, error) {
	return s.output, nil
}

func (s *authUsecaseStub) Me(_ context.Context, _ uuid.UUID) (*entity.User, error) {
	return s.user, nil
}

func TestAuthHandler_Signup_ResponseShape(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	stub := &authUsecaseStub{output: &usecase.SessionOutput{User: user, AccessToken: "token-123"}}
	h := NewAuthHandler(stub, discardLogger())

	e := echo.New()
	body := `{"email":"alice@example.com","password":"secret","fullName":"Alice"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, stub.lastSignup)
	assert.Equal(t, "alice@example.com", stub.lastSignup.Email)
	require.NotNil(t, stub.lastSignup.FullName)
	assert.Equal(t, "Alice", *stub.lastSignup.FullName)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			User struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
			Session struct {
				AccessToken string `json:"access_token"`
				User        struct {
					ID string `json:"id"`
				} `json:"user"`
			} `json:"session"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, user.ID.String(), envelope.Data.User.ID)
	assert.Equal(t, "alice@example.com", envelope.Data.User.Email)
	assert.Equal(t, "token-123", envelope.Data.Session.AccessToken)
	assert.Equal(t, user.ID.String(), envelope.Data.Session.User.ID)

	// The password hash never appears in a response.
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestAuthHandler_Me_ReturnsCallerIdentity(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	stub := &authUsecaseStub{user: user}
	h := NewAuthHandler(stub, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, user.ID)

	err := h.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.Contains(t, rec.Body.String(), "alice@example.com")
}

func TestAuthHandler_Me_WithoutIdentityIsForbidden(t *testing.T) {
	stub := &authUsecaseStub{}
	h := NewAuthHandler(stub, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
