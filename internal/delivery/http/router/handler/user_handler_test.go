package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"koor/internal/delivery/http/middleware"
	"koor/internal/delivery/http/validator"
	"koor/internal/domain/entity"
	mockUsecase "koor/internal/mocks/usecase"
	"koor/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserHandler(t *testing.T) (*UserHandler, *mockUsecase.MockUserUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserHandler(uc, logger), uc
}

func performJSON(handler echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, handler(c)
}

func authOutputFor(user *entity.User) *usecase.AuthOutput {
	return &usecase.AuthOutput{
		User:         user,
		SessionID:    uuid.New(),
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}
}

func TestRegisterHandler_CreatedWithToken(t *testing.T) {
	h, uc := createTestUserHandler(t)

	user := &entity.User{ID: uuid.New(), Email: "new@example.com", Role: entity.RoleJobSeeker}
	output := authOutputFor(user)
	output.ResetToken = "verification-token"

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("usecase.RegisterInput")).
		Return(output, nil)

	rec, err := performJSON(h.Register, http.MethodPost, "/users",
		`{"email":"new@example.com","password":"password123","role":"job_seeker"}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"verification-token"`)
	assert.Contains(t, rec.Body.String(), "User Created Successfully")
	assert.Equal(t, "access-token", rec.Header().Get(middleware.HeaderAccessToken))
	assert.Equal(t, "refresh-token", rec.Header().Get(middleware.HeaderRefreshToken))
}

func TestLoginHandler_SessionCreated(t *testing.T) {
	h, uc := createTestUserHandler(t)

	user := &entity.User{ID: uuid.New(), Email: "user@example.com", Role: entity.RoleEmployer}
	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(authOutputFor(user), nil)

	rec, err := performJSON(h.Login, http.MethodPost, "/users/session",
		`{"email":"user@example.com","password":"password123"}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "access-token", rec.Header().Get(middleware.HeaderAccessToken))
	assert.Equal(t, "refresh-token", rec.Header().Get(middleware.HeaderRefreshToken))
}

func TestSocialLoginHandler_SessionCreated(t *testing.T) {
	h, uc := createTestUserHandler(t)

	user := &entity.User{ID: uuid.New(), Email: "user@example.com", Role: entity.RoleVendor}
	uc.EXPECT().
		SocialLogin(mock.Anything, mock.AnythingOfType("usecase.SocialLoginInput")).
		Return(authOutputFor(user), nil)

	rec, err := performJSON(h.SocialLogin, http.MethodPost, "/users/social-login",
		`{"email":"user@example.com","source":"google","role":"vendor"}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
