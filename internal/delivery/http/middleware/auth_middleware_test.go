package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"koor/internal/domain/entity"
	"koor/internal/domain/service"
	mockRepo "koor/internal/mocks/repository"
	mockService "koor/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockService.MockTokenService, *mockRepo.MockSessionRepository) {
	t.Helper()

	tokenSvc := mockService.NewMockTokenService(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	return NewAuthMiddleware(tokenSvc, sessionRepo), tokenSvc, sessionRepo
}

func performAuthenticated(m *AuthMiddleware, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = m.Authenticate(func(c echo.Context) error { return nil })(c)

	return c, rec
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	m, tokenSvc, sessionRepo := createTestAuthMiddleware(t)

	userID := uuid.New()
	sessionID := uuid.New()

	tokenSvc.EXPECT().ParseAccessToken("live-token").
		Return(&service.SessionClaims{UserID: userID, SessionID: sessionID}, nil)
	sessionRepo.EXPECT().FindByID(mock.Anything, sessionID).
		Return(&entity.Session{ID: sessionID, UserID: userID}, nil)

	c, _ := performAuthenticated(m, "Bearer live-token")

	gotUser, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotUser)

	gotSession, ok := SessionID(c)
	require.True(t, ok)
	assert.Equal(t, sessionID, gotSession)
}

func TestAuthenticate_NoTokenContinuesAnonymous(t *testing.T) {
	m, _, _ := createTestAuthMiddleware(t)

	c, _ := performAuthenticated(m, "")

	_, ok := UserID(c)
	assert.False(t, ok)
}

func TestAuthenticate_BadTokenContinuesAnonymous(t *testing.T) {
	m, tokenSvc, _ := createTestAuthMiddleware(t)

	tokenSvc.EXPECT().ParseAccessToken("bad-token").Return(nil, service.ErrTokenInvalid)

	c, _ := performAuthenticated(m, "Bearer bad-token")

	_, ok := UserID(c)
	assert.False(t, ok)
}

func TestAuthenticate_RevokedSessionContinuesAnonymous(t *testing.T) {
	m, tokenSvc, sessionRepo := createTestAuthMiddleware(t)

	sessionID := uuid.New()
	revokedAt := time.Now().Add(-time.Minute)

	tokenSvc.EXPECT().ParseAccessToken("live-token").
		Return(&service.SessionClaims{UserID: uuid.New(), SessionID: sessionID}, nil)
	sessionRepo.EXPECT().FindByID(mock.Anything, sessionID).
		Return(&entity.Session{ID: sessionID, ExpiresAt: &revokedAt}, nil)

	c, _ := performAuthenticated(m, "Bearer live-token")

	_, ok := UserID(c)
	assert.False(t, ok)
}

func TestRequireAuth(t *testing.T) {
	m, _, _ := createTestAuthMiddleware(t)
	e := echo.New()

	t.Run("identity present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(ContextKeyUserID, uuid.New())

		called := false
		err := m.RequireAuth(func(c echo.Context) error {
			called = true

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("identity missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := m.RequireAuth(func(c echo.Context) error { return nil })(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Authentication credentials were not provided.")
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{name: "well formed", header: "Bearer abc.def.ghi", want: "abc.def.ghi", ok: true},
		{name: "missing header", header: "", ok: false},
		{name: "wrong scheme", header: "Basic abc", ok: false},
		{name: "bare scheme", header: "Bearer ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, ok := BearerToken(req)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
