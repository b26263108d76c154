package middleware

import (
	"io"
	"log/slog"
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

type interceptorFixtures struct {
	tokenSvc    *mockService.MockTokenService
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestInterceptor(t *testing.T) (*RefreshInterceptor, interceptorFixtures) {
	t.Helper()

	fx := interceptorFixtures{
		tokenSvc:    mockService.NewMockTokenService(t),
		sessionRepo: mockRepo.NewMockSessionRepository(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRefreshInterceptor(fx.tokenSvc, fx.sessionRepo, logger), fx
}

// countingHandler records every dispatch: how often it ran and which
// Authorization header each run observed.
type countingHandler struct {
	calls   int
	headers []string
}

func (h *countingHandler) handle(c echo.Context) error {
	h.calls++
	h.headers = append(h.headers, c.Request().Header.Get("Authorization"))

	return c.JSON(http.StatusOK, map[string]int{"dispatch": h.calls})
}

func performIntercepted(interceptor *RefreshInterceptor, handler *countingHandler, mutate func(*http.Request)) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = interceptor.Intercept(handler.handle)(c)

	return rec
}

func TestIntercept_NoTokenPassesThrough(t *testing.T) {
	interceptor, _ := createTestInterceptor(t)
	handler := &countingHandler{}

	rec := performIntercepted(interceptor, handler, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, handler.calls)
	assert.Empty(t, rec.Header().Get(HeaderAccessToken))
}

func TestIntercept_ValidTokenPassesThrough(t *testing.T) {
	interceptor, fx := createTestInterceptor(t)
	handler := &countingHandler{}

	claims := &service.SessionClaims{UserID: uuid.New(), SessionID: uuid.New()}
	fx.tokenSvc.EXPECT().ParseAccessToken("live-token").Return(claims, nil)

	rec := performIntercepted(interceptor, handler, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer live-token")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, handler.calls)
	assert.Equal(t, []string{"Bearer live-token"}, handler.headers)
	assert.Empty(t, rec.Header().Get(HeaderAccessToken))
}

func TestIntercept_ExpiredWithGoodRefresh(t *testing.T) {
	interceptor, fx := createTestInterceptor(t)
	handler := &countingHandler{}

	userID := uuid.New()
	sessionID := uuid.New()

	fx.tokenSvc.EXPECT().ParseAccessToken("expired-token").Return(nil, service.ErrTokenExpired)
	fx.tokenSvc.EXPECT().ParseRefreshToken("refresh-token").
		Return(&service.SessionClaims{UserID: userID, SessionID: sessionID}, nil)
	fx.sessionRepo.EXPECT().FindByID(mock.Anything, sessionID).
		Return(&entity.Session{ID: sessionID, UserID: userID}, nil)
	fx.tokenSvc.EXPECT().GenerateAccessToken(userID, sessionID).Return("fresh-token", nil)

	rec := performIntercepted(interceptor, handler, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer expired-token")
		req.Header.Set(HeaderRefreshToken, "refresh-token")
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 2, handler.calls)

	// First pass saw the request exactly as sent; the re-dispatch carried
	// the replacement token.
	assert.Equal(t, "Bearer expired-token", handler.headers[0])
	assert.Equal(t, "Bearer fresh-token", handler.headers[1])

	// Only the second pass reached the client.
	assert.Contains(t, rec.Body.String(), `"dispatch":2`)
	assert.NotContains(t, rec.Body.String(), `"dispatch":1`)
	assert.Equal(t, "fresh-token", rec.Header().Get(HeaderAccessToken))
}

func TestIntercept_ExpiredWithoutRefreshHeader(t *testing.T) {
	interceptor, fx := createTestInterceptor(t)
	handler := &countingHandler{}

	fx.tokenSvc.EXPECT().ParseAccessToken("expired-token").Return(nil, service.ErrTokenExpired)

	rec := performIntercepted(interceptor, handler, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer expired-token")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid authentication credentials.")
	// The buffered first dispatch still happened; its output was discarded.
	assert.Equal(t, 1, handler.calls)
}

func TestIntercept_ExpiredWithBadRefresh(t *testing.T) {
	interceptor, fx := createTestInterceptor(t)
	handler := &countingHandler{}

	fx.tokenSvc.EXPECT().ParseAccessToken("expired-token").Return(nil, service.ErrTokenExpired)
	fx.tokenSvc.EXPECT().ParseRefreshToken("bad-refresh").Return(nil, service.ErrTokenInvalid)

	rec := performIntercepted(interceptor, handler, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer expired-token")
		req.Header.Set(HeaderRefreshToken, "bad-refresh")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get(HeaderAccessToken))
}

func TestIntercept_ExpiredWithRevokedSession(t *testing.T) {
	interceptor, fx := createTestInterceptor(t)
	handler := &countingHandler{}

	userID := uuid.New()
	sessionID := uuid.New()
	revokedAt := time.Now().Add(-time.Hour)

	fx.tokenSvc.EXPECT().ParseAccessToken("expired-token").Return(nil, service.ErrTokenExpired)
	fx.tokenSvc.EXPECT().ParseRefreshToken("refresh-token").
		Return(&service.SessionClaims{UserID: userID, SessionID: sessionID}, nil)
	fx.sessionRepo.EXPECT().FindByID(mock.Anything, sessionID).
		Return(&entity.Session{ID: sessionID, UserID: userID, ExpiresAt: &revokedAt}, nil)

	rec := performIntercepted(interceptor, handler, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer expired-token")
		req.Header.Set(HeaderRefreshToken, "refresh-token")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get(HeaderAccessToken))
}

func TestIntercept_ExpiredWithForeignSession(t *testing.T) {
	interceptor, fx := createTestInterceptor(t)
	handler := &countingHandler{}

	sessionID := uuid.New()

	fx.tokenSvc.EXPECT().ParseAccessToken("expired-token").Return(nil, service.ErrTokenExpired)
	fx.tokenSvc.EXPECT().ParseRefreshToken("refresh-token").
		Return(&service.SessionClaims{UserID: uuid.New(), SessionID: sessionID}, nil)
	// The session exists but belongs to somebody else.
	fx.sessionRepo.EXPECT().FindByID(mock.Anything, sessionID).
		Return(&entity.Session{ID: sessionID, UserID: uuid.New()}, nil)

	rec := performIntercepted(interceptor, handler, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer expired-token")
		req.Header.Set(HeaderRefreshToken, "refresh-token")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestIntercept_InvalidTokenHardRejects(t *testing.T) {
	interceptor, fx := createTestInterceptor(t)
	handler := &countingHandler{}

	fx.tokenSvc.EXPECT().ParseAccessToken("forged-token").Return(nil, service.ErrTokenInvalid)

	rec := performIntercepted(interceptor, handler, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer forged-token")
		// Even a perfectly good refresh token must not be consulted; the
		// mocks would flag an unexpected ParseRefreshToken call.
		req.Header.Set(HeaderRefreshToken, "refresh-token")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid authentication credentials.")
	assert.Equal(t, 0, handler.calls)
}
