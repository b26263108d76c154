package middleware

import (
	"net/http"
	"strings"
	"time"

	"koor/internal/domain/repository"
	"koor/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated identity is stored.
const (
	ContextKeyUserID    = "userID"
	ContextKeySessionID = "sessionID"
)

// AuthMiddleware attaches the caller's identity when the access token checks
// out and its session is still live. It never rejects by itself: deciding
// whether an endpoint needs identity is RequireAuth's job, and the refresh
// interceptor further out owns expiry handling.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	sessionRepo repository.SessionRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, sessionRepo repository.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, sessionRepo: sessionRepo}
}

// Authenticate resolves the Bearer access token to a live session and stores
// userID/sessionID on the context. Requests without a usable token continue
// unauthenticated.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := BearerToken(c.Request())
		if !ok {
			return next(c)
		}

		claims, err := m.tokenSvc.ParseAccessToken(tokenString)
		if err != nil {
			return next(c)
		}

		session, err := m.sessionRepo.FindByID(c.Request().Context(), claims.SessionID)
		if err != nil || session.Expired(time.Now()) {
			return next(c)
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeySessionID, claims.SessionID)

		return next(c)
	}
}

// RequireAuth short-circuits with 401 when Authenticate attached no identity.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := UserID(c); !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"detail": "Authentication credentials were not provided.",
			})
		}

		return next(c)
	}
}

// UserID returns the authenticated user ID stored by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return id, ok
}

// SessionID returns the authenticated session ID stored by Authenticate.
func SessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeySessionID).(uuid.UUID)

	return id, ok
}

// BearerToken extracts the token from the Authorization header. The second
// return is false when the header is absent or not Bearer-shaped.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}
