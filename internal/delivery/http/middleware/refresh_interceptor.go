package middleware

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "koor/internal/delivery/context"
	"koor/internal/domain/repository"
	"koor/internal/domain/service"
	"koor/internal/errors"

	"github.com/labstack/echo/v4"
)

// Response headers carrying minted tokens.
const (
	HeaderAccessToken  = "x-access"
	HeaderRefreshToken = "x-refresh"
)

// RefreshInterceptor is the outermost middleware. It decides, per request,
// between four states of the presented access token:
//
//	UNAUTH  - no bearer token: pass through untouched.
//	VALID   - token verifies: pass through untouched.
//	EXPIRED - token verifies but is past expiry: the downstream handler runs
//	          once against a discarded buffer, then the x-refresh token is
//	          consulted. If it names a live session, a fresh access token is
//	          minted, the Authorization header rewritten, and the handler
//	          re-dispatched for real with the new token on x-access.
//	INVALID - anything else (bad signature, malformed, wrong class): hard 403.
//	          The refresh token is never read, so a forged access token can
//	          not be laundered through the refresh path.
//
// Failures on the refresh path collapse to the same opaque 403 as INVALID.
type RefreshInterceptor struct {
	tokenSvc    service.TokenService
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
}

// NewRefreshInterceptor is the constructor for RefreshInterceptor.
func NewRefreshInterceptor(tokenSvc service.TokenService, sessionRepo repository.SessionRepository, logger *slog.Logger) *RefreshInterceptor {
	return &RefreshInterceptor{
		tokenSvc:    tokenSvc,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Intercept implements the state machine above.
func (m *RefreshInterceptor) Intercept(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := BearerToken(c.Request())
		if !ok {
			return next(c)
		}

		_, err := m.tokenSvc.ParseAccessToken(tokenString)
		if err == nil {
			return next(c)
		}

		if !isExpired(err) {
			return forbidden(c)
		}

		// First dispatch: the handler observes the request exactly as sent,
		// but its output goes to a buffer that is thrown away.
		m.dispatchDiscarded(c, next)

		newAccess, ok := m.refreshAccess(c)
		if !ok {
			return forbidden(c)
		}

		// Re-dispatch with the rewritten Authorization header; this run's
		// output is the one the client sees.
		c.Request().Header.Set("Authorization", "Bearer "+newAccess)
		c.Response().Header().Set(HeaderAccessToken, newAccess)

		return next(c)
	}
}

// refreshAccess validates the x-refresh token against a live session and
// mints a replacement access token.
func (m *RefreshInterceptor) refreshAccess(c echo.Context) (string, bool) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	refreshString := c.Request().Header.Get(HeaderRefreshToken)
	if refreshString == "" {
		return "", false
	}

	claims, err := m.tokenSvc.ParseRefreshToken(refreshString)
	if err != nil {
		logger.Warn("Refresh token rejected", slog.Any("error", err))

		return "", false
	}

	session, err := m.sessionRepo.FindByID(c.Request().Context(), claims.SessionID)
	if err != nil {
		logger.Warn("Refresh session lookup failed", slog.Any("sessionID", claims.SessionID))

		return "", false
	}
	if session.Expired(time.Now()) || session.UserID != claims.UserID {
		logger.Warn("Refresh session not live", slog.Any("sessionID", session.ID))

		return "", false
	}

	newAccess, err := m.tokenSvc.GenerateAccessToken(session.UserID, session.ID)
	if err != nil {
		logger.Error("Failed to mint replacement access token", slog.Any("error", err))

		return "", false
	}

	logger.Debug("Access token refreshed", slog.Any("sessionID", session.ID))

	return newAccess, true
}

// dispatchDiscarded runs next against a throwaway response so the first pass
// can neither commit a status nor leak a body.
func (m *RefreshInterceptor) dispatchDiscarded(c echo.Context, next echo.HandlerFunc) {
	original := c.Response()
	c.SetResponse(echo.NewResponse(&discardWriter{header: make(http.Header)}, c.Echo()))
	defer c.SetResponse(original)

	// The outcome of this pass is irrelevant; only its side effects on the
	// application state (if any) are kept.
	_ = next(c)
}

func isExpired(err error) bool {
	return errors.Is(err, service.ErrTokenExpired)
}

// forbidden writes the opaque 403. The body deliberately reads the same for
// every failure mode.
func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{
		"detail": "Invalid authentication credentials.",
	})
}

// discardWriter satisfies http.ResponseWriter and swallows everything.
type discardWriter struct {
	header http.Header
}

func (w *discardWriter) Header() http.Header { return w.header }

func (w *discardWriter) Write(b []byte) (int, error) { return len(b), nil }

func (w *discardWriter) WriteHeader(int) {}
