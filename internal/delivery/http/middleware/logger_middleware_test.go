package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"koor/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLoggerMiddleware(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(logger, cfg), buf
}

func performLogged(m *LoggerMiddleware, handler echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users?source=test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Handle(handler)(c)

	return rec, err
}

func TestLoggerMiddleware_DebugLogsRequest(t *testing.T) {
	m, buf := createTestLoggerMiddleware(true)

	_, err := performLogged(m, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "HTTP request trace")
	assert.Contains(t, logged, `"method":"GET"`)
	assert.Contains(t, logged, `"uri":"/users"`)
	assert.Contains(t, logged, `"query":"source=test"`)
}

func TestLoggerMiddleware_DebugOffStaysSilent(t *testing.T) {
	m, buf := createTestLoggerMiddleware(false)

	_, err := performLogged(m, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}

func TestLoggerMiddleware_HandlerErrorPropagates(t *testing.T) {
	m, buf := createTestLoggerMiddleware(true)

	_, err := performLogged(m, func(c echo.Context) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, buf.String(), assert.AnError.Error())
}
