package handler

import (
	"log/slog"
	"net/http"

	"koor/internal/delivery/http/response"
	"koor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VisitorHandler records anonymous traffic probes.
type VisitorHandler struct {
	uc     usecase.VisitorUsecase
	logger *slog.Logger
}

// NewVisitorHandler is the constructor for VisitorHandler, injected by Fx.
func NewVisitorHandler(uc usecase.VisitorUsecase, logger *slog.Logger) *VisitorHandler {
	return &VisitorHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordVisit handles POST /users/visitor-log.
func (h *VisitorHandler) RecordVisit(c echo.Context) error {
	input := usecase.RecordVisitInput{
		IPAddress: c.RealIP(),
		Agent:     c.Request().UserAgent(),
	}

	if err := h.uc.RecordVisit(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Visit recorded")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
