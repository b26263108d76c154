package handler

import (
	"log/slog"
	"net/http"

	"koor/internal/delivery/http/response"
	domainerrors "koor/internal/domain/errors"
	"koor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecoveryHandler holds dependencies for the OTP-driven flows.
type RecoveryHandler struct {
	uc     usecase.RecoveryUsecase
	logger *slog.Logger
}

// NewRecoveryHandler is the constructor for RecoveryHandler, injected by Fx.
func NewRecoveryHandler(uc usecase.RecoveryUsecase, logger *slog.Logger) *RecoveryHandler {
	return &RecoveryHandler{
		uc:     uc,
		logger: logger,
	}
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SendOTP handles GET /users/send-otp?email=.
func (h *RecoveryHandler) SendOTP(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return domainerrors.NewValidationError("email", "This field is required.")
	}

	resetToken, err := h.uc.SendOTP(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": resetToken}, "OTP sent")
}

// VerifyOTP handles GET /users/otp-verification/:otp?token=. A matching OTP
// upgrades the reset token to a change token.
func (h *RecoveryHandler) VerifyOTP(c echo.Context) error {
	changeToken, err := h.uc.VerifyOTP(c.Request().Context(), c.QueryParam("token"), c.Param("otp"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": changeToken}, "OTP verified")
}

// ChangePassword handles PUT /users/change-password?token=.
func (h *RecoveryHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), c.QueryParam("token"), req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated successfully"}, "Password updated")
}

// EmailVerification handles GET /users/email-verification/:otp?token=.
func (h *RecoveryHandler) EmailVerification(c echo.Context) error {
	if err := h.uc.EmailVerification(c.Request().Context(), c.QueryParam("token"), c.Param("otp")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Email verified successfully"}, "Email verified")
}

// AccountVerification handles GET /users/account-verification/:hash from the
// emailed link.
func (h *RecoveryHandler) AccountVerification(c echo.Context) error {
	if err := h.uc.AccountVerification(c.Request().Context(), c.Param("hash")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account verified successfully"}, "Account verified")
}

// ResendVerification handles POST /users/resend-verification.
func (h *RecoveryHandler) ResendVerification(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResendVerification(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Verification mail sent"}, "Verification mail sent")
}
