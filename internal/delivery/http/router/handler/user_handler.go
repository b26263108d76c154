// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"koor/internal/delivery/http/middleware"
	"koor/internal/delivery/http/response"
	"koor/internal/domain/entity"
	domainerrors "koor/internal/domain/errors"
	"koor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for identity-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8,max=128"`
	Role         string `json:"role" validate:"required,oneof=admin job_seeker employer vendor"`
	DisplayName  string `json:"display_name" validate:"max=250"`
	MobileNumber string `json:"mobile_number" validate:"max=13"`
	CountryCode  string `json:"country_code" validate:"max=8"`
}

type loginRequest struct {
	Email        string `json:"email" validate:"omitempty,email"`
	MobileNumber string `json:"mobile_number" validate:"max=13"`
	CountryCode  string `json:"country_code" validate:"max=8"`
	Password     string `json:"password" validate:"required"`
	Role         string `json:"role" validate:"omitempty,oneof=admin job_seeker employer vendor"`
}

type socialLoginRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Source      string `json:"source" validate:"required,oneof=apple facebook google"`
	Role        string `json:"role" validate:"required,oneof=job_seeker employer vendor"`
	DisplayName string `json:"display_name" validate:"max=250"`
}

// userBody is the public shape of an account in responses.
type userBody struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	Verified    bool   `json:"verified"`
}

func toUserBody(user *entity.User) userBody {
	return userBody{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
		Verified:    user.Verified,
	}
}

// Register handles POST /users. The minted token pair travels on the
// x-access/x-refresh headers; the reset token for email verification rides
// in the body.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Role:         entity.Role(req.Role),
		DisplayName:  req.DisplayName,
		MobileNumber: req.MobileNumber,
		CountryCode:  req.CountryCode,
		IPAddress:    c.RealIP(),
		Agent:        c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setTokenHeaders(c, output)

	body := map[string]any{
		"user":  toUserBody(output.User),
		"token": output.ResetToken,
	}

	return response.Success(c, http.StatusCreated, body, "User Created Successfully")
}

// GetProfile handles GET /users for the authenticated account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserBody(user), "")
}

// Login handles POST /users/session.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		CountryCode:  req.CountryCode,
		Password:     req.Password,
		Role:         entity.Role(req.Role),
		IPAddress:    c.RealIP(),
		Agent:        c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setTokenHeaders(c, output)

	return response.Success(c, http.StatusCreated, toUserBody(output.User), "Login successful")
}

// SocialLogin handles POST /users/social-login.
func (h *UserHandler) SocialLogin(c echo.Context) error {
	var req socialLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid social login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SocialLogin(c.Request().Context(), usecase.SocialLoginInput{
		Email:       req.Email,
		Source:      entity.Source(req.Source),
		Role:        entity.Role(req.Role),
		DisplayName: req.DisplayName,
		IPAddress:   c.RealIP(),
		Agent:       c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setTokenHeaders(c, output)

	return response.Success(c, http.StatusCreated, toUserBody(output.User), "Login successful")
}

// DeleteSession handles DELETE /users/delete-session. The x-refresh header
// names which session to revoke.
func (h *UserHandler) DeleteSession(c echo.Context) error {
	refreshToken := c.Request().Header.Get(middleware.HeaderRefreshToken)
	if refreshToken == "" {
		return errors.WithStack(domainerrors.ErrAuthenticationFailed)
	}

	if err := h.uc.DeleteSession(c.Request().Context(), refreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out successfully"}, "Logout successful")
}

// setTokenHeaders places the session pair on the response headers.
func setTokenHeaders(c echo.Context, output *usecase.AuthOutput) {
	c.Response().Header().Set(middleware.HeaderAccessToken, output.AccessToken)
	c.Response().Header().Set(middleware.HeaderRefreshToken, output.RefreshToken)
}
