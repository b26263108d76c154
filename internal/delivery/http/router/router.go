// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"koor/internal/delivery/http/middleware"
	"koor/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	RecoveryHandler    *handler.RecoveryHandler
	VisitorHandler     *handler.VisitorHandler
	AuthMiddleware     *middleware.AuthMiddleware
	RefreshInterceptor *middleware.RefreshInterceptor
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	recoveryHandler    *handler.RecoveryHandler
	visitorHandler     *handler.VisitorHandler
	authMiddleware     *middleware.AuthMiddleware
	refreshInterceptor *middleware.RefreshInterceptor
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		recoveryHandler:    params.RecoveryHandler,
		visitorHandler:     params.VisitorHandler,
		authMiddleware:     params.AuthMiddleware,
		refreshInterceptor: params.RefreshInterceptor,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The refresh interceptor wraps everything under /users so expiry handling
// works uniformly; per-route auth comes from Authenticate + RequireAuth.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/users", r.refreshInterceptor.Intercept, r.authMiddleware.Authenticate)
	{
		// Identity bootstrap
		users.POST("", r.userHandler.Register)
		users.POST("/session", r.userHandler.Login)
		users.POST("/social-login", r.userHandler.SocialLogin)

		// Authenticated surface
		users.GET("", r.userHandler.GetProfile, r.authMiddleware.RequireAuth)
		users.DELETE("/delete-session", r.userHandler.DeleteSession, r.authMiddleware.RequireAuth)

		// OTP flows: authority comes from the recovery tokens, not a session
		users.GET("/send-otp", r.recoveryHandler.SendOTP)
		users.GET("/otp-verification/:otp", r.recoveryHandler.VerifyOTP)
		users.PUT("/change-password", r.recoveryHandler.ChangePassword)
		users.GET("/email-verification/:otp", r.recoveryHandler.EmailVerification)
		users.GET("/account-verification/:hash", r.recoveryHandler.AccountVerification)
		users.POST("/resend-verification", r.recoveryHandler.ResendVerification)

		// Anonymous traffic probe
		users.POST("/visitor-log", r.visitorHandler.RecordVisit)
	}
}
