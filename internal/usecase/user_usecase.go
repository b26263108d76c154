// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"koor/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email        string
	Password     string
	Role         entity.Role
	DisplayName  string
	MobileNumber string
	CountryCode  string

	// Client metadata recorded on the bootstrap session.
	IPAddress string
	Agent     string
}

// LoginInput defines the data required for a credentialed login. Either
// Email or the CountryCode/MobileNumber pair identifies the account.
type LoginInput struct {
	Email        string
	MobileNumber string
	CountryCode  string
	Password     string
	Role         entity.Role

	IPAddress string
	Agent     string
}

// SocialLoginInput defines the payload of a social login. The identity
// assertion happened upstream; this service only binds the origin.
type SocialLoginInput struct {
	Email       string
	Source      entity.Source
	Role        entity.Role
	DisplayName string

	IPAddress string
	Agent     string
}

// --- Output DTOs ---

// AuthOutput returns the session and tokens minted for a login or
// registration. ResetToken is only set on registration, where it seeds the
// email-verification flow.
type AuthOutput struct {
	User         *entity.User
	SessionID    uuid.UUID
	AccessToken  string
	RefreshToken string
	ResetToken   string
}

// UserUsecase defines the interface for identity bootstrap operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates the account with its role profile, opens a session and
	// kicks off email verification.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login authenticates by email or mobile credentials and opens a session.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// SocialLogin logs in or registers through a social origin. A mismatched
	// origin is rejected without revealing the account's actual source.
	SocialLogin(ctx context.Context, input SocialLoginInput) (*AuthOutput, error)

	// GetProfile loads the authenticated user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// DeleteSession revokes the session named by a refresh token. Revocation
	// stamps the expiry; the row is kept.
	DeleteSession(ctx context.Context, refreshToken string) error
}
