package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token class tags. A token is only ever accepted by the parse method for
// its own class; session and recovery tokens never cross-validate.
const (
	TokenClassAccess  = "access"
	TokenClassRefresh = "refresh"
	TokenClassReset   = "reset"
	TokenClassChange  = "change"
)

// ErrTokenExpired marks a structurally sound, correctly signed token whose
// expiry has passed. This is the only failure the refresh path may act on.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid marks every other token failure: bad signature, malformed
// payload, wrong class, missing claims.
var ErrTokenInvalid = errors.New("token invalid")

// SessionClaims ride on access and refresh tokens. SessionID doubles as the
// token's jti, so a session lookup is one claim read away.
type SessionClaims struct {
	UserID    uuid.UUID `json:"user_id"`
	SessionID uuid.UUID `json:"session_id"`
	Class     string    `json:"class"`
	jwt.RegisteredClaims
}

// RecoveryClaims ride on reset and change tokens. Reset tokens carry no OTP;
// change tokens pin the OTP they were minted against.
type RecoveryClaims struct {
	UserID uuid.UUID `json:"user_id"`
	OTP    string    `json:"otp,omitempty"`
	Class  string    `json:"class"`
	jwt.RegisteredClaims
}

// TokenService mints and parses the four token classes. Each parse method
// rejects tokens of any other class with ErrTokenInvalid.
type TokenService interface {
	// GenerateSessionTokens mints the access/refresh pair for a session.
	GenerateSessionTokens(userID, sessionID uuid.UUID) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken mints a fresh access token for an existing session.
	GenerateAccessToken(userID, sessionID uuid.UUID) (string, error)

	// GenerateResetToken mints a reset-class token binding only the user.
	GenerateResetToken(userID uuid.UUID) (string, error)

	// GenerateChangeToken mints a change-class token binding the user and the
	// OTP that authorized it.
	GenerateChangeToken(userID uuid.UUID, otp string) (string, error)

	// ParseAccessToken validates an access-class token.
	ParseAccessToken(tokenString string) (*SessionClaims, error)

	// ParseRefreshToken validates a refresh-class token.
	ParseRefreshToken(tokenString string) (*SessionClaims, error)

	// ParseResetToken validates a reset-class token.
	ParseResetToken(tokenString string) (*RecoveryClaims, error)

	// ParseChangeToken validates a change-class token.
	ParseChangeToken(tokenString string) (*RecoveryClaims, error)

	// GetAccessTokenDuration returns the configured access token lifetime.
	GetAccessTokenDuration() time.Duration

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
