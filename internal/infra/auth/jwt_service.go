package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"koor/config"
	"koor/internal/domain/service"
	"koor/internal/errors"
)

// jwtService implements TokenService with HMAC-SHA256 signed JWTs. One
// signing secret covers all four token classes; the class claim keeps them
// apart at parse time.
type jwtService struct {
	secret      []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
	recoveryTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret:      []byte(cfg.SecretKey.Signing),
		accessTTL:   cfg.SecretKey.AccessTTL,
		refreshTTL:  cfg.SecretKey.RefreshTTL,
		recoveryTTL: cfg.SecretKey.RecoveryTTL,
	}, nil
}

// GenerateSessionTokens creates the access/refresh pair for a session.
func (s *jwtService) GenerateSessionTokens(userID, sessionID uuid.UUID) (string, string, error) {
	accessToken, err := s.generateSessionToken(userID, sessionID, service.TokenClassAccess, s.accessTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.generateSessionToken(userID, sessionID, service.TokenClassRefresh, s.refreshTTL)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateAccessToken mints a fresh access token for an existing session.
func (s *jwtService) GenerateAccessToken(userID, sessionID uuid.UUID) (string, error) {
	return s.generateSessionToken(userID, sessionID, service.TokenClassAccess, s.accessTTL)
}

// GenerateResetToken mints a reset-class token binding only the user.
func (s *jwtService) GenerateResetToken(userID uuid.UUID) (string, error) {
	return s.generateRecoveryToken(userID, "", service.TokenClassReset)
}

// GenerateChangeToken mints a change-class token binding the user and OTP.
func (s *jwtService) GenerateChangeToken(userID uuid.UUID, otp string) (string, error) {
	return s.generateRecoveryToken(userID, otp, service.TokenClassChange)
}

// ParseAccessToken validates an access-class token.
func (s *jwtService) ParseAccessToken(tokenString string) (*service.SessionClaims, error) {
	return s.parseSessionToken(tokenString, service.TokenClassAccess)
}

// ParseRefreshToken validates a refresh-class token.
func (s *jwtService) ParseRefreshToken(tokenString string) (*service.SessionClaims, error) {
	return s.parseSessionToken(tokenString, service.TokenClassRefresh)
}

// ParseResetToken validates a reset-class token.
func (s *jwtService) ParseResetToken(tokenString string) (*service.RecoveryClaims, error) {
	return s.parseRecoveryToken(tokenString, service.TokenClassReset)
}

// ParseChangeToken validates a change-class token.
func (s *jwtService) ParseChangeToken(tokenString string) (*service.RecoveryClaims, error) {
	return s.parseRecoveryToken(tokenString, service.TokenClassChange)
}

// GetAccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}

// GetRefreshTokenDuration returns the configured refresh token lifetime.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) generateSessionToken(userID, sessionID uuid.UUID, class string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.SessionClaims{
		UserID:    userID,
		SessionID: sessionID,
		Class:     class,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

func (s *jwtService) generateRecoveryToken(userID uuid.UUID, otp, class string) (string, error) {
	now := time.Now()
	claims := &service.RecoveryClaims{
		UserID: userID,
		OTP:    otp,
		Class:  class,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.recoveryTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

func (s *jwtService) parseSessionToken(tokenString, wantClass string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Class != wantClass {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}
	if claims.UserID == uuid.Nil || claims.SessionID == uuid.Nil {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	return claims, nil
}

func (s *jwtService) parseRecoveryToken(tokenString, wantClass string) (*service.RecoveryClaims, error) {
	claims := &service.RecoveryClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Class != wantClass {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}
	if claims.UserID == uuid.Nil {
		return nil, errors.WithStack(service.ErrTokenInvalid)
	}

	return claims, nil
}

// parse verifies signature, structure and expiry. Expiry is the only failure
// surfaced as ErrTokenExpired; every other problem collapses to
// ErrTokenInvalid so callers cannot act on a forged token's contents.
func (s *jwtService) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return errors.WithStack(service.ErrTokenExpired)
		}

		return errors.WithStack(service.ErrTokenInvalid)
	}
	if !token.Valid {
		return errors.WithStack(service.ErrTokenInvalid)
	}

	return nil
}
