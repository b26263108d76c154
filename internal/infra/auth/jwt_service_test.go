package auth

import (
	"strings"
	"testing"
	"time"

	"koor/config"
	"koor/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, accessTTL time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Signing = secret
	cfg.SecretKey.AccessTTL = accessTTL
	cfg.SecretKey.RefreshTTL = 7 * 24 * time.Hour
	cfg.SecretKey.RecoveryTTL = 15 * time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestSessionTokens_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "round-trip-secret", 15*time.Minute)
	userID := uuid.New()
	sessionID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateSessionTokens(userID, sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ParseAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, sessionID, accessClaims.SessionID)
	assert.Equal(t, sessionID.String(), accessClaims.ID)

	refreshClaims, err := svc.ParseRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, sessionID, refreshClaims.SessionID)
}

func TestRecoveryTokens_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "recovery-secret", 15*time.Minute)
	userID := uuid.New()

	resetToken, err := svc.GenerateResetToken(userID)
	require.NoError(t, err)

	resetClaims, err := svc.ParseResetToken(resetToken)
	require.NoError(t, err)
	assert.Equal(t, userID, resetClaims.UserID)
	assert.Empty(t, resetClaims.OTP)

	changeToken, err := svc.GenerateChangeToken(userID, "1234")
	require.NoError(t, err)

	changeClaims, err := svc.ParseChangeToken(changeToken)
	require.NoError(t, err)
	assert.Equal(t, userID, changeClaims.UserID)
	assert.Equal(t, "1234", changeClaims.OTP)
}

func TestParse_RejectsWrongClass(t *testing.T) {
	svc := newTestTokenService(t, "class-secret", 15*time.Minute)
	userID := uuid.New()
	sessionID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateSessionTokens(userID, sessionID)
	require.NoError(t, err)

	resetToken, err := svc.GenerateResetToken(userID)
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(refreshToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	_, err = svc.ParseRefreshToken(accessToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	_, err = svc.ParseResetToken(accessToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	_, err = svc.ParseChangeToken(resetToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestParse_ExpiredToken(t *testing.T) {
	// A negative TTL mints tokens that are already past expiry.
	svc := newTestTokenService(t, "expiry-secret", -time.Minute)

	accessToken, err := svc.GenerateAccessToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(accessToken)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.NotErrorIs(t, err, service.ErrTokenInvalid)
}

func TestParse_ExpiredWithWrongSecretIsInvalid(t *testing.T) {
	// Expiry only counts once the signature verifies; an expired token
	// signed with another key must read as invalid, not expired.
	minter := newTestTokenService(t, "minter-secret", -time.Minute)
	verifier := newTestTokenService(t, "verifier-secret", 15*time.Minute)

	accessToken, err := minter.GenerateAccessToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = verifier.ParseAccessToken(accessToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.NotErrorIs(t, err, service.ErrTokenExpired)
}

func TestParse_TamperedSignature(t *testing.T) {
	svc := newTestTokenService(t, "tamper-secret", 15*time.Minute)

	accessToken, err := svc.GenerateAccessToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	parts := strings.Split(accessToken, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + flipLastByte(parts[2])

	_, err = svc.ParseAccessToken(tampered)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestParse_Garbage(t *testing.T) {
	svc := newTestTokenService(t, "garbage-secret", 15*time.Minute)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ParseAccessToken(tokenString)
		assert.ErrorIs(t, err, service.ErrTokenInvalid)
	}
}

func TestParse_NilIdentifiers(t *testing.T) {
	svc := newTestTokenService(t, "nil-secret", 15*time.Minute)

	accessToken, err := svc.GenerateAccessToken(uuid.Nil, uuid.New())
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(accessToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	resetToken, err := svc.GenerateResetToken(uuid.Nil)
	require.NoError(t, err)

	_, err = svc.ParseResetToken(resetToken)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestTokenDurations(t *testing.T) {
	svc := newTestTokenService(t, "duration-secret", 15*time.Minute)

	assert.Equal(t, 15*time.Minute, svc.GetAccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenDuration())
}

func flipLastByte(s string) string {
	if s == "" {
		return s
	}
	last := s[len(s)-1]
	if last == 'A' {
		return s[:len(s)-1] + "B"
	}

	return s[:len(s)-1] + "A"
}
