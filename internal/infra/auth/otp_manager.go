package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"koor/config"
	"koor/internal/domain/entity"
	"koor/internal/domain/repository"
	"koor/internal/domain/service"
	"koor/internal/errors"
)

const (
	otpDigits = 4
	otpSpace  = 10000

	// maxIssueAttempts bounds rejection sampling when drawing a code not
	// already held by another user.
	maxIssueAttempts = 100
)

// otpManager implements the single-slot OTP lifecycle on top of the user
// repository's atomic slot writes.
type otpManager struct {
	users  repository.UserRepository
	window time.Duration
}

// NewOTPManager is the constructor for otpManager.
func NewOTPManager(cfg *config.Config, users repository.UserRepository) service.OTPManager {
	return &otpManager{
		users:  users,
		window: cfg.SecretKey.RecoveryTTL,
	}
}

// Issue draws a uniform 4-digit code not currently in use, stamps the user's
// slot with it and returns it. A pending code on the same user is overwritten.
func (m *otpManager) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	code, err := m.drawUnusedCode(ctx)
	if err != nil {
		return "", err
	}

	if err := m.users.SetOTP(ctx, userID, code, time.Now()); err != nil {
		return "", errors.Wrap(err, "stamp otp slot")
	}

	return code, nil
}

// Verify reports whether code matches the user's live, unexpired OTP.
func (m *otpManager) Verify(user *entity.User, code string) bool {
	if user == nil || user.OTPExpired(time.Now(), m.window) {
		return false
	}
	if len(code) != otpDigits {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(user.OTP), []byte(code)) == 1
}

// Consume clears the user's OTP slot.
func (m *otpManager) Consume(ctx context.Context, userID uuid.UUID) error {
	if err := m.users.ClearOTP(ctx, userID); err != nil {
		return errors.Wrap(err, "clear otp slot")
	}

	return nil
}

// drawUnusedCode samples uniform 4-digit codes and rejects any code some
// user currently holds, so a guessed code can never match two accounts.
func (m *otpManager) drawUnusedCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(otpSpace))
		if err != nil {
			return "", errors.Wrap(err, "draw random otp")
		}
		code := fmt.Sprintf("%04d", n.Int64())

		inUse, err := m.users.OTPInUse(ctx, code)
		if err != nil {
			return "", errors.Wrap(err, "check otp in use")
		}
		if !inUse {
			return code, nil
		}
	}

	return "", errors.New("otp space exhausted")
}
