package service

import (
	"context"

	"koor/internal/domain/entity"

	"github.com/google/uuid"
)

// OTPManager owns the single-slot OTP lifecycle: issue overwrites any pending
// code, verify is constant-time and qualified by user, consume clears the slot.
type OTPManager interface {
	// Issue draws a fresh 4-digit code not currently in use by any user,
	// stamps the user's slot with it, and returns the code.
	Issue(ctx context.Context, userID uuid.UUID) (string, error)

	// Verify reports whether code matches the user's live, unexpired OTP.
	// The comparison does not leak timing about how many digits matched.
	Verify(user *entity.User, code string) bool

	// Consume clears the user's OTP slot after the final protected action.
	Consume(ctx context.Context, userID uuid.UUID) error
}
