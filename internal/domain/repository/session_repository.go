package repository

import (
	"context"
	"errors"

	"koor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session row matches the lookup.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists device login sessions. Rows are append-only:
// revocation updates the expiry stamp, nothing is ever deleted.
type SessionRepository interface {
	// Create persists a new session row.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its identifier, revoked or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindActiveByUserID lists the user's sessions that have not been revoked.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// Revoke stamps the session's expiry with the current instant. Revoking an
	// already-revoked session is a no-op and not an error.
	Revoke(ctx context.Context, id uuid.UUID) error
}
