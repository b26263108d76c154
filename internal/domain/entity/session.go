package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one authenticated device login. Sessions are never deleted:
// logout and revocation stamp ExpiresAt so the row survives as an audit trail.
type Session struct {
	ID        uuid.UUID  // Session identifier, carried as the subject of session tokens.
	UserID    uuid.UUID  // Owner of the session.
	IPAddress string     // Client address observed at login.
	Agent     string     // User-Agent observed at login.
	CreatedAt time.Time  // When the session was opened.
	ExpiresAt *time.Time // Nil while live; set to the revocation instant on logout.
}

// Expired reports whether the session has been revoked as of now.
// A nil ExpiresAt means the session is live until explicitly revoked.
func (s *Session) Expired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}

	return !now.Before(*s.ExpiresAt)
}
