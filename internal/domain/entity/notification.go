package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags what event a notification describes.
type NotificationType string

const (
	// NotificationPasswordUpdate is raised toward saved-job owners when a
	// job seeker who saved their posting changes the account password.
	NotificationPasswordUpdate NotificationType = "password_update"
)

// Notification is an in-app message addressed to one user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID        // Recipient.
	Type      NotificationType
	SavedJobID *int64          // The saved-job row that triggered the notification, if any.
	Seen      bool
	CreatedAt time.Time
}
