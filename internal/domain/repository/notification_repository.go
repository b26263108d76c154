package repository

import (
	"context"

	"koor/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	// Create persists a new notification row.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUserID lists the user's notifications, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
}

// SavedJobRepository reads the saved-job bookmarks owned by job seekers.
type SavedJobRepository interface {
	// FindByUserID lists the saved-job rows created by the given job seeker.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavedJob, error)
}
